package session

import "drepalife-app/internal/models"

const (
	RouteLogin       = "auth/login"
	RoutePatientHome = "patient/dashboard"
	RouteExpertHome  = "expert/dashboard"
	RouteAdminHome   = "admin/dashboard"
)

// DashboardFor picks the start screen for a role. Unknown roles go to login.
func DashboardFor(role models.Role) (string, bool) {
	switch role {
	case models.RolePatient:
		return RoutePatientHome, true
	case models.RoleHealthExpert:
		return RouteExpertHome, true
	case models.RoleAdmin:
		return RouteAdminHome, true
	default:
		return RouteLogin, false
	}
}
