package models

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"useremail" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"useremail" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role" binding:"required,oneof=patient health_expert admin"`
}

// RegisterResponse is returned by the registration endpoint.
type RegisterResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConsultRequest carries free-text symptoms to the advice endpoint.
type ConsultRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
}

// ConsultResponse carries the automated advice.
type ConsultResponse struct {
	Advice string `json:"advice"`
}

// HealthTipInput is the body for creating or updating a tip.
type HealthTipInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// GenotypeMatchRequest asks the platform for the offspring risk of a couple.
type GenotypeMatchRequest struct {
	PatientGenotype string `json:"patientGenotype" binding:"required,oneof=AA AS AC SS SC CC"`
	PartnerGenotype string `json:"partnerGenotype" binding:"required,oneof=AA AS AC SS SC CC"`
}

// GenotypeMatchData is the payload of a successful match.
type GenotypeMatchData struct {
	RiskMessage      string             `json:"riskMessage"`
	ChildPercentages map[string]float64 `json:"childPercentages"`
}

// GenotypeMatchResponse is returned by the genotype match endpoint.
type GenotypeMatchResponse struct {
	Success bool               `json:"success"`
	Data    *GenotypeMatchData `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
}
