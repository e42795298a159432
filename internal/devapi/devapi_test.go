package devapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drepalife-app/internal/config"
	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := New(config.DevAPIConfig{
		Port:                 "0",
		Origin:               "http://localhost:8081",
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 60,
	}, sqlite.Open(filepath.Join(t.TempDir(), "devapi.db")), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func register(t *testing.T, srv *Server, email string, role models.Role) {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/users/register", "", models.RegisterRequest{
		Name: "Kofi", Email: email, Password: "secret1", Role: role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, srv *Server, email string) models.LoginResponse {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/users/login", "", models.LoginRequest{Email: email, Password: "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/users/register", "", models.RegisterRequest{
		Name: "Efua", Email: "Efua@Example.com", Password: "secret1", Role: models.RoleHealthExpert,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var reg models.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.True(t, reg.Success)
	require.NotNil(t, reg.User)
	assert.NotEmpty(t, reg.User.ID)
	assert.Equal(t, "efua@example.com", reg.User.Email)
	assert.False(t, reg.User.IsVerified, "experts start unverified")
	assert.NotContains(t, w.Body.String(), "secret1")

	w = doJSON(t, srv, http.MethodPost, "/api/users/register", "", models.RegisterRequest{
		Name: "Efua", Email: "efua@example.com", Password: "secret1", Role: models.RolePatient,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	res := login(t, srv, "efua@example.com")
	assert.True(t, res.Success)
	require.NotNil(t, res.User)
	assert.Equal(t, models.RoleHealthExpert, res.User.Role)

	claims, err := utils.ValidateToken(res.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, models.RoleHealthExpert, claims.Role)
}

func TestLogin_Rejected(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "ama@example.com", models.RolePatient)

	w := doJSON(t, srv, http.MethodPost, "/api/users/login", "", models.LoginRequest{Email: "ama@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid email or password"}`, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{"useremail": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "useremail must be a valid email")
}

func TestHealthTips_CRUD(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "expert@example.com", models.RoleHealthExpert)
	token := login(t, srv, "expert@example.com").Token

	w := doJSON(t, srv, http.MethodGet, "/health-tips", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/health-tips", token, models.HealthTipInput{Title: " Hydrate ", Content: "Drink water"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tip models.HealthTip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tip))
	assert.Equal(t, "Hydrate", tip.Title)
	require.NotEmpty(t, tip.ID)

	w = doJSON(t, srv, http.MethodPut, "/health-tips/"+tip.ID, token, models.HealthTipInput{Title: "Hydrate often", Content: "Drink water daily"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/health-tips", "", nil)
	var tips []models.HealthTip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))
	require.Len(t, tips, 1)
	assert.Equal(t, "Hydrate often", tips[0].Title)

	w = doJSON(t, srv, http.MethodDelete, "/health-tips/"+tip.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/health-tips/"+tip.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodPut, "/health-tips/missing", token, models.HealthTipInput{Title: "a", Content: "b"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthTips_EditorsOnly(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "patient@example.com", models.RolePatient)
	token := login(t, srv, "patient@example.com").Token

	w := doJSON(t, srv, http.MethodPost, "/health-tips", "", models.HealthTipInput{Title: "a", Content: "b"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/health-tips", token, models.HealthTipInput{Title: "a", Content: "b"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConsult(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/consult", "", models.ConsultRequest{Symptoms: "Severe joint pain since morning"})
	require.Equal(t, http.StatusOK, w.Code)
	var res models.ConsultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Advice, "pain relief")

	var count int64
	require.NoError(t, srv.DB.Model(&models.Consultation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = doJSON(t, srv, http.MethodPost, "/consult", "", models.ConsultRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenotypeMatch(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "ama@example.com", models.RolePatient)
	token := login(t, srv, "ama@example.com").Token
	req := models.GenotypeMatchRequest{PatientGenotype: "AS", PartnerGenotype: "AS"}

	w := doJSON(t, srv, http.MethodPost, "/api/genotype-matches", "", req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/genotype-matches", token, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res models.GenotypeMatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, map[string]float64{"AA": 25, "AS": 50, "SS": 25}, res.Data.ChildPercentages)
	assert.Contains(t, res.Data.RiskMessage, "25% chance per pregnancy")

	var match models.GenotypeMatch
	require.NoError(t, srv.DB.First(&match).Error)
	assert.Equal(t, "AS", match.PatientGenotype)
	assert.Equal(t, res.Data.ChildPercentages, match.ChildPercentages)

	w = doJSON(t, srv, http.MethodPost, "/api/genotype-matches", token, map[string]string{"patientGenotype": "XY", "partnerGenotype": "AA"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
