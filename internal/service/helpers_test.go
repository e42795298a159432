package service

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drepalife-app/internal/apiclient"
	"drepalife-app/internal/config"
	"drepalife-app/internal/devapi"
	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
	"drepalife-app/internal/storage"
	"drepalife-app/internal/utils"
)

func newStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.NewGormStore(sqlite.Open(filepath.Join(t.TempDir(), "state.db")), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// platform is a devapi instance with a client whose token comes from sessions.
type platform struct {
	client   *apiclient.Client
	store    storage.Store
	sessions *session.Cache
}

func newPlatform(t *testing.T) *platform {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := devapi.New(config.DevAPIConfig{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 60,
		Origin:               "http://localhost:8081",
	}, sqlite.Open(filepath.Join(t.TempDir(), "api.db")), zap.NewNop())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Close()
	})

	store := newStore(t)
	sessions := session.NewCache(store, zap.NewNop())
	return &platform{
		client:   apiclient.New(apiclient.Options{BaseURL: ts.URL, Timeout: 5 * time.Second}, sessions, zap.NewNop()),
		store:    store,
		sessions: sessions,
	}
}

func saveSession(t *testing.T, sessions *session.Cache) {
	t.Helper()
	require.NoError(t, sessions.Save(context.Background(), "opaque-token", models.User{
		BaseModel: models.BaseModel{ID: "u-1"},
		Name:      "Abena",
		Email:     "abena@example.com",
		Role:      models.RolePatient,
	}))
}

// saveExpiredSession caches a correctly signed HS256 token whose exp has passed.
func saveExpiredSession(t *testing.T, sessions *session.Cache) {
	t.Helper()
	user := models.User{BaseModel: models.BaseModel{ID: "u-2"}, Name: "Yaa", Role: models.RolePatient}
	token, err := utils.GenerateToken(&user, "test-secret", -time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(context.Background(), token, user))
}

// stubAPI answers from function fields and counts calls.
type stubAPI struct {
	mu    sync.Mutex
	calls map[string]int

	listTips      func(ctx context.Context) ([]models.HealthTip, error)
	createTip     func(ctx context.Context, in models.HealthTipInput) (*models.HealthTip, error)
	updateTip     func(ctx context.Context, id string, in models.HealthTipInput) (*models.HealthTip, error)
	deleteTip     func(ctx context.Context, id string) error
	consult       func(ctx context.Context, symptoms string) (string, error)
	genotypeMatch func(ctx context.Context, patient, partner string) (*models.GenotypeMatchData, error)
}

func (s *stubAPI) count(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
}

func (s *stubAPI) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubAPI) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	s.count("Login")
	return nil, &apiclient.APIError{StatusCode: 401, Message: "Invalid email or password"}
}

func (s *stubAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	s.count("Register")
	return &models.RegisterResponse{Success: true, User: &models.User{Name: req.Name, Role: req.Role}}, nil
}

func (s *stubAPI) Consult(ctx context.Context, symptoms string) (string, error) {
	s.count("Consult")
	return s.consult(ctx, symptoms)
}

func (s *stubAPI) ListHealthTips(ctx context.Context) ([]models.HealthTip, error) {
	s.count("ListHealthTips")
	return s.listTips(ctx)
}

func (s *stubAPI) CreateHealthTip(ctx context.Context, in models.HealthTipInput) (*models.HealthTip, error) {
	s.count("CreateHealthTip")
	return s.createTip(ctx, in)
}

func (s *stubAPI) UpdateHealthTip(ctx context.Context, id string, in models.HealthTipInput) (*models.HealthTip, error) {
	s.count("UpdateHealthTip")
	return s.updateTip(ctx, id, in)
}

func (s *stubAPI) DeleteHealthTip(ctx context.Context, id string) error {
	s.count("DeleteHealthTip")
	return s.deleteTip(ctx, id)
}

func (s *stubAPI) GenotypeMatch(ctx context.Context, patient, partner string) (*models.GenotypeMatchData, error) {
	s.count("GenotypeMatch")
	return s.genotypeMatch(ctx, patient, partner)
}

var errUnauthorized = &apiclient.APIError{StatusCode: 401, Message: "Invalid token: token is expired"}
