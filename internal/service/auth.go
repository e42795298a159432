package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
)

var (
	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("please enter your email and password")
	// ErrPasswordMismatch is returned when the confirmation differs from the password.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// LoginResult is the user now on the device and the screen to open.
// User is nil when nobody is logged in.
type LoginResult struct {
	User    *models.User
	Route   string
	Message string
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            models.Role
}

// AuthService logs users in and out of this device.
type AuthService struct {
	api      API
	sessions *session.Cache
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(api API, sessions *session.Cache, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, logger: logger}
}

// Login authenticates, caches the token and user, and picks the dashboard by role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, res.Token, *res.User); err != nil {
		return nil, err
	}

	route, ok := session.DashboardFor(res.User.Role)
	if !ok {
		s.logger.Warn("logged in with a role that has no dashboard", zap.String("role", string(res.User.Role)))
	}
	msg := res.Message
	if msg == "" {
		msg = "Login successful!"
	}
	return &LoginResult{User: res.User, Route: route, Message: msg}, nil
}

// Register creates an account. The caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.RegisterResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	role := in.Role
	if role == "" {
		role = models.RolePatient
	}
	res, err := s.api.Register(ctx, models.RegisterRequest{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Logout removes the cached session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Restore reads the cached session at start-up and decides the first screen.
// An absent or expired session routes to login without an error.
func (s *AuthService) Restore(ctx context.Context) (*LoginResult, error) {
	sess, err := s.sessions.Load(ctx)
	switch {
	case errors.Is(err, session.ErrNoSession):
		return &LoginResult{Route: session.RouteLogin}, nil
	case errors.Is(err, session.ErrSessionExpired):
		return &LoginResult{Route: session.RouteLogin, Message: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	route, _ := session.DashboardFor(sess.User.Role)
	return &LoginResult{User: &sess.User, Route: route}, nil
}
