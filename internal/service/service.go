// Package service holds the client use cases: what each screen does with the
// platform API and the on-device session.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"drepalife-app/internal/apiclient"
	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
)

// API is the part of the platform client the services call.
type API interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	Consult(ctx context.Context, symptoms string) (string, error)
	ListHealthTips(ctx context.Context) ([]models.HealthTip, error)
	CreateHealthTip(ctx context.Context, in models.HealthTipInput) (*models.HealthTip, error)
	UpdateHealthTip(ctx context.Context, id string, in models.HealthTipInput) (*models.HealthTip, error)
	DeleteHealthTip(ctx context.Context, id string) error
	GenotypeMatch(ctx context.Context, patient, partner string) (*models.GenotypeMatchData, error)
}

var _ API = (*apiclient.Client)(nil)

// expireOnUnauthorized clears the cached session when the platform rejected
// its token, and reports ErrSessionExpired alongside the API error.
func expireOnUnauthorized(ctx context.Context, sessions *session.Cache, logger *zap.Logger, err error) error {
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		return err
	}
	logger.Info("platform rejected the session, clearing it", zap.Error(err))
	if clearErr := sessions.Clear(ctx); clearErr != nil {
		return fmt.Errorf("%w: %w", err, clearErr)
	}
	return fmt.Errorf("%w: %w", session.ErrSessionExpired, err)
}
