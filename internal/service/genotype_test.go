package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drepalife-app/internal/genotype"
	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
)

func TestGenotypeService_CheckAgainstPlatform(t *testing.T) {
	ctx := context.Background()
	p := newPlatform(t)
	auth := NewAuthService(p.client, p.sessions, zap.NewNop())
	svc := NewGenotypeService(p.client, p.sessions, zap.NewNop())

	_, err := auth.Register(ctx, RegisterInput{Name: "Akua", Email: "akua@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	_, err = auth.Login(ctx, "akua@example.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Check(ctx, "ss", "as")
	require.NoError(t, err)
	assert.Equal(t, "AS-SS", res.Key)
	assert.Equal(t, genotype.RiskHigh, res.Profile.Risk)
	assert.Equal(t, float64(50), res.Profile.Percentage)
	assert.Equal(t, res.RiskMessage, res.Profile.Description)
	assert.Equal(t, map[string]float64{"AS": 50, "SS": 50}, res.ChildPercentages)
	assert.Equal(t, "Akua", res.PatientName)

	res, err = svc.Check(ctx, "SS", "SS")
	require.NoError(t, err)
	assert.Equal(t, float64(100), res.Profile.Percentage)
}

func TestGenotypeService_CheckRequirements(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{}
	sessions := session.NewCache(newStore(t), zap.NewNop())
	svc := NewGenotypeService(api, sessions, zap.NewNop())

	_, err := svc.Check(ctx, "AA", " ")
	assert.ErrorIs(t, err, ErrGenotypeRequired)

	_, err = svc.Check(ctx, "AA", "XY")
	assert.ErrorIs(t, err, genotype.ErrInvalidGenotype)

	_, err = svc.Check(ctx, "AC", "CC")
	assert.ErrorIs(t, err, genotype.ErrUnknownCombination)

	_, err = svc.Check(ctx, "AA", "AS")
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Zero(t, api.Calls("GenotypeMatch"))
}

func TestGenotypeService_UnauthorizedClearsSession(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{genotypeMatch: func(context.Context, string, string) (*models.GenotypeMatchData, error) {
		return nil, errUnauthorized
	}}
	sessions := session.NewCache(newStore(t), zap.NewNop())
	saveSession(t, sessions)
	svc := NewGenotypeService(api, sessions, zap.NewNop())

	_, err := svc.Check(ctx, "AA", "AS")
	require.ErrorIs(t, err, session.ErrSessionExpired)

	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestGenotypeService_WriteReport(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{genotypeMatch: func(_ context.Context, p, q string) (*models.GenotypeMatchData, error) {
		d := genotype.OffspringDistribution(genotype.Genotype(p), genotype.Genotype(q))
		return &models.GenotypeMatchData{RiskMessage: d.RiskMessage(), ChildPercentages: d.Strings()}, nil
	}}
	sessions := session.NewCache(newStore(t), zap.NewNop())
	saveSession(t, sessions)
	svc := NewGenotypeService(api, sessions, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC) }

	res, err := svc.Check(ctx, "AS", "AS")
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "reports")
	path, err := svc.WriteReport(ctx, res, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Genotype_Compatibility_Report_AS_AS_"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "Patient: Abena")
	assert.Contains(t, text, "Risk of AS offspring: 50%")
	assert.Contains(t, text, "Risk of SS offspring: 25%")
	assert.Contains(t, text, "Generated on: 2025-03-04")
}
