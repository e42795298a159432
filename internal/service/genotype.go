package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"drepalife-app/internal/genotype"
	"drepalife-app/internal/session"
)

// ErrGenotypeRequired is returned when either genotype is left blank.
var ErrGenotypeRequired = errors.New("please select both genotypes")

// CompatibilityResult is a finished compatibility check.
type CompatibilityResult struct {
	Patient          genotype.Genotype
	Partner          genotype.Genotype
	Key              string
	Profile          genotype.Profile
	RiskMessage      string
	ChildPercentages map[string]float64
	PatientName      string
	CheckedAt        time.Time
}

// GenotypeService runs compatibility checks against the platform.
type GenotypeService struct {
	api      API
	sessions *session.Cache
	logger   *zap.Logger
	now      func() time.Time
}

// NewGenotypeService creates a new GenotypeService.
func NewGenotypeService(api API, sessions *session.Cache, logger *zap.Logger) *GenotypeService {
	return &GenotypeService{api: api, sessions: sessions, logger: logger, now: time.Now}
}

// Check asks the platform for the offspring risk of patient and partner and
// merges it into the matching local profile. A logged-in session is required.
func (s *GenotypeService) Check(ctx context.Context, patient, partner string) (*CompatibilityResult, error) {
	if strings.TrimSpace(patient) == "" || strings.TrimSpace(partner) == "" {
		return nil, ErrGenotypeRequired
	}
	g1, err := genotype.Parse(patient)
	if err != nil {
		return nil, err
	}
	g2, err := genotype.Parse(partner)
	if err != nil {
		return nil, err
	}
	key, profile, err := genotype.LookupWithKey(g1, g2)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.api.GenotypeMatch(ctx, string(g1), string(g2))
	if err != nil {
		return nil, expireOnUnauthorized(ctx, s.sessions, s.logger, err)
	}

	s.logger.Debug("genotype compatibility checked",
		zap.String("combination", key),
		zap.String("risk", string(profile.Risk)),
	)
	return &CompatibilityResult{
		Patient:          g1,
		Partner:          g2,
		Key:              key,
		Profile:          genotype.Merge(key, profile, data.RiskMessage, data.ChildPercentages),
		RiskMessage:      data.RiskMessage,
		ChildPercentages: data.ChildPercentages,
		PatientName:      sess.User.Name,
		CheckedAt:        s.now(),
	}, nil
}

// WriteReport renders the report for res into dir and returns the file path.
func (s *GenotypeService) WriteReport(ctx context.Context, res *CompatibilityResult, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	report := genotype.Report{
		GeneratedAt:     s.now(),
		PatientName:     res.PatientName,
		PatientGenotype: res.Patient,
		PartnerGenotype: res.Partner,
		Profile:         res.Profile,
		PercentageAS:    res.ChildPercentages[string(genotype.AS)],
		PercentageSS:    res.ChildPercentages[string(genotype.SS)],
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(dir, report.FileName())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	if err := report.Render(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	s.logger.Info("compatibility report written", zap.String("path", path))
	return path, nil
}
