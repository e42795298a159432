package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
	"drepalife-app/internal/storage"
)

const (
	tipsCacheKey     = "health_tips_cache"
	tipsTimestampKey = "health_tips_timestamp"
)

var (
	// ErrTipIncomplete is returned when a tip is saved without a title or content.
	ErrTipIncomplete = errors.New("title and content are required")
	// ErrTipIDRequired is returned when deleting without an id.
	ErrTipIDRequired = errors.New("tip id is required")
)

// TipsService lists and edits health tips, keeping a short-lived copy on the device.
type TipsService struct {
	api      API
	store    storage.Store
	sessions *session.Cache
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
	group    singleflight.Group
}

// NewTipsService creates a TipsService. Cached tips count as fresh for ttl.
func NewTipsService(api API, store storage.Store, sessions *session.Cache, ttl time.Duration, logger *zap.Logger) *TipsService {
	return &TipsService{
		api:      api,
		store:    store,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the tips, from the device cache while it is fresh unless force
// is set. When the platform cannot be reached any cached copy is returned.
func (s *TipsService) List(ctx context.Context, force bool) ([]models.HealthTip, error) {
	cached, fetchedAt, ok := s.readCache(ctx)
	if ok && !force && s.now().Sub(fetchedAt) < s.ttl {
		return cached, nil
	}

	v, err, _ := s.group.Do(tipsCacheKey, func() (interface{}, error) {
		tips, err := s.api.ListHealthTips(ctx)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, tips)
		return tips, nil
	})
	if err != nil {
		err = expireOnUnauthorized(ctx, s.sessions, s.logger, err)
		if ok {
			s.logger.Warn("serving cached health tips after fetch failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	return v.([]models.HealthTip), nil
}

// Save creates the tip when id is empty and updates it otherwise.
func (s *TipsService) Save(ctx context.Context, id, title, content string) (*models.HealthTip, error) {
	in := models.HealthTipInput{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	if in.Title == "" || in.Content == "" {
		return nil, ErrTipIncomplete
	}

	var (
		tip *models.HealthTip
		err error
	)
	if id == "" {
		tip, err = s.api.CreateHealthTip(ctx, in)
	} else {
		tip, err = s.api.UpdateHealthTip(ctx, id, in)
	}
	if err != nil {
		return nil, expireOnUnauthorized(ctx, s.sessions, s.logger, err)
	}
	s.invalidate(ctx)
	return tip, nil
}

// Delete removes a tip.
func (s *TipsService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrTipIDRequired
	}
	if err := s.api.DeleteHealthTip(ctx, id); err != nil {
		return expireOnUnauthorized(ctx, s.sessions, s.logger, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *TipsService) readCache(ctx context.Context) ([]models.HealthTip, time.Time, bool) {
	raw, err := s.store.Get(ctx, tipsCacheKey)
	if err != nil {
		return nil, time.Time{}, false
	}
	var tips []models.HealthTip
	if err := json.Unmarshal([]byte(raw), &tips); err != nil {
		s.logger.Warn("ignoring unreadable health tips cache", zap.Error(err))
		return nil, time.Time{}, false
	}

	// A missing timestamp leaves the copy usable as a fallback but never fresh.
	var fetchedAt time.Time
	if ts, err := s.store.Get(ctx, tipsTimestampKey); err == nil {
		if ms, err := strconv.ParseInt(ts, 10, 64); err == nil {
			fetchedAt = time.UnixMilli(ms)
		}
	}
	return tips, fetchedAt, true
}

func (s *TipsService) writeCache(ctx context.Context, tips []models.HealthTip) {
	raw, err := json.Marshal(tips)
	if err != nil {
		s.logger.Warn("failed to encode health tips cache", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, tipsCacheKey, string(raw), 0); err != nil {
		s.logger.Warn("failed to write health tips cache", zap.Error(err))
		return
	}
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.store.Set(ctx, tipsTimestampKey, ts, 0); err != nil {
		s.logger.Warn("failed to write health tips timestamp", zap.Error(err))
	}
}

func (s *TipsService) invalidate(ctx context.Context) {
	if err := s.store.Delete(ctx, tipsCacheKey, tipsTimestampKey); err != nil {
		s.logger.Warn("failed to invalidate health tips cache", zap.Error(err))
	}
}
