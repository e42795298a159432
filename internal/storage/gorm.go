package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"drepalife-app/internal/models"
)

// GormStore keeps entries in the kv_entries table of a SQL database
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewGormStore opens the database and migrates the kv_entries table.
func NewGormStore(dialector gorm.Dialector, logger *zap.Logger) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	return &GormStore{db: db, logger: logger, now: time.Now}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	if entry.ExpiresAt != nil && !s.now().Before(*entry.ExpiresAt) {
		if err := s.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to purge expired entry", zap.String("key", key), zap.Error(err))
		}
		return "", ErrNotFound
	}
	return entry.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	entry := models.KVEntry{Key: key, Value: value}
	if ttl > 0 {
		exp := s.now().Add(ttl)
		entry.ExpiresAt = &exp
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("`key` IN ?", keys).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
