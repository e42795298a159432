// Package storage is the on-device key-value state: the auth cache and the
// cached health tips live here.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"

	"drepalife-app/internal/config"
)

// ErrNotFound is returned when a key is absent or expired
var ErrNotFound = errors.New("key not found")

// Store is the key-value contract the client state is written through.
// A ttl of zero keeps the entry until it is deleted.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open builds the store selected by cfg.Driver.
func Open(cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create state dir: %w", err)
		}
		return NewGormStore(sqlite.Open(cfg.DSN), logger)
	case "mysql":
		return NewGormStore(mysql.Open(cfg.DSN), logger)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
