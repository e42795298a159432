package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drepalife-app/internal/config"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	s, err := NewGormStore(sqlite.Open(filepath.Join(t.TempDir(), "state.db")), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "drepalife")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "token")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "token", "abc", 0))
	got, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	require.NoError(t, s.Set(ctx, "token", "def", 0))
	got, err = s.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "def", got)

	require.NoError(t, s.Set(ctx, "user", `{"name":"Ama"}`, 0))
	require.NoError(t, s.Delete(ctx, "token", "user", "missing"))

	_, err = s.Get(ctx, "token")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "user")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx))
}

func TestGormStore_CRUD(t *testing.T) {
	exerciseStore(t, newTestGormStore(t))
}

func TestRedisStore_CRUD(t *testing.T) {
	s, _ := newTestRedisStore(t)
	exerciseStore(t, s)
}

func TestGormStore_TTL(t *testing.T) {
	s := newTestGormStore(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "health_tips_cache", "[]", time.Minute))
	_, err := s.Get(ctx, "health_tips_cache")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "health_tips_cache")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_TTLAndPrefix(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", "abc", time.Minute))
	require.True(t, mr.Exists("drepalife:token"))

	mr.FastForward(2 * time.Minute)
	_, err := s.Get(ctx, "token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := NewGormStore(sqlite.Open(path), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "token", "abc", 0))
	require.NoError(t, first.Close())

	second, err := NewGormStore(sqlite.Open(path), zap.NewNop())
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestOpen(t *testing.T) {
	t.Run("sqlite creates state dir", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "nested", "state.db")
		s, err := Open(config.StorageConfig{Driver: "sqlite", DSN: dsn}, zap.NewNop())
		require.NoError(t, err)
		require.IsType(t, &GormStore{}, s)
		require.NoError(t, s.Close())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		s, err := Open(config.StorageConfig{Driver: "redis", RedisAddr: mr.Addr(), KeyPrefix: "x"}, zap.NewNop())
		require.NoError(t, err)
		require.IsType(t, &RedisStore{}, s)
		require.NoError(t, s.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(config.StorageConfig{Driver: "bolt"}, zap.NewNop())
		require.Error(t, err)
	})
}
