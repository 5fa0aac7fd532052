package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	iredis "github.com/Joesmod/rainmaker-dashboard/internal/redis"
	"github.com/redis/go-redis/v9"
)

// Default Redis keys for the two persisted documents.
const (
	DashboardKey = "tracker:dashboard"
	PostsKey     = "tracker:posts"
)

// RedisStore persists both state documents as JSON values under fixed keys.
// SET is atomic, so readers never observe a partial document.
type RedisStore struct {
	client       *iredis.Client
	dashboardKey string
	postsKey     string
}

func NewRedisStore(client *iredis.Client, dashboardKey, postsKey string) *RedisStore {
	return &RedisStore{client: client, dashboardKey: dashboardKey, postsKey: postsKey}
}

func (s *RedisStore) LoadDashboard(ctx context.Context) (*domain.DashboardState, error) {
	raw, err := s.loadKey(ctx, s.dashboardKey)
	if err != nil {
		return nil, err
	}

	state := domain.NewDashboardState()
	if raw != nil {
		var decoded domain.DashboardState
		if err := json.Unmarshal(raw, &decoded); err != nil {
			slog.Warn("Malformed state document in redis, starting from empty state", "key", s.dashboardKey, "error", err)
		} else {
			state = &decoded
		}
	}
	normalizeDashboard(state)
	return state, nil
}

func (s *RedisStore) SaveDashboard(ctx context.Context, state *domain.DashboardState) error {
	return s.saveKey(ctx, s.dashboardKey, state)
}

func (s *RedisStore) LoadPosts(ctx context.Context) (*domain.PostState, error) {
	raw, err := s.loadKey(ctx, s.postsKey)
	if err != nil {
		return nil, err
	}

	state := domain.NewPostState()
	if raw != nil {
		var decoded domain.PostState
		if err := json.Unmarshal(raw, &decoded); err != nil {
			slog.Warn("Malformed state document in redis, starting from empty state", "key", s.postsKey, "error", err)
		} else {
			state = &decoded
		}
	}
	normalizePosts(state)
	return state, nil
}

func (s *RedisStore) SavePosts(ctx context.Context, state *domain.PostState) error {
	return s.saveKey(ctx, s.postsKey, state)
}

// loadKey fetches the raw stored document. A missing key yields nil raw
// bytes; only backend errors propagate.
func (s *RedisStore) loadKey(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Underlying().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state from redis: %w", err)
	}
	return data, nil
}

func (s *RedisStore) saveKey(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.client.Underlying().Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state to redis: %w", err)
	}
	return nil
}
