package dashboard

import (
	"context"
	"encoding/json"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

// MemoryStore keeps state in process memory. Used by tests and dry runs.
// Documents round-trip through JSON on load/save so callers never share
// slices with the store, matching the other backends.
type MemoryStore struct {
	dashboard []byte
	posts     []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadDashboard(_ context.Context) (*domain.DashboardState, error) {
	state := domain.NewDashboardState()
	if s.dashboard != nil {
		if err := json.Unmarshal(s.dashboard, state); err != nil {
			state = domain.NewDashboardState()
		}
	}
	normalizeDashboard(state)
	return state, nil
}

func (s *MemoryStore) SaveDashboard(_ context.Context, state *domain.DashboardState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.dashboard = data
	return nil
}

func (s *MemoryStore) LoadPosts(_ context.Context) (*domain.PostState, error) {
	state := domain.NewPostState()
	if s.posts != nil {
		if err := json.Unmarshal(s.posts, state); err != nil {
			state = domain.NewPostState()
		}
	}
	normalizePosts(state)
	return state, nil
}

func (s *MemoryStore) SavePosts(_ context.Context, state *domain.PostState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.posts = data
	return nil
}
