package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(filepath.Join(dir, "data.json"), filepath.Join(dir, "initial-pull.json"))
}

func TestFileStore_LoadAbsentReturnsEmptyDefault(t *testing.T) {
	s := newTestFileStore(t)

	state, err := s.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Scores)
	assert.Empty(t, state.RiskAlerts)
	assert.Empty(t, state.TopMentions)
	assert.JSONEq(t, `{}`, string(state.AccountProfiles))
}

func TestFileStore_LoadCorruptReturnsEmptyDefault(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"scores": [{"date":`), 0o644))
	s := NewFileStore(dataPath, filepath.Join(dir, "posts.json"))

	state, err := s.LoadDashboard(context.Background())
	require.NoError(t, err, "corrupt state is treated as absent, never fatal")
	assert.Empty(t, state.Scores)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	state := domain.NewDashboardState()
	state.Scores = []domain.DailyScore{{Date: "2026-08-30", Score: 73, TotalTweets: 12}}
	state.Meta = domain.Meta{LastUpdated: "2026-08-30T12:00:00Z", Targets: []string{"@rainmakercorp"}}
	require.NoError(t, s.SaveDashboard(ctx, state))

	loaded, err := s.LoadDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Scores, loaded.Scores)
	assert.Equal(t, state.Meta, loaded.Meta)
}

func TestFileStore_SaveReplacesAtomically(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	first := domain.NewDashboardState()
	first.Scores = []domain.DailyScore{{Date: "2026-08-29", Score: 40}}
	require.NoError(t, s.SaveDashboard(ctx, first))

	second := domain.NewDashboardState()
	second.Scores = []domain.DailyScore{{Date: "2026-08-30", Score: 60}}
	require.NoError(t, s.SaveDashboard(ctx, second))

	loaded, err := s.LoadDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Scores, 1)
	assert.Equal(t, "2026-08-30", loaded.Scores[0].Date)

	// No leftover temp files next to the state file.
	entries, err := os.ReadDir(filepath.Dir(s.dataPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_PartialDocumentNormalized(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"scores": null}`), 0o644))
	s := NewFileStore(dataPath, filepath.Join(dir, "posts.json"))

	state, err := s.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, state.Scores)
	assert.NotNil(t, state.RiskAlerts)
	assert.JSONEq(t, `{}`, string(state.Aggregate))
}

func TestFileStore_PostsRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	state := domain.NewPostState()
	state.RecentPosts = []domain.Post{{Account: "@a", Content: "hello", EngagementScore: 12.5}}
	state.RiskSignals = []string{"scam"}
	require.NoError(t, s.SavePosts(ctx, state))

	loaded, err := s.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.RecentPosts, loaded.RecentPosts)
	assert.Equal(t, state.RiskSignals, loaded.RiskSignals)
}
