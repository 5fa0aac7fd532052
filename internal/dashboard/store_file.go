package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

// FileStore persists both state documents as JSON files. Writes go to a
// temp file in the target directory followed by a rename, so a crash
// mid-run leaves the previous document intact.
type FileStore struct {
	dataPath  string
	postsPath string
}

func NewFileStore(dataPath, postsPath string) *FileStore {
	return &FileStore{dataPath: dataPath, postsPath: postsPath}
}

func (s *FileStore) LoadDashboard(_ context.Context) (*domain.DashboardState, error) {
	state := loadJSONFile(s.dataPath, domain.NewDashboardState)
	normalizeDashboard(state)
	return state, nil
}

func (s *FileStore) SaveDashboard(_ context.Context, state *domain.DashboardState) error {
	return writeJSONFile(s.dataPath, state)
}

func (s *FileStore) LoadPosts(_ context.Context) (*domain.PostState, error) {
	state := loadJSONFile(s.postsPath, domain.NewPostState)
	normalizePosts(state)
	return state, nil
}

func (s *FileStore) SavePosts(_ context.Context, state *domain.PostState) error {
	return writeJSONFile(s.postsPath, state)
}

// loadJSONFile decodes path into a fresh document. Absent files are the
// normal first-run case; malformed files are treated as absent with a
// warning, never as fatal.
func loadJSONFile[T any](path string, empty func() *T) *T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Unreadable state file, starting from empty state", "path", path, "error", err)
		}
		return empty()
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		slog.Warn("Malformed state file, starting from empty state", "path", path, "error", err)
		return empty()
	}
	return &decoded
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
