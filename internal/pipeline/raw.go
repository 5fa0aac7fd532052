package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

// WriteRawMentions snapshots a fetched batch into dir so it can be replayed
// through the posts pipeline later. Returns the written path.
func WriteRawMentions(dir string, mentions []domain.Mention, fetchedAt time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create raw directory: %w", err)
	}

	file := rawMentionsFile{
		Mentions:  mentions,
		FetchedAt: fetchedAt.UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode raw mentions: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("raw_mentions_%s.json", fetchedAt.UTC().Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write raw mentions file: %w", err)
	}
	return path, nil
}
