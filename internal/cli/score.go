package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joesmod/rainmaker-dashboard/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score [raw-files...]",
	Short: "Score the posts state document",
	Long: `Score posts-mode state. Without arguments the persisted post list is
rescored in place, filling in sentiment and engagement for entries that lack
them. With raw snapshot files as arguments, each batch is scored with the
polarity policy and ingested into the post list.

Examples:
  tracker score                          # Rescore the persisted posts
  tracker score raw/raw_mentions_*.json  # Ingest raw snapshots`,
	Args: cobra.ArbitraryArgs,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, closeStore, err := newStore()
	if err != nil {
		return err
	}
	defer closeStore()

	svc := newService(store)

	if len(args) == 0 {
		result, err := svc.RescorePosts(ctx)
		if err != nil {
			return err
		}
		printPostsSummary(result, "rescored")
		return nil
	}

	var last *pipeline.PostsResult
	total := 0
	for _, path := range args {
		mentions, err := pipeline.ReadRawMentions(path)
		if err != nil {
			return err
		}
		result, err := svc.IngestMentions(ctx, mentions)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		total += result.Ingested
		last = result
	}

	last.Ingested = total
	printPostsSummary(last, "ingested")
	return nil
}
