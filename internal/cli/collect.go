package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Joesmod/rainmaker-dashboard/internal/pipeline"
	"github.com/Joesmod/rainmaker-dashboard/internal/twitter"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch mentions and update the dashboard",
	Long: `Fetch recent mentions of the tracked accounts from the Twitter API,
score them, and merge the results into the dashboard state document.

Each run snapshots the raw batch under the raw directory so it can later be
replayed into the posts pipeline with 'tracker score'.

Examples:
  tracker collect              # Fetch, score, and merge into the dashboard
  tracker collect --raw-only   # Snapshot the fetch without touching state`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().Bool("raw-only", false, "snapshot the fetched batch without updating the dashboard")
	collectCmd.Flags().Bool("no-snapshot", false, "skip writing the raw snapshot file")
}

func runCollect(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireTwitterToken(); err != nil {
		return err
	}

	ctx := cmd.Context()
	client := twitter.NewClient(cfg.TwitterBearerToken)

	mentions, err := client.CollectMentions(ctx, cfg.SearchQueries())
	if err != nil {
		return fmt.Errorf("failed to collect mentions: %w", err)
	}

	noSnapshot, _ := cmd.Flags().GetBool("no-snapshot")
	if !noSnapshot {
		path, err := pipeline.WriteRawMentions(cfg.RawDir, mentions, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Raw snapshot written to %s\n", path)
	}

	rawOnly, _ := cmd.Flags().GetBool("raw-only")
	if rawOnly {
		fmt.Printf("Fetched %d mentions (dashboard untouched)\n", len(mentions))
		return nil
	}

	store, closeStore, err := newStore()
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := newService(store).Run(ctx, mentions)
	if err != nil {
		return err
	}

	printRunSummary(result)
	return nil
}
