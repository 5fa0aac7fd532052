// Package cli contains all commands for the tracker CLI.
package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/Joesmod/rainmaker-dashboard/internal/config"
	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
	"github.com/Joesmod/rainmaker-dashboard/internal/logging"
	"github.com/Joesmod/rainmaker-dashboard/internal/pipeline"
	"github.com/Joesmod/rainmaker-dashboard/internal/redis"
	"github.com/Joesmod/rainmaker-dashboard/internal/version"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Brand perception tracker for monitored social accounts",
	Long: `tracker collects mentions of the monitored accounts, scores their
sentiment and engagement, and maintains the dashboard and posts state
documents the web dashboard reads.

Example usage:
  tracker collect              # Fetch mentions, score them, update the dashboard
  tracker score                # Rescore the persisted posts list
  tracker score raw/batch.json # Ingest a raw mention snapshot into posts
  tracker serve                # Serve the state documents over HTTP`,
	Version:       version.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// newStore picks the configured state backend: Redis when REDIS_URL is set,
// the JSON files otherwise.
func newStore() (dashboard.Store, func(), error) {
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return dashboard.NewRedisStore(client, dashboard.DashboardKey, dashboard.PostsKey), func() { _ = client.Close() }, nil
	}
	return dashboard.NewFileStore(cfg.DataFile, cfg.PostsFile), func() {}, nil
}

func newService(store dashboard.Store) *pipeline.Service {
	return pipeline.NewService(store, clockwork.NewRealClock(), pipeline.Options{
		Targets:     cfg.TargetList(),
		Keywords:    cfg.KeywordList(),
		HistoryDays: cfg.ScoreHistoryDays,
		MaxAlerts:   cfg.MaxRiskAlerts,
		TopCount:    cfg.TopMentionsCount,
	})
}
