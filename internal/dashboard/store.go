package dashboard

import (
	"context"
	"encoding/json"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

// Store abstracts persisted dashboard state.
// File implementation is the default for single-machine runs.
// Redis implementation serves deployments where the display tooling reads
// the document from a shared key. In-memory implementation backs tests and
// dry runs.
//
// Loads never fail on absent or malformed state: both yield the empty
// default shape. Only genuine backend errors (e.g. a lost Redis connection)
// surface as errors.
type Store interface {
	LoadDashboard(ctx context.Context) (*domain.DashboardState, error)
	SaveDashboard(ctx context.Context, state *domain.DashboardState) error

	LoadPosts(ctx context.Context) (*domain.PostState, error)
	SavePosts(ctx context.Context, state *domain.PostState) error
}

// normalizeDashboard repairs nil collections after decoding partial or
// hand-edited documents so downstream code and the wire format see [] and
// {} rather than null.
func normalizeDashboard(s *domain.DashboardState) {
	if s.Scores == nil {
		s.Scores = []domain.DailyScore{}
	}
	if s.RiskAlerts == nil {
		s.RiskAlerts = []domain.RiskAlert{}
	}
	if s.TopMentions == nil {
		s.TopMentions = []domain.TopMention{}
	}
	if len(s.AccountProfiles) == 0 {
		s.AccountProfiles = json.RawMessage(`{}`)
	}
	if len(s.Aggregate) == 0 {
		s.Aggregate = json.RawMessage(`{}`)
	}
}

func normalizePosts(s *domain.PostState) {
	if s.RecentPosts == nil {
		s.RecentPosts = []domain.Post{}
	}
	if s.RiskSignals == nil {
		s.RiskSignals = []string{}
	}
	if len(s.Accounts) == 0 {
		s.Accounts = json.RawMessage(`{}`)
	}
}
