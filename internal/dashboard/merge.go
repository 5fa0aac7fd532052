package dashboard

import (
	"sort"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

// Merger reconciles freshly computed results into persisted state.
type Merger struct {
	historyDays int
	maxAlerts   int
	topCount    int
}

func NewMerger(historyDays, maxAlerts, topCount int) *Merger {
	return &Merger{
		historyDays: historyDays,
		maxAlerts:   maxAlerts,
		topCount:    topCount,
	}
}

// MergeDaily applies one run's results to the date-keyed dashboard state:
// replace-or-append today's score, append non-duplicate alerts, replace the
// top-mentions snapshot, refresh meta. Pass-through blobs are untouched.
func (m *Merger) MergeDaily(state *domain.DashboardState, score domain.DailyScore, alerts []domain.RiskAlert, top []domain.TopMention, meta domain.Meta) {
	kept := make([]domain.DailyScore, 0, len(state.Scores))
	for _, s := range state.Scores {
		if s.Date != score.Date {
			kept = append(kept, s)
		}
	}
	state.Scores = NewWindow(m.historyDays, kept).Append(score).Items()

	state.RiskAlerts = m.mergeAlerts(state.RiskAlerts, alerts)

	if top == nil {
		top = []domain.TopMention{}
	}
	state.TopMentions = top
	state.Meta = meta
}

// mergeAlerts appends alerts whose dedup key is unseen. First-seen wins: an
// incoming alert never replaces an existing one with the same key.
func (m *Merger) mergeAlerts(existing, incoming []domain.RiskAlert) []domain.RiskAlert {
	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[a.Post] = struct{}{}
	}

	window := NewWindow(m.maxAlerts, existing)
	for _, a := range incoming {
		if _, dup := seen[a.Post]; dup {
			continue
		}
		seen[a.Post] = struct{}{}
		window = window.Append(a)
	}
	return window.Items()
}

// TopMentions projects the batch's highest ranking-reach mentions into the
// dashboard snapshot, descending with ties kept in batch order.
func (m *Merger) TopMentions(scored []domain.ScoredMention, fallbackDate string) []domain.TopMention {
	ranked := make([]domain.ScoredMention, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankingReach > ranked[j].RankingReach
	})

	if len(ranked) > m.topCount {
		ranked = ranked[:m.topCount]
	}

	top := make([]domain.TopMention, 0, len(ranked))
	for _, s := range ranked {
		date := s.Date()
		if date == "" {
			date = fallbackDate
		}
		top = append(top, domain.TopMention{
			User:      s.Author,
			Text:      domain.Truncate(s.Text, topMentionTextLimit),
			Sentiment: s.Sentiment,
			Reach:     s.RankingReach,
			Date:      date,
		})
	}
	return top
}

const topMentionTextLimit = 280

// MergePosts applies the accumulate-and-resort mode: scored posts append to
// the running list, the whole list re-sorts by engagement score descending
// (stable), and risk signals union across all flagged posts. No date-based
// replacement happens here.
func MergePosts(state *domain.PostState, posts []domain.Post, pulledAt string) {
	state.RecentPosts = append(state.RecentPosts, posts...)
	ResortPosts(state)
	state.PulledAt = pulledAt
}

// ResortPosts re-sorts the running post list by engagement score descending
// (stable) and refreshes the risk-signal union. Used after in-place rescoring
// of existing posts.
func ResortPosts(state *domain.PostState) {
	sort.SliceStable(state.RecentPosts, func(i, j int) bool {
		return state.RecentPosts[i].EngagementScore > state.RecentPosts[j].EngagementScore
	})
	state.RiskSignals = unionRiskSignals(state.RiskSignals, state.RecentPosts)
}

// unionRiskSignals keeps existing signals in order and appends unseen
// keywords and topics from flagged posts.
func unionRiskSignals(existing []string, posts []domain.Post) []string {
	seen := make(map[string]struct{}, len(existing))
	union := make([]string, 0, len(existing))
	for _, s := range existing {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		union = append(union, s)
	}

	for _, p := range posts {
		if !p.RiskFlag {
			continue
		}
		for _, s := range append(append([]string{}, p.RiskKeywords...), p.Topics...) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			union = append(union, s)
		}
	}
	return union
}

