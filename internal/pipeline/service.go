package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/Joesmod/rainmaker-dashboard/internal/metrics"
	"github.com/Joesmod/rainmaker-dashboard/internal/risk"
	"github.com/Joesmod/rainmaker-dashboard/internal/scoring"
	"github.com/Joesmod/rainmaker-dashboard/internal/sentiment"
)

const (
	defaultHistoryDays = 90
	defaultMaxAlerts   = 50
	defaultTopCount    = 20
)

// Options configures a Service. Zero caps fall back to the defaults.
type Options struct {
	Targets     []string
	Keywords    []string
	HistoryDays int
	MaxAlerts   int
	TopCount    int
}

// Service orchestrates one run of the scoring pipeline against a store.
type Service struct {
	mentionClassifier sentiment.Classifier
	postClassifier    sentiment.Classifier
	engagement        scoring.EngagementScorer
	reach             scoring.ReachEstimator
	detector          *risk.Detector
	merger            *dashboard.Merger
	store             dashboard.Store
	clock             clockwork.Clock
	riskKeywords      []string
	targets           []string
	keywords          []string
}

func NewService(store dashboard.Store, clock clockwork.Clock, opts Options) *Service {
	historyDays := opts.HistoryDays
	if historyDays <= 0 {
		historyDays = defaultHistoryDays
	}
	maxAlerts := opts.MaxAlerts
	if maxAlerts <= 0 {
		maxAlerts = defaultMaxAlerts
	}
	topCount := opts.TopCount
	if topCount <= 0 {
		topCount = defaultTopCount
	}

	return &Service{
		mentionClassifier: sentiment.NewMagnitudeClassifier(sentiment.DefaultMentionKeywords()),
		postClassifier:    sentiment.NewRatioClassifier(sentiment.DefaultPostKeywords()),
		engagement:        scoring.NewEngagementScorer(scoring.DefaultEngagementWeights()),
		reach:             scoring.NewReachEstimator(scoring.DefaultReachTiers()),
		detector:          risk.NewDetector(risk.DefaultConspiracyKeywords()),
		merger:            dashboard.NewMerger(historyDays, maxAlerts, topCount),
		store:             store,
		clock:             clock,
		riskKeywords:      sentiment.DefaultPostKeywords().Negative,
		targets:           opts.Targets,
		keywords:          opts.Keywords,
	}
}

// RunResult summarizes one dashboard-mode run for reporting.
type RunResult struct {
	Scored []domain.ScoredMention
	Daily  domain.DailyScore
	Alerts []domain.RiskAlert
	Counts scoring.SentimentCounts
	State  *domain.DashboardState
}

// Run scores one batch of mentions and merges the results into the persisted
// dashboard state. An empty batch still persists: the series gains a zeroed
// entry for today and pass-through fields carry forward unchanged.
func (s *Service) Run(ctx context.Context, batch []domain.Mention) (*RunResult, error) {
	unique := domain.DedupMentions(batch)

	scored := make([]domain.ScoredMention, 0, len(unique))
	for _, m := range unique {
		sm := s.ScoreMention(m)
		scored = append(scored, sm)
		metrics.MentionsScored.WithLabelValues(sm.Sentiment).Inc()
	}

	now := s.clock.Now().UTC()
	today := now.Format(time.DateOnly)

	brandScore := scoring.BrandScore(scored)
	metrics.BrandScore.Set(float64(brandScore))

	counts := scoring.CountSentiments(scored)
	pos, neg, neu := counts.Percentages()
	daily := domain.DailyScore{
		Date:        today,
		Score:       brandScore,
		Positive:    pos,
		Negative:    neg,
		Neutral:     neu,
		TotalTweets: counts.Total,
	}

	var alerts []domain.RiskAlert
	for _, sm := range scored {
		if alert, ok := s.detector.Evaluate(sm, today); ok {
			alerts = append(alerts, alert)
			metrics.RiskAlertsRaised.WithLabelValues(alert.Severity).Inc()
		}
	}

	state, err := s.store.LoadDashboard(ctx)
	if err != nil {
		metrics.PipelineRuns.WithLabelValues("dashboard", "error").Inc()
		return nil, fmt.Errorf("failed to load dashboard state: %w", err)
	}

	meta := domain.Meta{
		LastUpdated: now.Format(time.RFC3339),
		Targets:     s.targets,
		Keywords:    s.keywords,
	}
	s.merger.MergeDaily(state, daily, alerts, s.merger.TopMentions(scored, today), meta)

	if err := s.store.SaveDashboard(ctx, state); err != nil {
		metrics.StateSaves.WithLabelValues("dashboard", "error").Inc()
		metrics.PipelineRuns.WithLabelValues("dashboard", "error").Inc()
		return nil, fmt.Errorf("failed to save dashboard state: %w", err)
	}
	metrics.StateSaves.WithLabelValues("dashboard", "ok").Inc()
	metrics.PipelineRuns.WithLabelValues("dashboard", "ok").Inc()

	slog.Info("Dashboard run complete",
		"mentions", counts.Total,
		"brand_score", brandScore,
		"alerts", len(alerts),
	)

	return &RunResult{
		Scored: scored,
		Daily:  daily,
		Alerts: alerts,
		Counts: counts,
		State:  state,
	}, nil
}

// ScoreMention derives the full scored record for one raw mention. Raw-API
// mentions use the magnitude policy; visibility is handled downstream, so
// confidence here depends only on keyword counts.
func (s *Service) ScoreMention(m domain.Mention) domain.ScoredMention {
	result := s.mentionClassifier.Classify(m.Text)

	engagement := s.engagement.Score(map[string]int{
		"likes":    m.Likes,
		"retweets": m.Retweets,
		"replies":  m.Replies,
		"views":    m.Views,
	})

	riskKeywords := sentiment.MatchKeywords(m.Text, s.riskKeywords)

	return domain.ScoredMention{
		Mention:         m,
		Sentiment:       result.Label,
		SentimentScore:  round2(result.Score),
		EngagementScore: engagement,
		ReachMultiplier: s.reach.Multiplier(m.AuthorFollowers),
		CompositeScore:  s.reach.Composite(engagement, m.AuthorFollowers),
		RankingReach:    scoring.RankingReach(m),
		RiskKeywords:    riskKeywords,
		RiskFlag:        len(riskKeywords) > 0,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
