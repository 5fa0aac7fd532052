package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/Joesmod/rainmaker-dashboard/internal/metrics"
	"github.com/Joesmod/rainmaker-dashboard/internal/scoring"
	"github.com/Joesmod/rainmaker-dashboard/internal/sentiment"
)

// PostsResult summarizes one posts-mode run.
type PostsResult struct {
	Ingested int
	State    *domain.PostState
}

// IngestMentions scores raw mentions with the ratio policy, converts them to
// the posts schema, and merges them into the running post list. Posts mode
// accumulates: there is no date-based replacement.
func (s *Service) IngestMentions(ctx context.Context, batch []domain.Mention) (*PostsResult, error) {
	unique := domain.DedupMentions(batch)

	posts := make([]domain.Post, 0, len(unique))
	for _, m := range unique {
		sm := s.scoreMentionRatio(m)
		posts = append(posts, mentionToPost(sm))
		metrics.MentionsScored.WithLabelValues(sm.Sentiment).Inc()
	}

	state, err := s.store.LoadPosts(ctx)
	if err != nil {
		metrics.PipelineRuns.WithLabelValues("posts", "error").Inc()
		return nil, fmt.Errorf("failed to load posts state: %w", err)
	}

	pulledAt := s.clock.Now().UTC().Format(time.RFC3339)
	dashboard.MergePosts(state, posts, pulledAt)

	if err := s.store.SavePosts(ctx, state); err != nil {
		metrics.StateSaves.WithLabelValues("posts", "error").Inc()
		metrics.PipelineRuns.WithLabelValues("posts", "error").Inc()
		return nil, fmt.Errorf("failed to save posts state: %w", err)
	}
	metrics.StateSaves.WithLabelValues("posts", "ok").Inc()
	metrics.PipelineRuns.WithLabelValues("posts", "ok").Inc()

	slog.Info("Posts run complete", "ingested", len(posts), "total_posts", len(state.RecentPosts))
	return &PostsResult{Ingested: len(posts), State: state}, nil
}

// RescorePosts re-runs scoring over the already-persisted post list, then
// resorts and refreshes the risk-signal union. pulled_at is left untouched:
// nothing new was pulled.
func (s *Service) RescorePosts(ctx context.Context) (*PostsResult, error) {
	state, err := s.store.LoadPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts state: %w", err)
	}

	for i := range state.RecentPosts {
		state.RecentPosts[i] = s.ScorePost(state.RecentPosts[i])
	}
	dashboard.ResortPosts(state)

	if err := s.store.SavePosts(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save posts state: %w", err)
	}

	slog.Info("Rescored existing posts", "count", len(state.RecentPosts))
	return &PostsResult{State: state}, nil
}

// ScorePost scores one post from the posts schema. An already-set sentiment
// label is kept; a risk flag set upstream stays set.
func (s *Service) ScorePost(p domain.Post) domain.Post {
	result := s.postClassifier.Classify(p.Content)
	risks := sentiment.MatchKeywords(p.Content, s.riskKeywords)

	if p.Sentiment == "" {
		p.Sentiment = result.Label
	}
	p.EngagementScore = s.engagement.Score(map[string]int{
		"likes":   p.Metrics.Likes,
		"reposts": p.Metrics.Reposts,
		"replies": p.Metrics.Replies,
	})
	p.RiskKeywords = risks
	if !p.RiskFlag {
		p.RiskFlag = len(risks) > 0
	}
	return p
}

// scoreMentionRatio is the posts-pipeline variant of mention scoring: the
// ratio policy provides the label and a polarity score instead of a
// confidence.
func (s *Service) scoreMentionRatio(m domain.Mention) domain.ScoredMention {
	result := s.postClassifier.Classify(m.Text)

	engagement := s.engagement.Score(map[string]int{
		"likes":    m.Likes,
		"retweets": m.Retweets,
		"replies":  m.Replies,
	})
	riskKeywords := sentiment.MatchKeywords(m.Text, s.riskKeywords)

	return domain.ScoredMention{
		Mention:         m,
		Sentiment:       result.Label,
		SentimentScore:  round3(result.Score),
		EngagementScore: engagement,
		ReachMultiplier: s.reach.Multiplier(m.AuthorFollowers),
		CompositeScore:  s.reach.Composite(engagement, m.AuthorFollowers),
		RankingReach:    scoring.RankingReach(m),
		RiskKeywords:    riskKeywords,
		RiskFlag:        len(riskKeywords) > 0,
	}
}

func mentionToPost(sm domain.ScoredMention) domain.Post {
	riskKeywords := sm.RiskKeywords
	if riskKeywords == nil {
		riskKeywords = []string{}
	}
	return domain.Post{
		Account: sm.Author,
		Date:    sm.Date(),
		Content: sm.Text,
		Metrics: domain.PostMetrics{
			Replies: sm.Replies,
			Reposts: sm.Retweets,
			Likes:   sm.Likes,
		},
		Sentiment:       sm.Sentiment,
		EngagementScore: sm.EngagementScore,
		RiskFlag:        sm.RiskFlag,
		RiskKeywords:    riskKeywords,
		Topics:          []string{},
		Source:          "mention",
		URL:             sm.URL,
	}
}

// rawMentionsFile is the on-disk shape of a raw mention batch.
type rawMentionsFile struct {
	Mentions  []domain.Mention `json:"mentions"`
	FetchedAt string           `json:"fetched_at,omitempty"`
}

// ReadRawMentions loads a raw mention batch file.
func ReadRawMentions(path string) ([]domain.Mention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw mentions file: %w", err)
	}

	var file rawMentionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode raw mentions file %s: %w", path, err)
	}
	return file.Mentions, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
