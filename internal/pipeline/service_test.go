package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

func testService(t *testing.T) (*Service, *dashboard.MemoryStore, clockwork.Clock) {
	t.Helper()
	store := dashboard.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	svc := NewService(store, clock, Options{
		Targets:  []string{"@rainmakercorp", "@ADoricko"},
		Keywords: []string{"rain maker", "cloud seeding"},
	})
	return svc, store, clock
}

func mention(id, text string) domain.Mention {
	return domain.Mention{
		ID:        id,
		Text:      text,
		Author:    "@author" + id,
		Timestamp: "2026-08-30T10:00:00Z",
	}
}

func TestRun_ExampleBatch(t *testing.T) {
	svc, _, _ := testService(t)

	batch := []domain.Mention{
		mention("1", "this is amazing and a total breakthrough"),
		mention("2", "total scam, lawsuit incoming"),
		mention("3", "weather today is mild"),
	}
	batch[0].Likes = 50
	batch[0].AuthorFollowers = 0
	batch[1].Likes = 25
	batch[2].Likes = 5

	result, err := svc.Run(context.Background(), batch)
	require.NoError(t, err)

	require.Len(t, result.Scored, 3)
	assert.Equal(t, domain.SentimentPositive, result.Scored[0].Sentiment)
	assert.Equal(t, domain.SentimentNegative, result.Scored[1].Sentiment)
	assert.Equal(t, domain.SentimentNeutral, result.Scored[2].Sentiment)

	assert.Greater(t, result.Daily.Score, 50, "net positive tilt")
	assert.Less(t, result.Daily.Score, 100)
}

func TestRun_EmptyBatch(t *testing.T) {
	svc, _, _ := testService(t)

	result, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 50, result.Daily.Score, "neutral default")
	assert.Equal(t, 0, result.Daily.TotalTweets)
	assert.Zero(t, result.Daily.Positive)
	assert.Zero(t, result.Daily.Negative)
	assert.Zero(t, result.Daily.Neutral)
	assert.Empty(t, result.State.TopMentions)
	require.Len(t, result.State.Scores, 1, "series still gains an entry")
}

func TestRun_EmptyBatchPreservesPassThrough(t *testing.T) {
	svc, store, _ := testService(t)
	ctx := context.Background()

	seeded := domain.NewDashboardState()
	seeded.AccountProfiles = []byte(`{"@rainmakercorp":{"verified":true}}`)
	require.NoError(t, store.SaveDashboard(ctx, seeded))

	result, err := svc.Run(ctx, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@rainmakercorp":{"verified":true}}`, string(result.State.AccountProfiles))
}

func TestRun_SameDayRerunReplacesSeriesEntry(t *testing.T) {
	svc, store, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Run(ctx, []domain.Mention{mention("1", "amazing breakthrough, love it")})
	require.NoError(t, err)

	second := []domain.Mention{
		mention("2", "scam and fraud, terrible"),
		mention("3", "awful lawsuit disaster"),
	}
	result, err := svc.Run(ctx, second)
	require.NoError(t, err)

	require.Len(t, result.State.Scores, 1, "one entry per calendar date")
	assert.Equal(t, 2, result.State.Scores[0].TotalTweets, "second run's values win")

	reloaded, err := store.LoadDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded.Scores, 1)
}

func TestRun_NewDayAppends(t *testing.T) {
	store := dashboard.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	svc := NewService(store, clock, Options{})
	ctx := context.Background()

	_, err := svc.Run(ctx, nil)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	result, err := svc.Run(ctx, nil)
	require.NoError(t, err)

	require.Len(t, result.State.Scores, 2)
	assert.Equal(t, "2026-08-30", result.State.Scores[0].Date)
	assert.Equal(t, "2026-08-31", result.State.Scores[1].Date)
}

func TestRun_DuplicateMentionIDsScoredOnce(t *testing.T) {
	svc, _, _ := testService(t)

	batch := []domain.Mention{
		mention("1", "amazing"),
		mention("1", "amazing"),
	}
	result, err := svc.Run(context.Background(), batch)
	require.NoError(t, err)
	assert.Len(t, result.Scored, 1)
}

func TestRun_RiskAlertRaisedAndMerged(t *testing.T) {
	svc, _, _ := testService(t)

	risky := mention("1", "chemtrails over my town again")
	risky.Likes = 10
	risky.Replies = 5

	result, err := svc.Run(context.Background(), []domain.Mention{risky})
	require.NoError(t, err)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, domain.SeverityHigh, result.Alerts[0].Severity)
	require.Len(t, result.State.RiskAlerts, 1)
}

func TestRun_MetaRefreshed(t *testing.T) {
	svc, _, _ := testService(t)

	result, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30T12:00:00Z", result.State.Meta.LastUpdated)
	assert.Equal(t, []string{"@rainmakercorp", "@ADoricko"}, result.State.Meta.Targets)
}

func TestScoreMention_CompositeAndReach(t *testing.T) {
	svc, _, _ := testService(t)

	m := domain.Mention{
		ID:              "1",
		Text:            "no keywords here",
		Likes:           10,
		Retweets:        2,
		Replies:         4,
		AuthorFollowers: 2000,
	}
	sm := svc.ScoreMention(m)

	// engagement: 10*1 + 2*3 + 4*5 = 36; multiplier 1.5 at 2000 followers
	assert.Equal(t, 36.0, sm.EngagementScore)
	assert.Equal(t, 1.5, sm.ReachMultiplier)
	assert.Equal(t, 54.0, sm.CompositeScore)
	// ranking reach: 2*10 + 10*2 + 4*5 + 2000 = 2060
	assert.Equal(t, 2060, sm.RankingReach)
}

func TestScoreMention_RiskKeywordsTracked(t *testing.T) {
	svc, _, _ := testService(t)

	sm := svc.ScoreMention(domain.Mention{ID: "1", Text: "this is a scam and a lawsuit"})
	assert.True(t, sm.RiskFlag)
	assert.Equal(t, []string{"scam", "lawsuit"}, sm.RiskKeywords)
}
