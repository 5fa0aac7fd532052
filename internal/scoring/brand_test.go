package scoring

import (
	"testing"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scoredWith(sentiment string, reach int) domain.ScoredMention {
	return domain.ScoredMention{Sentiment: sentiment, RankingReach: reach}
}

func TestBrandScore_EmptyBatchIsNeutral(t *testing.T) {
	assert.Equal(t, 50, BrandScore(nil))
	assert.Equal(t, 50, BrandScore([]domain.ScoredMention{}))
}

func TestBrandScore_AllPositive(t *testing.T) {
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentPositive, 100),
		scoredWith(domain.SentimentPositive, 200),
	}
	assert.Equal(t, 100, BrandScore(batch))
}

func TestBrandScore_AllNegative(t *testing.T) {
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentNegative, 100),
		scoredWith(domain.SentimentNegative, 200),
	}
	assert.Equal(t, 0, BrandScore(batch))
}

func TestBrandScore_NetPositiveTilt(t *testing.T) {
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentPositive, 100),
		scoredWith(domain.SentimentNegative, 50),
		scoredWith(domain.SentimentNeutral, 10),
	}

	score := BrandScore(batch)
	assert.Greater(t, score, 50)
	assert.Less(t, score, 100)
}

func TestBrandScore_ReachOutweighsCount(t *testing.T) {
	// Two low-reach positives vs one high-reach negative: the 60% reach
	// blend drags the score below neutral despite the positive count edge.
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentPositive, 10),
		scoredWith(domain.SentimentPositive, 10),
		scoredWith(domain.SentimentNegative, 100000),
	}
	assert.Less(t, BrandScore(batch), 50)
}

func TestBrandScore_ZeroReachUsesFloor(t *testing.T) {
	// All mentions with zero ranking reach must not divide by zero.
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentPositive, 0),
		scoredWith(domain.SentimentNegative, 0),
		scoredWith(domain.SentimentNegative, 0),
	}

	score := BrandScore(batch)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestBrandScore_AlwaysInRange(t *testing.T) {
	sentiments := []string{
		domain.SentimentPositive,
		domain.SentimentNegative,
		domain.SentimentNeutral,
		domain.SentimentMixed,
	}
	reaches := []int{0, 1, 50, 100000}

	for _, s := range sentiments {
		for _, r := range reaches {
			score := BrandScore([]domain.ScoredMention{scoredWith(s, r)})
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestCountSentiments(t *testing.T) {
	batch := []domain.ScoredMention{
		scoredWith(domain.SentimentPositive, 0),
		scoredWith(domain.SentimentPositive, 0),
		scoredWith(domain.SentimentNegative, 0),
		scoredWith(domain.SentimentMixed, 0),
		scoredWith(domain.SentimentNeutral, 0),
	}

	counts := CountSentiments(batch)
	assert.Equal(t, 2, counts.Positive)
	assert.Equal(t, 1, counts.Negative)
	assert.Equal(t, 2, counts.Neutral)
	assert.Equal(t, 5, counts.Total)
}

func TestPercentages_SumToHundredish(t *testing.T) {
	counts := SentimentCounts{Positive: 1, Negative: 1, Neutral: 1, Total: 3}

	pos, neg, neu := counts.Percentages()
	sum := pos + neg + neu
	assert.GreaterOrEqual(t, sum, 99)
	assert.LessOrEqual(t, sum, 101)
}

func TestPercentages_EmptyBatchAllZero(t *testing.T) {
	pos, neg, neu := SentimentCounts{}.Percentages()
	assert.Zero(t, pos)
	assert.Zero(t, neg)
	assert.Zero(t, neu)
}
