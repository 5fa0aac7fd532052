package scoring

import (
	"math"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

const (
	// NeutralBrandScore is returned for an empty batch.
	NeutralBrandScore = 50

	countBlendWeight = 0.4
	reachBlendWeight = 0.6
)

// BrandScore reduces a batch of scored mentions to a single 0-100 index.
// It blends a count-ratio score with a ranking-reach-ratio score 40/60,
// deliberately favoring high-visibility sentiment over raw volume.
func BrandScore(scored []domain.ScoredMention) int {
	if len(scored) == 0 {
		return NeutralBrandScore
	}

	total := len(scored)
	var pos, neg int
	var posReach, negReach, totalReach int
	for _, m := range scored {
		totalReach += m.RankingReach
		switch m.Sentiment {
		case domain.SentimentPositive:
			pos++
			posReach += m.RankingReach
		case domain.SentimentNegative:
			neg++
			negReach += m.RankingReach
		}
	}
	if totalReach < 1 {
		totalReach = 1
	}

	countScore := float64(pos-neg)/float64(total)*50 + 50
	reachScore := float64(posReach-negReach)/float64(totalReach)*50 + 50

	score := int(math.Round(countScore*countBlendWeight + reachScore*reachBlendWeight))
	return clamp(score, 0, 100)
}

// SentimentCounts tallies a batch by sentiment label.
type SentimentCounts struct {
	Positive int
	Negative int
	Neutral  int
	Total    int
}

// CountSentiments tallies the batch. Mixed labels count into Neutral for the
// dashboard percentage triple, matching the date-keyed contract which only
// carries three buckets.
func CountSentiments(scored []domain.ScoredMention) SentimentCounts {
	counts := SentimentCounts{Total: len(scored)}
	for _, m := range scored {
		switch m.Sentiment {
		case domain.SentimentPositive:
			counts.Positive++
		case domain.SentimentNegative:
			counts.Negative++
		}
	}
	counts.Neutral = counts.Total - counts.Positive - counts.Negative
	return counts
}

// Percentages converts the tallies to rounded percentages. All zeros when
// the batch is empty.
func (c SentimentCounts) Percentages() (pos, neg, neu int) {
	if c.Total == 0 {
		return 0, 0, 0
	}
	pos = int(math.Round(float64(c.Positive) / float64(c.Total) * 100))
	neg = int(math.Round(float64(c.Negative) / float64(c.Total) * 100))
	neu = int(math.Round(float64(c.Neutral) / float64(c.Total) * 100))
	return pos, neg, neu
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
