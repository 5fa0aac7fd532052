package scoring

import "math"

// DefaultEngagementWeights maps interaction names to their weight in the
// engagement score. Both raw-schema ("retweets") and posts-schema ("reposts")
// keys are present so either shape scores the same way.
func DefaultEngagementWeights() map[string]float64 {
	return map[string]float64{
		"likes":    1,
		"retweets": 3,
		"reposts":  3,
		"replies":  5,
		"views":    0.001,
	}
}

// EngagementScorer computes a weighted sum over named interaction counts.
type EngagementScorer struct {
	weights map[string]float64
}

func NewEngagementScorer(weights map[string]float64) EngagementScorer {
	return EngagementScorer{weights: weights}
}

// Score sums count*weight over all recognized interaction types. Keys without
// a configured weight are ignored; missing keys contribute nothing. The
// result is rounded to 2 decimal places and is never negative for
// non-negative inputs.
func (s EngagementScorer) Score(metrics map[string]int) float64 {
	var total float64
	for key, weight := range s.weights {
		total += float64(metrics[key]) * weight
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
