package scoring

import "github.com/Joesmod/rainmaker-dashboard/internal/domain"

// ReachTier maps a minimum audience size to a composite-score multiplier.
type ReachTier struct {
	MinFollowers int
	Multiplier   float64
}

// DefaultReachTiers is the step function applied to author audience size.
// Tiers must be ordered by descending MinFollowers.
func DefaultReachTiers() []ReachTier {
	return []ReachTier{
		{MinFollowers: 100000, Multiplier: 3.0},
		{MinFollowers: 10000, Multiplier: 2.0},
		{MinFollowers: 1000, Multiplier: 1.5},
	}
}

// ReachEstimator derives both reach notions from a mention.
type ReachEstimator struct {
	tiers []ReachTier
}

func NewReachEstimator(tiers []ReachTier) ReachEstimator {
	return ReachEstimator{tiers: tiers}
}

// Multiplier returns the composite-score multiplier for an audience size.
// Audiences below the smallest tier get 1.0.
func (r ReachEstimator) Multiplier(followers int) float64 {
	for _, tier := range r.tiers {
		if followers >= tier.MinFollowers {
			return tier.Multiplier
		}
	}
	return 1.0
}

// Composite combines the engagement score with the reach multiplier,
// rounded to 2 decimal places.
func (r ReachEstimator) Composite(engagement float64, followers int) float64 {
	return round2(engagement * r.Multiplier(followers))
}

// Ranking-reach interaction weights. This is an independent visibility
// estimate used for top-mention ordering, alerting, and the brand score
// reach blend; it is not the composite engagement value.
const (
	reachRetweetWeight = 10
	reachLikeWeight    = 2
	reachReplyWeight   = 5
	reachQuoteWeight   = 8
)

// RankingReach estimates visibility from interaction counts plus the raw
// follower count.
func RankingReach(m domain.Mention) int {
	return m.Retweets*reachRetweetWeight +
		m.Likes*reachLikeWeight +
		m.Replies*reachReplyWeight +
		m.Quotes*reachQuoteWeight +
		m.AuthorFollowers
}
