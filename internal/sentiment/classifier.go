package sentiment

import (
	"strings"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
)

const (
	confidenceBase = 0.5
	confidenceStep = 0.15
	confidenceCap  = 0.95
	polarityCutoff = 0.2
	neutralScore   = 0.5
)

// Result is a sentiment label plus its confidence or polarity value.
// Magnitude results carry a confidence in [0.5, 0.95]; Ratio results carry a
// polarity in [-1, 1].
type Result struct {
	Label string
	Score float64
}

// Classifier maps free text to a sentiment result.
type Classifier interface {
	Classify(text string) Result
}

// MatchKeywords returns which of the configured keywords appear in the
// lowercased text. Each keyword counts at most once regardless of how often
// it occurs, bounding confidence growth.
func MatchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func countMatches(text string, keywords []string) int {
	return len(MatchKeywords(text, keywords))
}

// MagnitudeClassifier labels by which keyword set wins. Confidence grows
// with the winning count: min(0.5 + 0.15*count, 0.95). No matches or a tie
// yields neutral at 0.5.
type MagnitudeClassifier struct {
	keywords Keywords
}

func NewMagnitudeClassifier(keywords Keywords) MagnitudeClassifier {
	return MagnitudeClassifier{keywords: keywords}
}

func (c MagnitudeClassifier) Classify(text string) Result {
	pos := countMatches(text, c.keywords.Positive)
	neg := countMatches(text, c.keywords.Negative)

	switch {
	case pos > neg:
		return Result{Label: domain.SentimentPositive, Score: winningConfidence(pos)}
	case neg > pos:
		return Result{Label: domain.SentimentNegative, Score: winningConfidence(neg)}
	default:
		return Result{Label: domain.SentimentNeutral, Score: neutralScore}
	}
}

func winningConfidence(count int) float64 {
	confidence := confidenceBase + float64(count)*confidenceStep
	if confidence > confidenceCap {
		return confidenceCap
	}
	return confidence
}

// RatioClassifier labels by polarity (pos-neg)/(pos+neg). Polarity above 0.2
// is positive, below -0.2 negative, and anything in between with at least one
// match is mixed. Neutral is reserved for texts with no matches at all.
type RatioClassifier struct {
	keywords Keywords
}

func NewRatioClassifier(keywords Keywords) RatioClassifier {
	return RatioClassifier{keywords: keywords}
}

func (c RatioClassifier) Classify(text string) Result {
	pos := countMatches(text, c.keywords.Positive)
	neg := countMatches(text, c.keywords.Negative)

	total := pos + neg
	if total == 0 {
		return Result{Label: domain.SentimentNeutral, Score: 0}
	}

	polarity := float64(pos-neg) / float64(total)
	switch {
	case polarity > polarityCutoff:
		return Result{Label: domain.SentimentPositive, Score: polarity}
	case polarity < -polarityCutoff:
		return Result{Label: domain.SentimentNegative, Score: polarity}
	default:
		return Result{Label: domain.SentimentMixed, Score: polarity}
	}
}
