package risk

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/Joesmod/rainmaker-dashboard/internal/sentiment"
	"github.com/google/uuid"
)

// DefaultConspiracyKeywords is the conspiracy-indicative keyword list.
func DefaultConspiracyKeywords() []string {
	return []string{
		"chemtrail", "weather control", "government", "conspiracy",
		"hoax", "geo-engineer", "haarp",
	}
}

const (
	defaultRatioThreshold = 0.15
	defaultHighRatio      = 0.25
	defaultReachThreshold = 50000
	alertTextLimit        = 200
	alertType             = "auto_detected"
)

// Detector evaluates scored mentions for risk alerts.
type Detector struct {
	conspiracyKeywords []string
	ratioThreshold     float64
	highRatio          float64
	reachThreshold     int
}

func NewDetector(conspiracyKeywords []string) *Detector {
	return &Detector{
		conspiracyKeywords: conspiracyKeywords,
		ratioThreshold:     defaultRatioThreshold,
		highRatio:          defaultHighRatio,
		reachThreshold:     defaultReachThreshold,
	}
}

// ReplyLikeRatio is replies divided by likes, or 0 when there are no likes.
func ReplyLikeRatio(replies, likes int) float64 {
	if likes <= 0 {
		return 0
	}
	return float64(replies) / float64(likes)
}

// Evaluate decides whether a scored mention warrants an alert. The fallback
// date is used when the mention carries no timestamp. Deduplication against
// previously raised alerts happens at merge time, keyed on the Post field.
func (d *Detector) Evaluate(m domain.ScoredMention, fallbackDate string) (domain.RiskAlert, bool) {
	ratio := ReplyLikeRatio(m.Replies, m.Likes)
	conspiracyHits := sentiment.MatchKeywords(m.Text, d.conspiracyKeywords)
	hasConspiracy := len(conspiracyHits) > 0

	highVisibilityNegative := m.Sentiment == domain.SentimentNegative && m.RankingReach > d.reachThreshold
	if ratio <= d.ratioThreshold && !highVisibilityNegative && !hasConspiracy {
		return domain.RiskAlert{}, false
	}

	severity := domain.SeverityMedium
	if ratio > d.highRatio || hasConspiracy {
		severity = domain.SeverityHigh
	}

	date := m.Date()
	if date == "" {
		date = fallbackDate
	}

	reason := fmt.Sprintf("Reply:like ratio %.2f. Reach %s.", ratio, groupThousands(m.RankingReach))
	if hasConspiracy {
		reason += " Conspiracy keywords detected."
	}

	return domain.RiskAlert{
		ID:       uuid.NewString(),
		Severity: severity,
		Type:     alertType,
		Post:     DedupKey(m.Author, date),
		Text:     domain.Truncate(m.Text, alertTextLimit),
		Metrics: map[string]int{
			"likes":    m.Likes,
			"retweets": m.Retweets,
			"replies":  m.Replies,
			"quotes":   m.Quotes,
		},
		ReplyLikeRatio: round3(ratio),
		Reason:         reason,
		Date:           date,
	}, true
}

// DedupKey builds the author+date alert identity. An alert whose key already
// exists in the persisted list is dropped, never replaced.
func DedupKey(author, date string) string {
	return author + " — " + date
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if n < 0 {
		return "-" + b.String()
	}
	return b.String()
}
