package domain

// Sentiment labels produced by the classifiers.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentMixed    = "mixed"
)

// Mention is a single normalized social post referencing the tracked brand.
// It is produced by the fetch layer per run and carries no cross-run identity
// beyond ID.
type Mention struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Author          string `json:"author"`
	AuthorID        string `json:"author_id"`
	AuthorFollowers int    `json:"author_followers"`
	Likes           int    `json:"likes"`
	Retweets        int    `json:"retweets"`
	Replies         int    `json:"replies"`
	Quotes          int    `json:"quotes"`
	Views           int    `json:"views"`
	Timestamp       string `json:"timestamp"`
	Query           string `json:"query"`
	URL             string `json:"url"`
}

// Date returns the calendar-day portion of the mention timestamp, or the
// empty string when no timestamp is set.
func (m Mention) Date() string {
	if len(m.Timestamp) >= 10 {
		return m.Timestamp[:10]
	}
	return ""
}

// ScoredMention is a Mention plus all derived scores. It is a pure function
// of the Mention and the configured scoring parameters, and is immutable once
// produced.
type ScoredMention struct {
	Mention

	Sentiment       string   `json:"sentiment"`
	SentimentScore  float64  `json:"sentiment_score"`
	EngagementScore float64  `json:"engagement_score"`
	ReachMultiplier float64  `json:"reach_multiplier"`
	CompositeScore  float64  `json:"composite_score"`
	RankingReach    int      `json:"reach"`
	RiskKeywords    []string `json:"risk_keywords"`
	RiskFlag        bool     `json:"risk_flag"`
}

// Truncate caps s at limit characters, never splitting a rune. Truncated
// text stays valid UTF-8 in the persisted documents.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// DedupMentions drops mentions whose ID was already seen, preserving the
// order of first occurrence. Scoring runs on unique mentions only.
func DedupMentions(mentions []Mention) []Mention {
	seen := make(map[string]struct{}, len(mentions))
	unique := make([]Mention, 0, len(mentions))
	for _, m := range mentions {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
