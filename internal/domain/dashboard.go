package domain

import "encoding/json"

// Meta describes the tracked targets and when the dashboard was last updated.
type Meta struct {
	LastUpdated string   `json:"lastUpdated"`
	Targets     []string `json:"targets"`
	Keywords    []string `json:"keywords"`
}

// DailyScore is one entry in the rolling score series. At most one entry
// exists per calendar date; re-running for a date replaces its entry.
type DailyScore struct {
	Date        string `json:"date"`
	Score       int    `json:"score"`
	Positive    int    `json:"positive"`
	Negative    int    `json:"negative"`
	Neutral     int    `json:"neutral"`
	TotalTweets int    `json:"totalTweets"`
}

// RiskAlert is a flagged mention warranting human review. Post is the
// author+date deduplication key: the first alert seen for a key wins.
type RiskAlert struct {
	ID             string         `json:"id"`
	Severity       string         `json:"severity"`
	Type           string         `json:"type"`
	Post           string         `json:"post"`
	Text           string         `json:"text"`
	Metrics        map[string]int `json:"metrics"`
	ReplyLikeRatio float64        `json:"replyLikeRatio"`
	Reason         string         `json:"reason"`
	Date           string         `json:"date"`
}

// Alert severities.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
)

// TopMention is the dashboard projection of a high-reach scored mention.
type TopMention struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	Reach     int    `json:"reach"`
	Date      string `json:"date"`
}

// DashboardState is the date-keyed persisted shape consumed by the dashboard
// frontend. Field names are the wire format and must not change.
//
// AccountProfiles and Aggregate are opaque pass-through blobs: the pipeline
// never interprets them and carries them forward verbatim across merges.
type DashboardState struct {
	Meta            Meta            `json:"meta"`
	Scores          []DailyScore    `json:"scores"`
	RiskAlerts      []RiskAlert     `json:"riskAlerts"`
	AccountProfiles json.RawMessage `json:"accountProfiles"`
	Aggregate       json.RawMessage `json:"aggregate"`
	TopMentions     []TopMention    `json:"topMentions"`
}

// NewDashboardState returns the empty default shape used when no state has
// been persisted yet, or when the persisted state is unreadable.
func NewDashboardState() *DashboardState {
	return &DashboardState{
		Scores:          []DailyScore{},
		RiskAlerts:      []RiskAlert{},
		AccountProfiles: json.RawMessage(`{}`),
		Aggregate:       json.RawMessage(`{}`),
		TopMentions:     []TopMention{},
	}
}
