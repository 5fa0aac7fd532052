package domain

import "encoding/json"

// PostMetrics is the interaction-count block of the posts-format schema.
type PostMetrics struct {
	Replies int `json:"replies"`
	Reposts int `json:"reposts"`
	Likes   int `json:"likes"`
}

// Post is one entry of the accumulate-and-resort posts schema. It predates
// the date-keyed dashboard shape and is kept as a separate contract.
type Post struct {
	Account         string      `json:"account"`
	Date            string      `json:"date"`
	Content         string      `json:"content"`
	Metrics         PostMetrics `json:"metrics"`
	Sentiment       string      `json:"sentiment"`
	EngagementScore float64     `json:"engagement_score"`
	RiskFlag        bool        `json:"risk_flag"`
	RiskKeywords    []string    `json:"risk_keywords"`
	Topics          []string    `json:"topics"`
	Source          string      `json:"source"`
	URL             string      `json:"url"`
}

// PostState is the persisted shape of the posts pipeline. Posts accumulate
// across runs and are kept sorted by engagement score; there is no date-based
// replacement. Accounts is an opaque pass-through blob.
type PostState struct {
	RecentPosts []Post          `json:"recentPosts"`
	Accounts    json.RawMessage `json:"accounts"`
	RiskSignals []string        `json:"riskSignals"`
	PulledAt    string          `json:"pulled_at,omitempty"`
}

// NewPostState returns the empty default posts shape.
func NewPostState() *PostState {
	return &PostState{
		RecentPosts: []Post{},
		Accounts:    json.RawMessage(`{}`),
		RiskSignals: []string{},
	}
}
