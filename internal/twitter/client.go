// Package twitter is the thin fetch collaborator: it pulls recent brand
// mentions via the Twitter API v2 and normalizes them for the pipeline.
// A failed query is reported as "no data for this query"; partial results
// are valid results.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/Joesmod/rainmaker-dashboard/internal/errors"
)

const (
	defaultBaseURL    = "https://api.twitter.com/2/tweets/search/recent"
	defaultMaxResults = 100
	userAgent         = "RainMakerBrandTracker/1.0"
)

type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string // recent-search endpoint URL (configurable for testing)
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		baseURL:    defaultBaseURL,
	}
}

// API response shapes (subset of the v2 recent-search payload).

type searchResponse struct {
	Data     []apiTweet  `json:"data"`
	Includes apiIncludes `json:"includes"`
}

type apiTweet struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	AuthorID      string     `json:"author_id"`
	CreatedAt     string     `json:"created_at"`
	PublicMetrics apiMetrics `json:"public_metrics"`
}

type apiMetrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
	ViewCount    int `json:"impression_count"`
}

type apiIncludes struct {
	Users []apiUser `json:"users"`
}

type apiUser struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	Name          string         `json:"name"`
	PublicMetrics apiUserMetrics `json:"public_metrics"`
}

type apiUserMetrics struct {
	FollowersCount int `json:"followers_count"`
}

// SearchRecent runs one recent-search query.
func (c *Client) SearchRecent(ctx context.Context, query string, maxResults int) (*searchResponse, error) {
	if maxResults <= 0 || maxResults > defaultMaxResults {
		maxResults = defaultMaxResults
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("tweet.fields", "created_at,public_metrics,author_id,lang")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username,name,public_metrics")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalError("search request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ExternalError("failed to read search response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalError("twitter API rejected the search", nil).
			WithContext("status", resp.StatusCode).
			WithContext("body", string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}
