package twitter

import (
	"context"
	"log/slog"

	"github.com/Joesmod/rainmaker-dashboard/internal/domain"
	"github.com/Joesmod/rainmaker-dashboard/internal/metrics"
)

// CollectMentions runs every query and returns the combined, ID-deduplicated
// mentions. A query that errors is logged and skipped: the pipeline proceeds
// with whatever subset succeeded.
func (c *Client) CollectMentions(ctx context.Context, queries []string) ([]domain.Mention, error) {
	usersByID := make(map[string]apiUser)
	var tweets []apiTweet
	queryByTweet := make(map[string]string)

	for _, query := range queries {
		result, err := c.SearchRecent(ctx, query, defaultMaxResults)
		if err != nil {
			slog.Warn("No data for this query", "query", query, "error", err)
			metrics.FetchErrors.Inc()
			continue
		}

		for _, u := range result.Includes.Users {
			usersByID[u.ID] = u
		}
		for _, t := range result.Data {
			// a tweet seen by several queries keeps the first query's attribution
			if _, seen := queryByTweet[t.ID]; !seen {
				queryByTweet[t.ID] = query
			}
			tweets = append(tweets, t)
		}
		slog.Info("Query returned tweets", "query", query, "count", len(result.Data))
	}

	mentions := make([]domain.Mention, 0, len(tweets))
	seen := make(map[string]struct{}, len(tweets))
	for _, t := range tweets {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		mentions = append(mentions, normalizeTweet(t, usersByID, queryByTweet[t.ID]))
	}

	slog.Info("Collected unique mentions", "count", len(mentions))
	return mentions, nil
}

func normalizeTweet(t apiTweet, usersByID map[string]apiUser, query string) domain.Mention {
	username := "unknown"
	var followers int
	if u, ok := usersByID[t.AuthorID]; ok {
		username = u.Username
		followers = u.PublicMetrics.FollowersCount
	}

	return domain.Mention{
		ID:              t.ID,
		Text:            t.Text,
		Author:          "@" + username,
		AuthorID:        t.AuthorID,
		AuthorFollowers: followers,
		Likes:           t.PublicMetrics.LikeCount,
		Retweets:        t.PublicMetrics.RetweetCount,
		Replies:         t.PublicMetrics.ReplyCount,
		Quotes:          t.PublicMetrics.QuoteCount,
		Views:           t.PublicMetrics.ViewCount,
		Timestamp:       t.CreatedAt,
		Query:           query,
	}
}
