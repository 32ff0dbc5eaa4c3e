package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// DefaultRedditURL is the popular-posts listing consumed by the aggregator.
const DefaultRedditURL = "https://www.reddit.com/r/popular.json"

// redditListing mirrors the subset of the Reddit listing payload we map.
type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// RedditFacade fetches popular posts from Reddit and maps them into
// uniform feed items.
type RedditFacade struct {
	client *http.Client
	url    string
}

// NewRedditFacade creates a facade. A nil client falls back to
// http.DefaultClient; an empty url falls back to DefaultRedditURL.
func NewRedditFacade(client *http.Client, url string) *RedditFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultRedditURL
	}
	return &RedditFacade{client: client, url: url}
}

// Fetch returns the current popular posts as feed items.
func (f *RedditFacade) Fetch(ctx context.Context) ([]models.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	// Reddit rejects requests without a user agent.
	req.Header.Set("User-Agent", "creator-assignment-backend/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch reddit feed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected reddit response", "status", resp.StatusCode)
		return nil, fmt.Errorf("reddit: unexpected status %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		logger.Log.Errorw("failed to decode reddit feed", "error", err)
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		items = append(items, models.FeedItem{
			Title:  child.Data.Title,
			URL:    child.Data.URL,
			Source: models.SourceReddit,
		})
	}
	return items, nil
}
