package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// DefaultTwitterURL is the stand-in content provider for the simulated
// Twitter source.
const DefaultTwitterURL = "https://api.sampleapis.com/futurama/characters"

// twitterMaxItems caps how many entries the simulated source contributes.
const twitterMaxItems = 5

type twitterCharacter struct {
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Images struct {
		Main string `json:"main"`
	} `json:"images"`
}

// TwitterFacade fetches the simulated Twitter source and maps the first
// five entries into uniform feed items.
type TwitterFacade struct {
	client *http.Client
	url    string
}

// NewTwitterFacade creates a facade. A nil client falls back to
// http.DefaultClient; an empty url falls back to DefaultTwitterURL.
func NewTwitterFacade(client *http.Client, url string) *TwitterFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultTwitterURL
	}
	return &TwitterFacade{client: client, url: url}
}

// Fetch returns up to five simulated posts as feed items.
func (f *TwitterFacade) Fetch(ctx context.Context) ([]models.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch simulated twitter feed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected simulated twitter response", "status", resp.StatusCode)
		return nil, fmt.Errorf("twitter: unexpected status %d", resp.StatusCode)
	}

	var characters []twitterCharacter
	if err := json.NewDecoder(resp.Body).Decode(&characters); err != nil {
		logger.Log.Errorw("failed to decode simulated twitter feed", "error", err)
		return nil, err
	}

	if len(characters) > twitterMaxItems {
		characters = characters[:twitterMaxItems]
	}

	items := make([]models.FeedItem, 0, len(characters))
	for _, c := range characters {
		items = append(items, models.FeedItem{
			Title:  c.Name.First + " " + c.Name.Last,
			URL:    c.Images.Main,
			Source: models.SourceTwitter,
		})
	}
	return items, nil
}
