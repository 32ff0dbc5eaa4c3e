package models

// Feed source labels as they appear in API responses.
const (
	SourceReddit  = "Reddit"
	SourceTwitter = "Twitter (Simulated)"
)

// FeedItem is one entry of the aggregated content feed. The same shape
// is stored per user in saved_feeds.
type FeedItem struct {
	Title  string `json:"title" db:"title"`
	URL    string `json:"url" db:"url"`
	Source string `json:"source" db:"source"`
}
