package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// FeedAggregator defines the interface that the feed service must implement.
type FeedAggregator interface {
	Aggregate(ctx context.Context) ([]models.FeedItem, error)
}

// FeedErrorResponse represents an error response for the feed
// swagger:model FeedErrorResponse
type FeedErrorResponse struct {
	// Error message
	// default: Failed to fetch feed
	Error string `json:"error"`
}

// NewFeedHandler returns an HTTP handler for the aggregated feed.
// @Summary Aggregated content feed
// @Description Returns the combined feed from all external providers
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FeedItem "Aggregated feed items"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.FeedErrorResponse "An upstream provider failed"
// @Router /feed [get]
func NewFeedHandler(svc FeedAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := svc.Aggregate(r.Context())
		if err != nil {
			logger.Log.Errorw("feed aggregation failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedErrorResponse{
				Error: "Failed to fetch feed",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(feed)
	}
}
