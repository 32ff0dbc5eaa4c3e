package handlers

import (
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// FeedActionRequest represents the JSON body for save/share/report actions
// swagger:model FeedActionRequest
type FeedActionRequest struct {
	// Feed item the action applies to
	// required: true
	FeedItem models.FeedItem `json:"feedItem" validate:"required"`
}

// FeedActionResponse represents the result of a rewarded feed action
// swagger:model FeedActionResponse
type FeedActionResponse struct {
	// Outcome message
	// default: Feed saved
	Message string `json:"message"`

	// Resulting credit balance
	// default: 65
	Credits int64 `json:"credits"`

	// Saved feed items after the action
	SavedFeeds []models.FeedItem `json:"savedFeeds"`

	// Activity log after the action
	RecentActivity []models.ActivityDB `json:"recentActivity"`
}

// FeedActionErrorResponse represents an error response for feed actions
// swagger:model FeedActionErrorResponse
type FeedActionErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

func newFeedActionResponse(message string, user *models.UserDB) FeedActionResponse {
	return FeedActionResponse{
		Message:        message,
		Credits:        user.Credits,
		SavedFeeds:     user.SavedFeeds,
		RecentActivity: user.RecentActivity,
	}
}
