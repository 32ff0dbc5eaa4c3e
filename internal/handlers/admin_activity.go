package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// ActivityLister defines the interface that the activity report service must implement.
type ActivityLister interface {
	FeedActivity(ctx context.Context) ([]models.UserActivity, error)
}

// AdminActivityErrorResponse represents an error response for the activity report
// swagger:model AdminActivityErrorResponse
type AdminActivityErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewAdminActivityHandler returns an HTTP handler for the feed activity report.
// @Summary Feed activity report
// @Description Returns the activity log of every non-admin user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserActivity "Per-user activity"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Caller is not an admin"
// @Failure 500 {object} handlers.AdminActivityErrorResponse "Internal server error"
// @Router /admin/feed/activity [get]
func NewAdminActivityHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activity, err := svc.FeedActivity(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminActivityErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(activity)
	}
}
