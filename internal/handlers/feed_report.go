package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/middlewares"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
)

// FeedReporter defines the interface that the report-feed service must implement.
type FeedReporter interface {
	Report(ctx context.Context, userID uuid.UUID, item models.FeedItem) (*models.UserDB, error)
}

// NewFeedReportHandler returns an HTTP handler for reporting a feed item.
// @Summary Report a feed item
// @Description Records a report and deducts credits. The balance may go negative.
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedActionRequest body handlers.FeedActionRequest true "Feed item to report"
// @Success 200 {object} handlers.FeedActionResponse "Updated balance and collections"
// @Failure 400 {object} handlers.FeedActionErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.FeedActionErrorResponse "User not found"
// @Router /feed/report [post]
func NewFeedReportHandler(svc FeedReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req FeedActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedActionErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Report(r.Context(), claims.UserID, req.FeedItem)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FeedActionErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FeedActionErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newFeedActionResponse("Feed reported successfully", user))
	}
}
