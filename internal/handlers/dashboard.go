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

// Dashboarder defines the interface that the dashboard service must implement.
type Dashboarder interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the user dashboard.
// @Summary User dashboard
// @Description Returns the full user record, saved feeds, and activity log. The password hash is never serialized.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Full user record"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.DashboardErrorResponse "User not found"
// @Router /dashboard [get]
func NewDashboardHandler(svc Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := svc.Dashboard(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
