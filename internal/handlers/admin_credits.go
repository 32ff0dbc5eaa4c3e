package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
)

// CreditSetter defines the interface that the credit overwrite service must implement.
type CreditSetter interface {
	SetCredits(ctx context.Context, userID uuid.UUID, credits int64) (*models.UserDB, error)
}

// SetCreditsRequest represents the JSON body for a credit overwrite
// swagger:model SetCreditsRequest
type SetCreditsRequest struct {
	// Absolute credit balance to set
	// required: true
	// default: 100
	Credits int64 `json:"credits"`
}

// SetCreditsResponse represents a successful credit overwrite
// swagger:model SetCreditsResponse
type SetCreditsResponse struct {
	// Success message
	// default: Credits updated
	Message string `json:"message"`

	// Updated user record
	User *models.UserDB `json:"user"`
}

// SetCreditsErrorResponse represents an error response for a credit overwrite
// swagger:model SetCreditsErrorResponse
type SetCreditsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewAdminCreditsHandler returns an HTTP handler for overwriting a
// user's credit balance. The value is absolute, not a delta.
// @Summary Overwrite a user's credits
// @Description Sets the credit balance of the given user to an absolute value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param setCreditsRequest body handlers.SetCreditsRequest true "New balance"
// @Success 200 {object} handlers.SetCreditsResponse "Updated user returned"
// @Failure 400 {object} handlers.SetCreditsErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Caller is not an admin"
// @Failure 404 {object} handlers.SetCreditsErrorResponse "User not found"
// @Router /admin/credits/{id} [put]
func NewAdminCreditsHandler(svc CreditSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SetCreditsErrorResponse{
				Error: "User not found",
			})
			return
		}

		var req SetCreditsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetCreditsErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.SetCredits(r.Context(), userID, req.Credits)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SetCreditsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SetCreditsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetCreditsResponse{
			Message: "Credits updated",
			User:    user,
		})
	}
}
