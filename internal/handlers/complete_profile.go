package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
)

// ProfileCompleter defines the interface that the profile service must implement.
type ProfileCompleter interface {
	CompleteProfile(ctx context.Context, userID uuid.UUID, bio, profilePicture string) (int64, error)
}

// CompleteProfileRequest represents the JSON body for profile completion
// swagger:model CompleteProfileRequest
type CompleteProfileRequest struct {
	// User ID the update applies to
	// required: true
	UserID string `json:"userId"`

	// Short biography
	// default: Content creator
	Bio string `json:"bio"`

	// Profile picture URL
	// default: https://example.com/avatar.png
	ProfilePicture string `json:"profilePicture"`
}

// CompleteProfileResponse represents a successful profile update
// swagger:model CompleteProfileResponse
type CompleteProfileResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`

	// Resulting credit balance
	// default: 70
	Credits int64 `json:"credits"`
}

// CompleteProfileErrorResponse represents an error response for profile completion
// swagger:model CompleteProfileErrorResponse
type CompleteProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewCompleteProfileHandler returns an HTTP handler for profile completion.
// @Summary Complete a user profile
// @Description Updates bio and picture, granting credits per changed field. Unchanged values grant nothing.
// @Tags user
// @Accept json
// @Produce json
// @Param completeProfileRequest body handlers.CompleteProfileRequest true "Profile update request"
// @Success 200 {object} handlers.CompleteProfileResponse "Profile updated"
// @Failure 400 {object} handlers.CompleteProfileErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.CompleteProfileErrorResponse "User not found"
// @Router /complete-profile [post]
func NewCompleteProfileHandler(svc ProfileCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CompleteProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			// An unparseable id can never match a user
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CompleteProfileErrorResponse{
				Error: "User not found",
			})
			return
		}

		credits, err := svc.CompleteProfile(r.Context(), userID, req.Bio, req.ProfilePicture)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CompleteProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CompleteProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CompleteProfileResponse{
			Message: "Profile updated successfully",
			Credits: credits,
		})
	}
}
