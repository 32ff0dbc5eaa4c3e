package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// AdminLister defines the interface that the admin listing service must implement.
type AdminLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// AdminUsersErrorResponse represents an error response for the user listing
// swagger:model AdminUsersErrorResponse
type AdminUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewAdminUsersHandler returns an HTTP handler for the admin user listing.
// @Summary List all users
// @Description Returns every user record for the admin panel
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserDB "All users"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Caller is not an admin"
// @Failure 500 {object} handlers.AdminUsersErrorResponse "Internal server error"
// @Router /admin/users [get]
func NewAdminUsersHandler(svc AdminLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
