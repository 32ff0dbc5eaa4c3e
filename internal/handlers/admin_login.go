package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
	"github.com/abhayrai8299/creator-assignment-backend/internal/validation"
)

// AdminLoginer defines the interface that the admin login service must implement.
type AdminLoginer interface {
	AdminLogin(ctx context.Context, email, password string) (string, error)
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Email
	// required: true
	// default: admin@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse represents a successful admin login response
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// AdminLoginErrorResponse represents an error response for admin login
// swagger:model AdminLoginErrorResponse
type AdminLoginErrorResponse struct {
	// Error message
	// default: Access denied
	Error string `json:"error"`
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticate an administrator and return a JWT token
// @Tags admin
// @Accept json
// @Produce json
// @Param adminLoginRequest body handlers.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} handlers.AdminLoginResponse "JWT token returned"
// @Failure 400 {object} handlers.AdminLoginErrorResponse "Invalid credentials / invalid request body"
// @Failure 403 {object} handlers.AdminLoginErrorResponse "Account is not an admin"
// @Failure 404 {object} handlers.AdminLoginErrorResponse "User not found"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminLoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := validation.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminLoginErrorResponse{
				Error: err.Error(),
			})
			return
		}

		token, err := svc.AdminLogin(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{
					Error: "User not found",
				})
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{
					Error: "Access denied",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{
					Error: "Invalid credentials",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminLoginResponse{
			Token: token,
		})
	}
}
