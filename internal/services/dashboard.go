package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// DashboardReader loads the full user record without locking.
type DashboardReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// DashboardService serves the authenticated user's dashboard view.
type DashboardService struct {
	reader DashboardReader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(reader DashboardReader) *DashboardService {
	return &DashboardService{reader: reader}
}

// Dashboard returns the user record with saved feeds and recent
// activity attached.
func (svc *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load dashboard", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
