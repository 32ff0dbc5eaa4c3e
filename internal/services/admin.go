package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// AdminUserReader defines the listings the admin panel reads.
type AdminUserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	ListActivity(ctx context.Context) ([]models.UserActivity, error)
}

// AdminUserWriter defines the admin-only mutations.
type AdminUserWriter interface {
	SetCredits(ctx context.Context, userID uuid.UUID, credits int64) (*models.UserDB, error)
}

// AdminService backs the administrative panel.
type AdminService struct {
	reader AdminUserReader
	writer AdminUserWriter
}

// NewAdminService creates a new AdminService.
func NewAdminService(reader AdminUserReader, writer AdminUserWriter) *AdminService {
	return &AdminService{
		reader: reader,
		writer: writer,
	}
}

// ListUsers returns all users.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// SetCredits overwrites a user's balance with an absolute value.
func (svc *AdminService) SetCredits(ctx context.Context, userID uuid.UUID, credits int64) (*models.UserDB, error) {
	user, err := svc.writer.SetCredits(ctx, userID, credits)
	if err != nil {
		logger.Log.Errorw("failed to set credits", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// FeedActivity returns the activity log of every non-admin user.
func (svc *AdminService) FeedActivity(ctx context.Context) ([]models.UserActivity, error) {
	activity, err := svc.reader.ListActivity(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list feed activity", "err", err)
		return nil, err
	}
	return activity, nil
}
