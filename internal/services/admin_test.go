package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	writer := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(reader, writer)
	ctx := context.Background()

	users := []models.UserDB{
		{UserID: uuid.New(), Username: "alice"},
		{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin},
	}

	reader.EXPECT().List(gomock.Any()).Return(users, nil)

	got, err := svc.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, got)

	reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = svc.ListUsers(ctx)
	assert.EqualError(t, err, "db error")
}

func TestAdminService_SetCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	writer := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(reader, writer)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("absolute overwrite", func(t *testing.T) {
		updated := &models.UserDB{UserID: userID, Credits: 1000}
		writer.EXPECT().SetCredits(gomock.Any(), userID, int64(1000)).Return(updated, nil)

		user, err := svc.SetCredits(ctx, userID, 1000)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), user.Credits)
	})

	t.Run("unknown user", func(t *testing.T) {
		writer.EXPECT().SetCredits(gomock.Any(), userID, int64(5)).Return(nil, nil)

		user, err := svc.SetCredits(ctx, userID, 5)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestAdminService_FeedActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	writer := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(reader, writer)
	ctx := context.Background()

	activity := []models.UserActivity{
		{Email: "alice@example.com", RecentActivity: []models.ActivityDB{{Action: models.ActionShared, Title: "B"}}},
	}

	reader.EXPECT().ListActivity(gomock.Any()).Return(activity, nil)

	got, err := svc.FeedActivity(ctx)
	assert.NoError(t, err)
	assert.Equal(t, activity, got)
}
