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

func TestFeedService_Aggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	redditItems := []models.FeedItem{
		{Title: "r1", URL: "https://reddit.example/1", Source: models.SourceReddit},
	}
	twitterItems := []models.FeedItem{
		{Title: "t1", URL: "https://img.example/1", Source: models.SourceTwitter},
	}

	t.Run("cache hit skips providers", func(t *testing.T) {
		cache := services.NewMockFeedCache(ctrl)
		cache.EXPECT().Get(gomock.Any()).Return(redditItems, nil)

		svc := services.NewFeedService(nil, cache, nil, nil, nil)

		feed, err := svc.Aggregate(ctx)
		assert.NoError(t, err)
		assert.Equal(t, redditItems, feed)
	})

	t.Run("cache miss fetches and caches in source order", func(t *testing.T) {
		reddit := services.NewMockFeedSource(ctrl)
		twitter := services.NewMockFeedSource(ctrl)
		cache := services.NewMockFeedCache(ctrl)

		cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		reddit.EXPECT().Fetch(gomock.Any()).Return(redditItems, nil)
		twitter.EXPECT().Fetch(gomock.Any()).Return(twitterItems, nil)
		cache.EXPECT().Set(gomock.Any(), append(append([]models.FeedItem{}, redditItems...), twitterItems...)).Return(nil)

		svc := services.NewFeedService([]services.FeedSource{reddit, twitter}, cache, nil, nil, nil)

		feed, err := svc.Aggregate(ctx)
		assert.NoError(t, err)
		assert.Len(t, feed, 2)
		assert.Equal(t, models.SourceReddit, feed[0].Source)
		assert.Equal(t, models.SourceTwitter, feed[1].Source)
	})

	t.Run("one failed provider fails the whole aggregate", func(t *testing.T) {
		reddit := services.NewMockFeedSource(ctrl)
		twitter := services.NewMockFeedSource(ctrl)
		cache := services.NewMockFeedCache(ctrl)

		cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		reddit.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("timeout"))

		svc := services.NewFeedService([]services.FeedSource{reddit, twitter}, cache, nil, nil, nil)

		feed, err := svc.Aggregate(ctx)
		assert.ErrorIs(t, err, services.ErrFeedUnavailable)
		assert.Nil(t, feed)
	})

	t.Run("cache set failure is best effort", func(t *testing.T) {
		reddit := services.NewMockFeedSource(ctrl)
		cache := services.NewMockFeedCache(ctrl)

		cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
		reddit.EXPECT().Fetch(gomock.Any()).Return(redditItems, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		svc := services.NewFeedService([]services.FeedSource{reddit}, cache, nil, nil, nil)

		feed, err := svc.Aggregate(ctx)
		assert.NoError(t, err)
		assert.Equal(t, redditItems, feed)
	})
}

func TestFeedService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	item := models.FeedItem{Title: "A", URL: "https://example.com/a", Source: models.SourceReddit}

	t.Run("first save grants five credits and persists", func(t *testing.T) {
		reader := services.NewMockRewardUserReader(ctrl)
		writer := services.NewMockRewardUserWriter(ctrl)
		events := services.NewMockRewardEventWriter(ctrl)

		userID := uuid.New()
		user := &models.UserDB{UserID: userID, Credits: 60, ProfileComplete: true}

		reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(user, nil)
		writer.EXPECT().AddSavedFeed(gomock.Any(), userID, item).Return(nil)
		writer.EXPECT().AddActivity(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, a models.ActivityDB) error {
				assert.Equal(t, models.ActionSaved, a.Action)
				assert.Equal(t, "A", a.Title)
				return nil
			})
		writer.EXPECT().UpdateRewardState(gomock.Any(), user).Return(nil)
		events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewFeedService(nil, nil, reader, writer, events)

		updated, err := svc.Save(ctx, userID, item)
		assert.NoError(t, err)
		assert.Equal(t, int64(65), updated.Credits)
		assert.Len(t, updated.SavedFeeds, 1)
		assert.Len(t, updated.RecentActivity, 1)
	})

	t.Run("duplicate url is a no-op", func(t *testing.T) {
		reader := services.NewMockRewardUserReader(ctrl)
		writer := services.NewMockRewardUserWriter(ctrl)

		userID := uuid.New()
		user := &models.UserDB{
			UserID:     userID,
			Credits:    65,
			SavedFeeds: []models.FeedItem{item},
		}

		reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(user, nil)
		// no writer expectations: nothing is persisted

		svc := services.NewFeedService(nil, nil, reader, writer, nil)

		updated, err := svc.Save(ctx, userID, item)
		assert.NoError(t, err)
		assert.Equal(t, int64(65), updated.Credits)
		assert.Len(t, updated.SavedFeeds, 1)
	})

	t.Run("user not found", func(t *testing.T) {
		reader := services.NewMockRewardUserReader(ctrl)
		userID := uuid.New()
		reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(nil, nil)

		svc := services.NewFeedService(nil, nil, reader, nil, nil)

		_, err := svc.Save(ctx, userID, item)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("persist error propagates", func(t *testing.T) {
		reader := services.NewMockRewardUserReader(ctrl)
		writer := services.NewMockRewardUserWriter(ctrl)

		userID := uuid.New()
		user := &models.UserDB{UserID: userID}

		reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(user, nil)
		writer.EXPECT().AddSavedFeed(gomock.Any(), userID, item).Return(errors.New("db error"))

		svc := services.NewFeedService(nil, nil, reader, writer, nil)

		_, err := svc.Save(ctx, userID, item)
		assert.EqualError(t, err, "db error")
	})
}

func TestFeedService_Share(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	item := models.FeedItem{Title: "B", URL: "https://example.com/b"}

	reader := services.NewMockRewardUserReader(ctrl)
	writer := services.NewMockRewardUserWriter(ctrl)
	events := services.NewMockRewardEventWriter(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Credits: 65}

	reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(user, nil)
	writer.EXPECT().AddActivity(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, a models.ActivityDB) error {
			assert.Equal(t, models.ActionShared, a.Action)
			return nil
		})
	writer.EXPECT().UpdateRewardState(gomock.Any(), user).Return(nil)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := services.NewFeedService(nil, nil, reader, writer, events)

	updated, err := svc.Share(ctx, userID, item)
	assert.NoError(t, err)
	assert.Equal(t, int64(68), updated.Credits)
}

func TestFeedService_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	item := models.FeedItem{Title: "C", URL: "https://example.com/c"}

	reader := services.NewMockRewardUserReader(ctrl)
	writer := services.NewMockRewardUserWriter(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Credits: 0}

	reader.EXPECT().GetByIDForUpdate(gomock.Any(), userID).Return(user, nil)
	writer.EXPECT().AddActivity(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, a models.ActivityDB) error {
			assert.Equal(t, models.ActionReported, a.Action)
			return nil
		})
	writer.EXPECT().UpdateRewardState(gomock.Any(), user).Return(nil)

	svc := services.NewFeedService(nil, nil, reader, writer, nil)

	updated, err := svc.Report(ctx, userID, item)
	assert.NoError(t, err)
	// balance goes negative, no floor
	assert.Equal(t, int64(-2), updated.Credits)
}
