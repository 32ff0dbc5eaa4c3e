package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/rewards"
)

// ErrFeedUnavailable is returned when any upstream provider fails; the
// aggregate has no partial-result mode.
var ErrFeedUnavailable = errors.New("failed to fetch feed")

// FeedSource fetches items from one external content provider.
type FeedSource interface {
	Fetch(ctx context.Context) ([]models.FeedItem, error)
}

// FeedCache caches the aggregated feed.
type FeedCache interface {
	Get(ctx context.Context) ([]models.FeedItem, error)
	Set(ctx context.Context, items []models.FeedItem) error
}

// RewardUserReader loads a user record with its row locked for the
// surrounding transaction.
type RewardUserReader interface {
	GetByIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// RewardUserWriter persists the outcome of a reward rule.
type RewardUserWriter interface {
	UpdateRewardState(ctx context.Context, user *models.UserDB) error
	AddSavedFeed(ctx context.Context, userID uuid.UUID, item models.FeedItem) error
	AddActivity(ctx context.Context, userID uuid.UUID, activity models.ActivityDB) error
}

// FeedService aggregates the external feed and applies the feed-item
// reward rules.
type FeedService struct {
	sources []FeedSource
	cache   FeedCache
	reader  RewardUserReader
	writer  RewardUserWriter
	events  RewardEventWriter
}

// NewFeedService creates a new FeedService.
func NewFeedService(
	sources []FeedSource,
	cache FeedCache,
	reader RewardUserReader,
	writer RewardUserWriter,
	events RewardEventWriter,
) *FeedService {
	return &FeedService{
		sources: sources,
		cache:   cache,
		reader:  reader,
		writer:  writer,
		events:  events,
	}
}

// Aggregate returns the combined feed, serving from cache when
// possible. A single failed provider fails the whole aggregate.
func (svc *FeedService) Aggregate(ctx context.Context) ([]models.FeedItem, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	var feed []models.FeedItem
	for _, source := range svc.sources {
		items, err := source.Fetch(ctx)
		if err != nil {
			logger.Log.Errorw("feed source failed", "err", err)
			return nil, ErrFeedUnavailable
		}
		feed = append(feed, items...)
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, feed); err != nil {
			logger.Log.Errorw("failed to cache aggregated feed", "err", err)
		}
	}

	return feed, nil
}

// Save applies the save-feed rule (+5 on first save of a url) and
// returns the updated user record.
func (svc *FeedService) Save(ctx context.Context, userID uuid.UUID, item models.FeedItem) (*models.UserDB, error) {
	user, err := svc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := rewards.SaveFeed(user, item, time.Now())
	if err := svc.persist(ctx, user, res, models.ActionSaved); err != nil {
		return nil, err
	}
	return user, nil
}

// Share applies the share rule (+3, unconditional) and returns the
// updated user record.
func (svc *FeedService) Share(ctx context.Context, userID uuid.UUID, item models.FeedItem) (*models.UserDB, error) {
	user, err := svc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := rewards.Share(user, item, time.Now())
	if err := svc.persist(ctx, user, res, models.ActionShared); err != nil {
		return nil, err
	}
	return user, nil
}

// Report applies the report rule (-2, unconditional, no floor) and
// returns the updated user record.
func (svc *FeedService) Report(ctx context.Context, userID uuid.UUID, item models.FeedItem) (*models.UserDB, error) {
	user, err := svc.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := rewards.Report(user, item, time.Now())
	if err := svc.persist(ctx, user, res, models.ActionReported); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *FeedService) loadUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByIDForUpdate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// persist writes whatever the rule produced. A zero-delta result (a
// duplicate save) touches nothing.
func (svc *FeedService) persist(ctx context.Context, user *models.UserDB, res rewards.Result, action string) error {
	if res.Delta == 0 && res.SavedFeed == nil && res.Activity == nil {
		return nil
	}

	if res.SavedFeed != nil {
		if err := svc.writer.AddSavedFeed(ctx, user.UserID, *res.SavedFeed); err != nil {
			logger.Log.Errorw("failed to persist saved feed", "user_id", user.UserID, "err", err)
			return err
		}
	}
	if res.Activity != nil {
		if err := svc.writer.AddActivity(ctx, user.UserID, *res.Activity); err != nil {
			logger.Log.Errorw("failed to persist activity", "user_id", user.UserID, "err", err)
			return err
		}
	}
	if err := svc.writer.UpdateRewardState(ctx, user); err != nil {
		logger.Log.Errorw("failed to persist reward state", "user_id", user.UserID, "err", err)
		return err
	}

	if res.Delta != 0 {
		publishRewardEvent(ctx, svc.events, user.UserID, action, res.Delta)
	}
	return nil
}
