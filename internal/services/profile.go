package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/rewards"
)

// ProfileService handles the complete-profile reward flow.
type ProfileService struct {
	reader RewardUserReader
	writer RewardUserWriter
	events RewardEventWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader RewardUserReader, writer RewardUserWriter, events RewardEventWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// CompleteProfile applies the profile rules (+5 per changed field) and
// returns the resulting credit balance.
func (svc *ProfileService) CompleteProfile(ctx context.Context, userID uuid.UUID, bio, profilePicture string) (int64, error) {
	user, err := svc.reader.GetByIDForUpdate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "err", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	res := rewards.CompleteProfile(user, bio, profilePicture)
	if res.Delta > 0 {
		if err := svc.writer.UpdateRewardState(ctx, user); err != nil {
			logger.Log.Errorw("failed to persist profile rewards", "user_id", userID, "err", err)
			return 0, err
		}
		publishRewardEvent(ctx, svc.events, user.UserID, "CompleteProfile", res.Delta)
	}

	return user.Credits, nil
}
