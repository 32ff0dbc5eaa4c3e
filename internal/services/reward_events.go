package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// RewardEventWriter defines a Kafka writer abstraction.
type RewardEventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the writer
}

// publishRewardEvent publishes a credit delta to Kafka. Publishing is
// best-effort: failures are logged, never propagated.
func publishRewardEvent(ctx context.Context, w RewardEventWriter, userID uuid.UUID, action string, points int64) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping reward event", "user_id", userID, "action", action)
		return
	}

	event := models.RewardEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Action:    action,
		Points:    points,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal reward event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish reward event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("reward event published", "event_id", event.EventID, "action", action, "points", points)
}
