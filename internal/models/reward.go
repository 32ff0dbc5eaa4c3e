package models

// RewardEvent is the message published to the event stream whenever a
// reward rule changes a user's balance.
type RewardEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Points    int64  `json:"points"`
	Timestamp int64  `json:"timestamp"`
}
