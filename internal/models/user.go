package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ProfileDB holds the editable profile section of a user record.
type ProfileDB struct {
	Bio            string `json:"bio" db:"bio"`                         // Short biography, empty by default
	ProfilePicture string `json:"profilePicture" db:"profile_picture"` // Picture URL, empty by default
}

// UserDB represents a user record in the database together with its
// saved feeds and activity log.
type UserDB struct {
	UserID          uuid.UUID    `json:"id" db:"user_id"`                       // Primary key
	Username        string       `json:"username" db:"username"`                // Display name
	Email           string       `json:"email" db:"email"`                      // Unique email
	PasswordHash    string       `json:"-" db:"password_hash"`                  // Hashed password, never serialized
	Role            string       `json:"role" db:"role"`                        // "user" or "admin"
	Credits         int64        `json:"credits" db:"credits"`                  // Reward balance, may go negative
	ProfileComplete bool         `json:"profileComplete" db:"profile_complete"` // Set once, never unset
	LastLogin       *time.Time   `json:"lastLogin" db:"last_login"`             // Most recent successful login
	Profile         ProfileDB    `json:"profile" db:"profile"`                  // Bio and picture
	SavedFeeds      []FeedItem   `json:"savedFeeds" db:"-"`                     // Unique by url per user
	RecentActivity  []ActivityDB `json:"recentActivity" db:"-"`                 // Append-only log
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

// Activity actions recorded in the user's log.
const (
	ActionSaved    = "Saved"
	ActionShared   = "Shared"
	ActionReported = "Reported"
)

// ActivityDB is a single append-only entry in a user's activity log.
type ActivityDB struct {
	Action string    `json:"action" db:"action"`
	Title  string    `json:"title" db:"title"`
	Date   time.Time `json:"date" db:"created_at"`
}

// UserActivity pairs a user's email with their activity log for the
// admin activity report.
type UserActivity struct {
	Email          string       `json:"email" db:"email"`
	RecentActivity []ActivityDB `json:"recentActivity" db:"-"`
}
