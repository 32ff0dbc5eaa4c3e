package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/middlewares"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// userColumns selects a full user row, mapping the profile columns into
// the nested struct.
const userColumns = `
	user_id, username, email, password_hash, role, credits,
	profile_complete, last_login,
	bio AS "profile.bio", profile_picture AS "profile.profile_picture",
	created_at, updated_at
`

// savedFeedRow and activityRow carry the owning user id for grouping.
type savedFeedRow struct {
	UserID uuid.UUID `db:"user_id"`
	models.FeedItem
}

type activityRow struct {
	UserID uuid.UUID `db:"user_id"`
	models.ActivityDB
}

// UserReadRepository reads user records from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// q returns the request transaction if one is in the context, otherwise
// the pooled connection.
func (r *UserReadRepository) q(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// GetByID returns a fully assembled user record or nil if no user with
// the id exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

// GetByIDForUpdate is GetByID with the user row locked for the duration
// of the surrounding transaction. Reward paths use it so concurrent
// mutations of the same balance serialize.
func (r *UserReadRepository) GetByIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
}

// GetByEmail returns a fully assembled user record or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByEmailForUpdate locks the row like GetByIDForUpdate.
func (r *UserReadRepository) GetByEmailForUpdate(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 FOR UPDATE`, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.q(ctx), &user, query, arg)

	logger.Log.Debugw("user query",
		"sql", strings.Join(strings.Fields(query), " "),
		"arg", arg,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadCollections(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// loadCollections fills the user's saved feeds and activity log.
func (r *UserReadRepository) loadCollections(ctx context.Context, user *models.UserDB) error {
	const feedsQuery = `
		SELECT title, url, source
		FROM saved_feeds
		WHERE user_id = $1
		ORDER BY created_at
	`
	if err := sqlx.SelectContext(ctx, r.q(ctx), &user.SavedFeeds, feedsQuery, user.UserID); err != nil {
		return err
	}

	const activityQuery = `
		SELECT action, title, created_at
		FROM user_activities
		WHERE user_id = $1
		ORDER BY activity_id
	`
	return sqlx.SelectContext(ctx, r.q(ctx), &user.RecentActivity, activityQuery, user.UserID)
}

// HasAdmin reports whether any administrator account exists.
func (r *UserReadRepository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.q(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin)
	return exists, err
}

// List returns every user with saved feeds and activity attached.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	var users []models.UserDB
	err := sqlx.SelectContext(ctx, r.q(ctx), &users,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}

	var feeds []savedFeedRow
	err = sqlx.SelectContext(ctx, r.q(ctx), &feeds,
		`SELECT user_id, title, url, source FROM saved_feeds ORDER BY created_at`)
	if err != nil {
		return nil, err
	}

	var activities []activityRow
	err = sqlx.SelectContext(ctx, r.q(ctx), &activities,
		`SELECT user_id, action, title, created_at FROM user_activities ORDER BY activity_id`)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.UserDB, len(users))
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}
	for _, f := range feeds {
		if u, ok := byID[f.UserID]; ok {
			u.SavedFeeds = append(u.SavedFeeds, f.FeedItem)
		}
	}
	for _, a := range activities {
		if u, ok := byID[a.UserID]; ok {
			u.RecentActivity = append(u.RecentActivity, a.ActivityDB)
		}
	}

	return users, nil
}

// ListActivity returns email plus activity log for every non-admin user.
func (r *UserReadRepository) ListActivity(ctx context.Context) ([]models.UserActivity, error) {
	var users []struct {
		UserID uuid.UUID `db:"user_id"`
		Email  string    `db:"email"`
	}
	err := sqlx.SelectContext(ctx, r.q(ctx), &users,
		`SELECT user_id, email FROM users WHERE role <> $1 ORDER BY created_at`, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	var activities []activityRow
	err = sqlx.SelectContext(ctx, r.q(ctx), &activities,
		`SELECT user_id, action, title, created_at FROM user_activities ORDER BY activity_id`)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]models.ActivityDB, len(users))
	for _, a := range activities {
		grouped[a.UserID] = append(grouped[a.UserID], a.ActivityDB)
	}

	result := make([]models.UserActivity, 0, len(users))
	for _, u := range users {
		result = append(result, models.UserActivity{
			Email:          u.Email,
			RecentActivity: grouped[u.UserID],
		})
	}
	return result, nil
}

// UserWriteRepository mutates user records in PostgreSQL.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) e(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new user and returns the created record.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, role string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.e(ctx), &user, query, username, email, passwordHash, role)

	logger.Log.Debugw("insert user",
		"username", username,
		"email", email,
		"role", role,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRewardState persists the fields the reward rules mutate.
func (r *UserWriteRepository) UpdateRewardState(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET credits = $2,
		    profile_complete = $3,
		    last_login = $4,
		    bio = $5,
		    profile_picture = $6,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	_, err := r.e(ctx).ExecContext(ctx, query,
		user.UserID, user.Credits, user.ProfileComplete, user.LastLogin,
		user.Profile.Bio, user.Profile.ProfilePicture,
	)

	logger.Log.Debugw("update reward state",
		"user_id", user.UserID,
		"credits", user.Credits,
		"error", err,
	)

	return err
}

// AddSavedFeed appends a saved feed entry. Duplicate urls for the same
// user are silently ignored, matching the engine's guard.
func (r *UserWriteRepository) AddSavedFeed(ctx context.Context, userID uuid.UUID, item models.FeedItem) error {
	const query = `
		INSERT INTO saved_feeds (user_id, title, url, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, url) DO NOTHING
	`
	_, err := r.e(ctx).ExecContext(ctx, query, userID, item.Title, item.URL, item.Source)
	return err
}

// AddActivity appends an entry to the user's activity log.
func (r *UserWriteRepository) AddActivity(ctx context.Context, userID uuid.UUID, activity models.ActivityDB) error {
	const query = `
		INSERT INTO user_activities (user_id, action, title, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.e(ctx).ExecContext(ctx, query, userID, activity.Action, activity.Title, activity.Date)
	return err
}

// SetCredits overwrites the user's balance (absolute value, not a
// delta) and returns the updated record, or nil if no such user.
func (r *UserWriteRepository) SetCredits(ctx context.Context, userID uuid.UUID, credits int64) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET credits = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.e(ctx), &user, query, userID, credits)

	logger.Log.Debugw("set credits",
		"user_id", userID,
		"credits", credits,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
