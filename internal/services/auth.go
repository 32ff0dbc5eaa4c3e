package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhayrai8299/creator-assignment-backend/internal/logger"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/rewards"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("not authorized as admin")
)

// UserReader defines the read operations the auth flows need.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByEmailForUpdate(ctx context.Context, email string) (*models.UserDB, error)
	HasAdmin(ctx context.Context) (bool, error)
}

// UserWriter defines the write operations the auth flows need.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, role string) (*models.UserDB, error)
	UpdateRewardState(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for issuing signed tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// AuthService handles registration, login and the login reward rules.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	events RewardEventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, events RewardEventWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register creates a new user account and returns the created record.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword), models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user, applies the login reward rules and
// returns a token together with the user's role.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := svc.reader.GetByEmailForUpdate(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	res := rewards.Login(user, time.Now())
	if err := svc.writer.UpdateRewardState(ctx, user); err != nil {
		logger.Log.Errorw("failed to persist login rewards", "user_id", user.UserID, "err", err)
		return "", "", err
	}
	if res.Delta != 0 {
		publishRewardEvent(ctx, svc.events, user.UserID, "Login", res.Delta)
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", "", err
	}

	return token, user.Role, nil
}

// AdminLogin authenticates an administrator against the stored password
// hash and returns a token. No reward rules apply.
func (svc *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("admin does not exist", "email", email)
		return "", ErrUserNotFound
	}

	if user.Role != models.RoleAdmin {
		logger.Log.Errorw("access denied, not an admin", "email", email)
		return "", ErrNotAdmin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid admin credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// SeedAdmin creates the default administrator account if no admin
// exists yet. Safe to run on every startup.
func (svc *AuthService) SeedAdmin(ctx context.Context, username, email, password string) error {
	exists, err := svc.reader.HasAdmin(ctx)
	if err != nil {
		logger.Log.Errorw("failed to check for existing admin", "err", err)
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := svc.writer.Save(ctx, username, email, string(hashedPassword), models.RoleAdmin); err != nil {
		logger.Log.Errorw("failed to seed admin", "err", err)
		return err
	}

	logger.Log.Infow("default admin created", "email", email)
	return nil
}
