package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
}

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

// AuthService handles registration and Basic credential checks.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	cost      int
	dummyHash []byte // compared against when the user is unknown
}

// NewAuthService creates a new AuthService instance.
// cost is the bcrypt work factor used for new passwords.
func NewAuthService(reader UserReader, writer UserWriter, cost int) *AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		logger.Log.Errorw("failed to prepare dummy password hash", "err", err)
	}
	return &AuthService{
		reader:    reader,
		writer:    writer,
		cost:      cost,
		dummyHash: dummyHash,
	}
}

// Register creates a user with a hashed password and returns it.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validateRequest(models.RegisterRequest{Username: username, Password: password}, "Username", "Password"); err != nil {
		return nil, err
	}
	if len(password) > maxPasswordBytes {
		return nil, &FieldError{Field: "password", Message: msgPasswordTooLong}
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Authenticate resolves Basic credentials to a user.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		// Same bcrypt work as a wrong password.
		_ = bcrypt.CompareHashAndPassword(svc.dummyHash, []byte(password))
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
