package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/repositories"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, bcrypt.MinCost)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.User
		readerErr    error
		writerErr    error
		wantErr      error
		wantField    string
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.User{UserID: uuid.New(), Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "concurrent registration wins",
			username:  "dave",
			password:  "pass123",
			writerErr: fmt.Errorf("%w: users_username_key", repositories.ErrConflict),
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "missing username",
			password:  "pass123",
			wantErr:   services.ErrValidation,
			wantField: "username",
		},
		{
			name:      "missing password",
			username:  "frank",
			wantErr:   services.ErrValidation,
			wantField: "password",
		},
		{
			name:      "password longer than bcrypt accepts",
			username:  "long",
			password:  strings.Repeat("x", 73),
			wantErr:   services.ErrValidation,
			wantField: "password",
		},
		{
			name:     "password of exactly 72 bytes",
			username: "grace",
			password: strings.Repeat("x", 72),
		},
		{
			name:      "multibyte password over 72 bytes",
			username:  "heidi",
			password:  strings.Repeat("é", 37),
			wantErr:   services.ErrValidation,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantField == "" {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.existingUser, tt.readerErr)
			}

			if tt.wantField == "" && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) error {
						assert.Equal(t, tt.username, u.Username)
						assert.NotEqual(t, uuid.Nil, u.UserID)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			user, err := svc.Register(context.Background(), tt.username, tt.password)
			switch {
			case tt.wantField != "":
				assert.ErrorIs(t, err, services.ErrValidation)
				var fe *services.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantField, fe.Field)
				assert.Nil(t, user)
			case tt.wantErr != nil:
				if errors.Is(tt.wantErr, services.ErrUserAlreadyExists) {
					assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestAuthService_Register_ValidationMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), bcrypt.MinCost)

	_, err := svc.Register(context.Background(), "", "")
	assert.EqualError(t, err, "Username is required")

	_, err = svc.Register(context.Background(), "zoe", "")
	assert.EqualError(t, err, "Password is required")

	_, err = svc.Register(context.Background(), "zoe", strings.Repeat("x", 73))
	assert.EqualError(t, err, "Password must be at most 72 bytes")
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, bcrypt.MinCost)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	user := &models.User{UserID: uuid.New(), Username: "alice", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		username  string
		password  string
		mockUser  *models.User
		readerErr error
		wantErr   error
	}{
		{
			name:     "valid credentials",
			username: "alice",
			password: "secret",
			mockUser: user,
		},
		{
			name:     "unknown user",
			username: "bob",
			password: "secret",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			mockUser: user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "secret",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.mockUser, tt.readerErr)

			got, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthService_Authenticate_UnknownUserHashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	const cost = 10
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), cost)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), cost)
	require.NoError(t, err)
	alice := &models.User{UserID: uuid.New(), Username: "alice", PasswordHash: string(hashed)}

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

	start := time.Now()
	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	wrongPassword := time.Since(start)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	start = time.Now()
	_, err = svc.Authenticate(context.Background(), "nobody", "wrong")
	unknownUser := time.Since(start)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	assert.Greater(t, unknownUser, wrongPassword/4, "unknown user answered without bcrypt work")
}
