package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"duesmanager/internal/auth"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*testing.T, *mockStore)
		expectedError error
		expectAdmin   bool
	}{
		{
			name:     "successful login from users sheet",
			email:    " Admin@Example.com ",
			password: "password123",
			setupMock: func(t *testing.T, s *mockStore) {
				s.users.On("FindByEmail", mock.Anything, "admin@example.com").Return(&model.User{
					Email:        "admin@example.com",
					Name:         "Admin",
					PasswordHash: mustHash(t, "password123"),
					IsAdmin:      true,
				}, nil)
			},
			expectAdmin: true,
		},
		{
			name:     "falls back to member row",
			email:    "member@example.com",
			password: "secret",
			setupMock: func(t *testing.T, s *mockStore) {
				s.users.On("FindByEmail", mock.Anything, "member@example.com").Return(nil, repository.ErrNotFound)
				s.members.On("FindByEmail", mock.Anything, "member@example.com").Return(&model.Member{
					Email:        "member@example.com",
					Name:         "Member",
					PasswordHash: mustHash(t, "secret"),
				}, nil)
			},
		},
		{
			name:     "member without password",
			email:    "nopass@example.com",
			password: "secret",
			setupMock: func(t *testing.T, s *mockStore) {
				s.users.On("FindByEmail", mock.Anything, "nopass@example.com").Return(nil, repository.ErrNotFound)
				s.members.On("FindByEmail", mock.Anything, "nopass@example.com").Return(&model.Member{Email: "nopass@example.com"}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - account not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(t *testing.T, s *mockStore) {
				s.users.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, repository.ErrNotFound)
				s.members.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, repository.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			setupMock: func(t *testing.T, s *mockStore) {
				s.users.On("FindByEmail", mock.Anything, "admin@example.com").Return(&model.User{
					Email:        "admin@example.com",
					PasswordHash: mustHash(t, "password123"),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			tt.setupMock(t, store)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewAuthService(store, jwtService, new(MockTokenStore))

			token, claims, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.expectAdmin, claims.IsAdmin)

				parsed, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, claims.Email, parsed.Email)
			}

			store.users.AssertExpectations(t)
			store.members.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	_, claims, err := jwtService.GenerateSessionToken("a@example.com", "A", false)
	require.NoError(t, err)

	tokens := new(MockTokenStore)
	tokens.On("RevokeToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 59*time.Minute && ttl <= time.Hour
	})).Return(nil)

	service := NewAuthService(newMockStore(), jwtService, tokens)
	require.NoError(t, service.Logout(context.Background(), claims))
	assert.ErrorIs(t, service.Logout(context.Background(), nil), apperrors.ErrUnauthorized)
	tokens.AssertExpectations(t)
}

func TestAuthService_ChangePassword(t *testing.T) {
	store := newMockStore()
	user := &model.User{Email: "a@example.com", Name: "A", PasswordHash: mustHash(t, "old")}
	member := &model.Member{Email: "a@example.com", Name: "A", PasswordHash: user.PasswordHash}
	store.users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)
	store.members.On("FindByEmail", mock.Anything, "a@example.com").Return(member, nil)
	store.users.On("Update", mock.Anything, user).Return(nil)
	store.members.On("Update", mock.Anything, member).Return(nil)

	service := NewAuthService(store, auth.NewJWTService("s", time.Hour), new(MockTokenStore))

	assert.ErrorIs(t, service.ChangePassword(context.Background(), "a@example.com", "wrong", "new"), apperrors.ErrInvalidCredentials)

	require.NoError(t, service.ChangePassword(context.Background(), "a@example.com", "old", "new"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new")))
	assert.Equal(t, user.PasswordHash, member.PasswordHash)
	store.users.AssertExpectations(t)
	store.members.AssertExpectations(t)
}

func TestAuthService_Session(t *testing.T) {
	service := NewAuthService(newMockStore(), auth.NewJWTService("s", time.Hour), new(MockTokenStore))
	profile, err := service.Session(context.Background(), &auth.Claims{Email: "a@example.com", Name: "A", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, &Profile{Email: "a@example.com", Name: "A", IsAdmin: true}, profile)

	_, err = service.Session(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
