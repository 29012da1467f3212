package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, issued, err := svc.GenerateSessionToken("alice@example.com", "Alice", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, issued.ID, claims.ID)
	assert.InDelta(t, time.Hour.Seconds(), claims.Remaining().Seconds(), 5)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewJWTService("other-secret", time.Hour).GenerateSessionToken("a@example.com", "A", false)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			Email: "a@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("no email", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultSessionTTL, NewJWTService("s", 0).TTL())
}

func TestTokenStoreWithoutRedis(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(nil)

	assert.NoError(t, store.RevokeToken(ctx, "jti", time.Minute))
	revoked, err := store.IsRevoked(ctx, "jti")
	assert.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "other")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStoreRevocationExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := NewTokenStore(nil)
	store.now = func() time.Time { return now }

	assert.NoError(t, store.RevokeToken(ctx, "jti", time.Minute))
	assert.NoError(t, store.RevokeToken(ctx, "expired", 0))

	now = now.Add(2 * time.Minute)
	revoked, err := store.IsRevoked(ctx, "jti")
	assert.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "expired")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
