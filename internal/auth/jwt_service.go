package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when no session lifetime is configured.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims represents the session token claims.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret and session
// lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the session lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// GenerateSessionToken signs a new session token. The returned claims carry
// the token ID used for revocation.
func (s *JWTService) GenerateSessionToken(email, name string, isAdmin bool) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Email:   email,
		Name:    name,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        generateTokenID(),
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errors.New("token has no email")
	}

	return claims, nil
}

// Remaining returns how long the token behind claims stays valid.
func (c *Claims) Remaining() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return time.Until(c.ExpiresAt.Time)
}

// generateTokenID generates a unique token ID.
func generateTokenID() string {
	return uuid.New().String()
}
