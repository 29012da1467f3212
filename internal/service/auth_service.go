package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"duesmanager/internal/auth"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/repository"
)

const bcryptCost = 10

// Profile is the identity carried by a session.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, claims *auth.Claims, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
	ChangePassword(ctx context.Context, email, current, next string) error
	Session(ctx context.Context, claims *auth.Claims) (*Profile, error)
}

type authService struct {
	store      repository.Store
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(store repository.Store, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		store:      store,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// credentials finds the stored identity for email: the Users record first,
// then a member row that carries a password hash.
func (s *authService) credentials(ctx context.Context, email string) (*Profile, string, error) {
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err == nil && user.PasswordHash != "" {
		return &Profile{Email: user.Email, Name: user.Name, IsAdmin: user.IsAdmin}, user.PasswordHash, nil
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	member, err := s.store.Members().FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("get member: %w", err)
	}
	if member.PasswordHash == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	return &Profile{Email: member.Email, Name: member.Name, IsAdmin: member.IsAdmin}, member.PasswordHash, nil
}

// Login verifies the password and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *auth.Claims, error) {
	profile, hash, err := s.credentials(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.jwtService.GenerateSessionToken(profile.Email, profile.Name, profile.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	return token, claims, nil
}

// Logout revokes the session for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrUnauthorized
	}
	return s.tokenStore.RevokeToken(ctx, claims.ID, claims.Remaining())
}

// ChangePassword replaces the password on the login record and on the
// member row, whichever exist.
func (s *authService) ChangePassword(ctx context.Context, email, current, next string) error {
	email = normalizeEmail(email)
	_, hash, err := s.credentials(ctx, email)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	newHash, err := hashPassword(next)
	if err != nil {
		return err
	}

	return s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if user, err := tx.Users().FindByEmail(ctx, email); err == nil {
			user.PasswordHash = newHash
			if err := tx.Users().Update(ctx, user); err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("get user: %w", err)
		}

		if member, err := tx.Members().FindByEmail(ctx, email); err == nil {
			member.PasswordHash = newHash
			if err := tx.Members().Update(ctx, member); err != nil {
				return fmt.Errorf("update member: %w", err)
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("get member: %w", err)
		}
		return nil
	})
}

func (s *authService) Session(_ context.Context, claims *auth.Claims) (*Profile, error) {
	if claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return &Profile{Email: claims.Email, Name: claims.Name, IsAdmin: claims.IsAdmin}, nil
}
