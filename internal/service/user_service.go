package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"duesmanager/internal/cache"
	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
)

// UserInput holds the fields of a new login record.
type UserInput struct {
	Email    string
	Name     string
	Password string
	IsAdmin  bool
}

// UserUpdate holds the fields to change on a login record.
type UserUpdate struct {
	Name     *string
	Password *string
	IsAdmin  *bool
}

// UserService exposes login record management. Changes are mirrored onto the
// matching member row.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Update(ctx context.Context, email string, in UserUpdate) (*model.User, error)
	Delete(ctx context.Context, email string) error
}

type userService struct {
	store  repository.Store
	cache  *cache.Client
	policy DuesPolicy
	logger *slog.Logger
}

// NewUserService builds a UserService with store and cache.
func NewUserService(store repository.Store, cache *cache.Client, policy DuesPolicy, logger *slog.Logger) UserService {
	return &userService{store: store, cache: cache, policy: policy, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create adds a login record and, when missing, a member row joining today.
func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Name == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", apperrors.ErrInvalidInput)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: email, Name: in.Name, PasswordHash: hash, IsAdmin: in.IsAdmin}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Users().FindByEmail(ctx, email); err == nil {
			return apperrors.ErrEmailExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("check user existence: %w", err)
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		member, err := tx.Members().FindByEmail(ctx, email)
		if err == nil {
			member.PasswordHash = hash
			member.IsAdmin = user.IsAdmin
			if err := tx.Members().Update(ctx, member); err != nil {
				return fmt.Errorf("update member: %w", err)
			}
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("get member: %w", err)
		}

		now := s.policy.now()
		member = &model.Member{
			Email:        email,
			Name:         user.Name,
			PasswordHash: hash,
			IsAdmin:      user.IsAdmin,
			JoinDate:     startOfDay(now),
			Status:       model.MemberStatusActive,
		}
		payments, err := tx.Payments().ListByMember(ctx, email)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		s.policy.apply(member, payments)
		if err := tx.Members().Create(ctx, member); err != nil {
			return fmt.Errorf("create member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	s.logger.InfoContext(ctx, "user created", slog.String("email", email), slog.Bool("admin", user.IsAdmin))
	return user, nil
}

func (s *userService) Update(ctx context.Context, email string, in UserUpdate) (*model.User, error) {
	email = normalizeEmail(email)
	var hash string
	if in.Password != nil && *in.Password != "" {
		var err error
		if hash, err = hashPassword(*in.Password); err != nil {
			return nil, err
		}
	}

	var user *model.User
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		user, err = tx.Users().FindByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("get user %s: %w", email, err)
		}
		if in.Name != nil && *in.Name != "" {
			user.Name = *in.Name
		}
		if in.IsAdmin != nil {
			user.IsAdmin = *in.IsAdmin
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		if err := tx.Users().Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		member, err := tx.Members().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}
		member.Name = user.Name
		member.IsAdmin = user.IsAdmin
		if hash != "" {
			member.PasswordHash = hash
		}
		if err := tx.Members().Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	return user, nil
}

// Delete removes the login record and strips the password and admin flag
// from the matching member row so the member can no longer sign in. The
// member row and its payments stay.
func (s *userService) Delete(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Users().Delete(ctx, email); err != nil {
			return fmt.Errorf("delete user %s: %w", email, err)
		}

		member, err := tx.Members().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}
		if member.PasswordHash == "" && !member.IsAdmin {
			return nil
		}
		member.PasswordHash = ""
		member.IsAdmin = false
		if err := tx.Members().Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.MemberKey(email))
	s.logger.InfoContext(ctx, "user deleted", slog.String("email", email))
	return nil
}
