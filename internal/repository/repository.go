package repository

import (
	"context"

	"github.com/google/uuid"

	apperrors "duesmanager/internal/errors"
	"duesmanager/internal/model"
)

// ErrNotFound is returned by every backend when a record does not exist.
var ErrNotFound = apperrors.ErrNotFound

// MemberFilter narrows List results. Zero fields match everything.
type MemberFilter struct {
	Status model.MemberStatus
	// Search is a case-insensitive substring match on name or email.
	Search string
}

// PaymentFilter narrows payment listings. Zero fields match everything.
type PaymentFilter struct {
	MemberEmail string
	Year        int
	Status      model.PaymentStatus
}

// MemberRepository defines member persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, email string) error
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, filter MemberFilter) ([]model.Member, error)
}

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListByMember(ctx context.Context, email string) ([]model.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error)
}

// UserRepository defines auth record persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, email string) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// Store bundles the repositories of one backend.
type Store interface {
	Members() MemberRepository
	Payments() PaymentRepository
	Users() UserRepository
	// WithTransaction runs fn against a store scoped to one unit of work.
	// Backends that cannot roll back run fn directly; see Atomic.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	// Atomic reports whether WithTransaction rolls back on error.
	Atomic() bool
}
