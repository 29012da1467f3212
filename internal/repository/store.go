package repository

import (
	"context"

	"gorm.io/gorm"

	"duesmanager/internal/model"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store over a relational database.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Member{}, &model.Payment{}, &model.User{})
}

func (s *gormStore) Members() MemberRepository   { return NewMemberRepository(s.db) }
func (s *gormStore) Payments() PaymentRepository { return NewPaymentRepository(s.db) }
func (s *gormStore) Users() UserRepository       { return NewUserRepository(s.db) }
func (s *gormStore) Atomic() bool                { return true }

// WithTransaction executes fn within a database transaction.
func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormStore{db: tx})
	})
}
