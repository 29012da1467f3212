package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"duesmanager/internal/model"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a GORM-backed member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// notFound normalizes GORM's not-found error.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Create creates a new member.
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update updates an existing member.
func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	res := r.db.WithContext(ctx).Model(&model.Member{}).
		Where("email = ?", member.Email).
		Select("*").
		Omit("email", "created_at").
		Updates(member)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a member by email.
func (r *memberRepository) Delete(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByEmail finds a member by email.
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

// List lists members ordered by name.
func (r *memberRepository) List(ctx context.Context, filter MemberFilter) ([]model.Member, error) {
	q := r.db.WithContext(ctx).Order("name")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	var members []model.Member
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
