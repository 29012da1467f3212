package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"duesmanager/internal/model"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a GORM-backed payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update updates an existing payment record.
func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", payment.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(payment)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a payment record.
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Payment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID finds a payment by ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}

// ListByMember lists a member's payments oldest first.
func (r *paymentRepository) ListByMember(ctx context.Context, email string) ([]model.Payment, error) {
	return r.List(ctx, PaymentFilter{MemberEmail: email})
}

// List lists payments oldest first.
func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error) {
	q := r.db.WithContext(ctx).Order("date").Order("created_at")
	if filter.MemberEmail != "" {
		q = q.Where("member_email = ?", filter.MemberEmail)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var payments []model.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
