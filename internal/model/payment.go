package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a dues payment.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusPending
}

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCheque   PaymentMethod = "cheque"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCheque:
		return true
	}
	return false
}

// Payment is a single dues payment. It references its member by email only;
// no backend enforces the link.
type Payment struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	MemberEmail string          `json:"member_email" gorm:"size:255;not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date        time.Time       `json:"date"`
	Method      PaymentMethod   `json:"method" gorm:"type:varchar(20);not null"`
	Month       string          `json:"month" gorm:"size:20"`
	Year        int             `json:"year" gorm:"index"`
	Status      PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'completed';index"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// EffectiveYear returns the dues year the payment counts towards.
// Rows with no year fall back to the year of the payment date.
func (p Payment) EffectiveYear() int {
	if p.Year != 0 {
		return p.Year
	}
	if !p.Date.IsZero() {
		return p.Date.Year()
	}
	return 0
}
