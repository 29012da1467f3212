package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberStatus represents the membership state of a member.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusOnLeave  MemberStatus = "on-leave"
)

// Valid reports whether s is one of the known statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusOnLeave:
		return true
	}
	return false
}

// Member represents a club member tracked for dues.
// Email is the primary key in every backend.
type Member struct {
	Email        string          `json:"email" gorm:"primaryKey;size:255"`
	Name         string          `json:"name" gorm:"size:255;not null;index"`
	PasswordHash string          `json:"-" gorm:"size:255"` // Never expose in JSON
	IsAdmin      bool            `json:"is_admin" gorm:"default:false"`
	Phone        string          `json:"phone" gorm:"size:50"`
	JoinDate     time.Time       `json:"join_date"`
	Birthday     time.Time       `json:"birthday"`
	Anniversary  time.Time       `json:"anniversary"`
	Status       MemberStatus    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	TotalPaid    decimal.Decimal `json:"total_paid" gorm:"type:decimal(20,2);not null;default:0"`
	Balance      decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	Year         int             `json:"year"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}
