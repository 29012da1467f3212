package model

import "time"

// User is the authentication record. It duplicates part of Member and the two
// are kept in sync by the service layer only.
type User struct {
	Email        string    `json:"email" gorm:"primaryKey;size:255"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
