package models

import (
	"time"
)

// Admin accounts are seeded out-of-band. Passwords are bcrypt hashes and go
// through the same verification path as user passwords.
type Admin struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
}
