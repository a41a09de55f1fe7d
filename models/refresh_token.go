package models

import (
	"time"
)

// RefreshToken is server-side session state: access tokens are short-lived and
// every refresh is checked against this table, so revocation is effective
// immediately.
type RefreshToken struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uint      `gorm:"not null" json:"user_id"`
	Token          string    `gorm:"not null;index" json:"token"`
	ExpirationDate time.Time `gorm:"not null" json:"expiry"`
}
