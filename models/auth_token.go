package models

import "time"

// AuthToken is the persisted record backing one issued bearer token.
// The raw token is never stored, only a SHA-256 digest. Deleting the
// row revokes the token.
type AuthToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	TokenHash string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
