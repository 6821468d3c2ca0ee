package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted long-lived credential. Rotation revokes the
// presented row and issues a new one; a revoked or expired row never refreshes.
type RefreshToken struct {
	BaseModel
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Token     string     `json:"-" gorm:"uniqueIndex;not null;size:255"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for RefreshToken
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Active reports whether the token can still be exchanged at the given time.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
