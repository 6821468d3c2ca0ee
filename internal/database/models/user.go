package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User represents a member of an organization
type User struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string          `json:"-" gorm:"not null;size:255"`
	Name           string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Role           UserRole        `json:"role" gorm:"type:varchar(50);not null;default:'viewer'" validate:"required"`
	Settings       json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Organization  *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
