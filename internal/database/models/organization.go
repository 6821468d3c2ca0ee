package models

import (
	"encoding/json"
)

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name     string          `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug     string          `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Plan     string          `json:"plan" gorm:"not null;size:50;default:'free'"`
	Settings json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
