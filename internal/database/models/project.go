package models

import (
	"github.com/google/uuid"
)

// Project groups test cases, plans and runs within an organization
type Project struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_projects_org_name"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_projects_org_name" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"type:text"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	TestCases    []TestCase    `json:"test_cases,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestPlans    []TestPlan    `json:"test_plans,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestRuns     []TestRun     `json:"test_runs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
