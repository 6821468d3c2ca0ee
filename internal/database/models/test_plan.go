package models

import (
	"github.com/google/uuid"
)

// TestPlan is a named selection of testing work within a project that test
// runs can optionally reference
type TestPlan struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description string    `json:"description" gorm:"type:text"`

	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	TestRuns []TestRun `json:"test_runs,omitempty" gorm:"foreignKey:TestPlanID"`
}

// TableName returns the table name for TestPlan
func (TestPlan) TableName() string {
	return "test_plans"
}
