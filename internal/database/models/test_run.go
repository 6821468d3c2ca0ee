package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestRun is an execution campaign grouping test-case executions and their
// recorded results. Deletion is soft (DeletedAt timestamp).
type TestRun struct {
	BaseModel
	ProjectID   uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;index"`
	TestPlanID  *uuid.UUID     `json:"test_plan_id,omitempty" gorm:"type:uuid;index"`
	Name        string         `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description string         `json:"description" gorm:"type:text"`
	Status      TestRunStatus  `json:"status" gorm:"type:varchar(20);not null;default:'not_started'"`
	AssigneeID  *uuid.UUID     `json:"assignee_id,omitempty" gorm:"type:uuid"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Project  *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	TestPlan *TestPlan    `json:"test_plan,omitempty" gorm:"foreignKey:TestPlanID"`
	Assignee *User        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Results  []TestResult `json:"results,omitempty" gorm:"foreignKey:TestRunID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestRun
func (TestRun) TableName() string {
	return "test_runs"
}
