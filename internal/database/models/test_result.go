package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TestResult is the recorded outcome of executing one test case within one
// test run. At most one result exists per (run, case) pair.
type TestResult struct {
	BaseModel
	TestRunID       uuid.UUID        `json:"test_run_id" gorm:"type:uuid;not null;uniqueIndex:idx_results_run_case"`
	TestCaseID      uuid.UUID        `json:"test_case_id" gorm:"type:uuid;not null;uniqueIndex:idx_results_run_case"`
	TestCaseVersion int              `json:"test_case_version" gorm:"not null;default:1"`
	Status          TestResultStatus `json:"status" gorm:"type:varchar(20);not null;default:'untested'"`
	Comment         string           `json:"comment" gorm:"type:text"`
	ElapsedSeconds  int              `json:"elapsed_seconds"`
	Defects         json.RawMessage  `json:"defects" gorm:"type:jsonb"`
	Attachments     json.RawMessage  `json:"attachments" gorm:"type:jsonb"`
	ExecutedBy      *uuid.UUID       `json:"executed_by,omitempty" gorm:"type:uuid"`
	ExecutedAt      *time.Time       `json:"executed_at,omitempty"`

	TestRun  *TestRun  `json:"-" gorm:"foreignKey:TestRunID"`
	TestCase *TestCase `json:"test_case,omitempty" gorm:"foreignKey:TestCaseID"`
	Executor *User     `json:"executor,omitempty" gorm:"foreignKey:ExecutedBy"`
}

// TableName returns the table name for TestResult
func (TestResult) TableName() string {
	return "test_results"
}
