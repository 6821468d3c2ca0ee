package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseStep is a single action/expectation pair within a test case.
// Steps are stored as a jsonb array on the test case row.
type TestCaseStep struct {
	Action   string `json:"action"`
	Expected string `json:"expected"`
}

// TestCase is a versioned test definition within a project. Updates bump the
// version; recorded results snapshot the version they executed against.
type TestCase struct {
	BaseModel
	ProjectID   uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;index"`
	Title       string           `json:"title" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description string           `json:"description" gorm:"type:text"`
	Steps       json.RawMessage  `json:"steps" gorm:"type:jsonb"`
	Priority    TestCasePriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Version     int              `json:"version" gorm:"not null;default:1"`
	CreatedBy   *uuid.UUID       `json:"created_by,omitempty" gorm:"type:uuid"`
	DeletedAt   gorm.DeletedAt   `json:"deleted_at,omitempty" gorm:"index"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}
