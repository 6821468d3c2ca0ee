package repository

import (
	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// Create creates a new test case
func (r *TestCaseRepository) Create(testCase *models.TestCase) error {
	return r.db.Create(testCase).Error
}

// GetByID retrieves a test case by ID
func (r *TestCaseRepository) GetByID(id uuid.UUID) (*models.TestCase, error) {
	var tc models.TestCase
	err := r.db.First(&tc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// GetByProjectID retrieves test cases of a project with pagination
func (r *TestCaseRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestCase, int64, error) {
	var cases []models.TestCase
	var total int64

	if err := r.db.Model(&models.TestCase{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).Limit(limit).Offset(offset).Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// Update updates a test case
func (r *TestCaseRepository) Update(testCase *models.TestCase) error {
	return r.db.Save(testCase).Error
}

// Delete soft-deletes a test case
func (r *TestCaseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestCase{}, "id = ?", id).Error
}
