package repository

import (
	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestResultRepository handles database operations for test results
type TestResultRepository struct {
	db *gorm.DB
}

// NewTestResultRepository creates a new test result repository
func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{db: db}
}

// Create creates a new test result
func (r *TestResultRepository) Create(result *models.TestResult) error {
	return r.db.Create(result).Error
}

// GetByID retrieves a test result by ID
func (r *TestResultRepository) GetByID(id uuid.UUID) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByRunAndCase retrieves the result recorded for a test case within a run
func (r *TestResultRepository) GetByRunAndCase(runID, caseID uuid.UUID) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.First(&result, "test_run_id = ? AND test_case_id = ?", runID, caseID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByTestRunID retrieves results of a test run with pagination
func (r *TestResultRepository) GetByTestRunID(runID uuid.UUID, limit, offset int) ([]models.TestResult, int64, error) {
	var results []models.TestResult
	var total int64

	if err := r.db.Model(&models.TestResult{}).Where("test_run_id = ?", runID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("test_run_id = ?", runID).Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// Update updates a test result
func (r *TestResultRepository) Update(result *models.TestResult) error {
	return r.db.Save(result).Error
}

// Delete deletes a test result
func (r *TestResultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestResult{}, "id = ?", id).Error
}
