package repository

import (
	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestRunRepository handles database operations for test runs
type TestRunRepository struct {
	db *gorm.DB
}

// NewTestRunRepository creates a new test run repository
func NewTestRunRepository(db *gorm.DB) *TestRunRepository {
	return &TestRunRepository{db: db}
}

// Create creates a new test run
func (r *TestRunRepository) Create(run *models.TestRun) error {
	return r.db.Create(run).Error
}

// GetByID retrieves a test run by ID. Soft-deleted runs are not returned.
func (r *TestRunRepository) GetByID(id uuid.UUID) (*models.TestRun, error) {
	var run models.TestRun
	err := r.db.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetByProjectID retrieves test runs of a project with pagination
func (r *TestRunRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestRun, int64, error) {
	var runs []models.TestRun
	var total int64

	if err := r.db.Model(&models.TestRun{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

// Update updates a test run
func (r *TestRunRepository) Update(run *models.TestRun) error {
	return r.db.Save(run).Error
}

// Delete soft-deletes a test run
func (r *TestRunRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestRun{}, "id = ?", id).Error
}
