package service

import (
	"errors"
	"fmt"
	"time"

	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestRunService handles business logic for test runs
type TestRunService struct {
	repo        repository.TestRunRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	planRepo    repository.TestPlanRepositoryInterface
	validator   *validator.Validate
}

// NewTestRunService creates a new test run service
func NewTestRunService(
	repo repository.TestRunRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	planRepo repository.TestPlanRepositoryInterface,
	validator *validator.Validate,
) *TestRunService {
	return &TestRunService{
		repo:        repo,
		projectRepo: projectRepo,
		planRepo:    planRepo,
		validator:   validator,
	}
}

// CreateTestRunRequest represents the request to create a test run
type CreateTestRunRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description,omitempty"`
	TestPlanID  *uuid.UUID `json:"test_plan_id,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
}

// UpdateTestRunRequest represents a partial update of a test run
type UpdateTestRunRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
}

// TestRunResponse represents the response for test run operations
type TestRunResponse struct {
	ID          uuid.UUID            `json:"id"`
	ProjectID   uuid.UUID            `json:"project_id"`
	TestPlanID  *uuid.UUID           `json:"test_plan_id,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.TestRunStatus `json:"status"`
	AssigneeID  *uuid.UUID           `json:"assignee_id,omitempty"`
	StartedAt   *time.Time           `json:"started_at,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// TestRunListResponse represents a paginated list of test runs
type TestRunListResponse struct {
	TestRuns []TestRunResponse `json:"test_runs"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new test run in the not_started state
func (s *TestRunService) Create(projectID uuid.UUID, req *CreateTestRunRequest) (*TestRunResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to check project: %w", err)
	}

	if req.TestPlanID != nil {
		plan, err := s.planRepo.GetByID(*req.TestPlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTestPlanNotFound
			}
			return nil, fmt.Errorf("failed to check test plan: %w", err)
		}
		if plan.ProjectID != projectID {
			return nil, apperrors.NewValidationError("test_plan_id", "test plan belongs to a different project")
		}
	}

	run := &models.TestRun{
		ProjectID:   projectID,
		TestPlanID:  req.TestPlanID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.TestRunNotStarted,
		AssigneeID:  req.AssigneeID,
	}

	if err := s.repo.Create(run); err != nil {
		return nil, fmt.Errorf("failed to create test run: %w", err)
	}

	return s.toResponse(run), nil
}

// GetByID retrieves a test run by ID
func (s *TestRunService) GetByID(id uuid.UUID) (*TestRunResponse, error) {
	run, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}

	return s.toResponse(run), nil
}

// GetByProject retrieves test runs of a project with pagination
func (s *TestRunService) GetByProject(projectID uuid.UUID, page, pageSize int) (*TestRunListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	runs, total, err := s.repo.GetByProjectID(projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get test runs: %w", err)
	}

	responses := make([]TestRunResponse, len(runs))
	for i := range runs {
		responses[i] = *s.toResponse(&runs[i])
	}

	return &TestRunListResponse{
		TestRuns: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update; absent fields keep their current values
func (s *TestRunService) Update(id uuid.UUID, req *UpdateTestRunRequest) (*TestRunResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	run, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}

	if req.Name != nil {
		run.Name = *req.Name
	}
	if req.Description != nil {
		run.Description = *req.Description
	}
	if req.AssigneeID != nil {
		run.AssigneeID = req.AssigneeID
	}

	if err := s.repo.Update(run); err != nil {
		return nil, fmt.Errorf("failed to update test run: %w", err)
	}

	return s.toResponse(run), nil
}

// Delete soft-deletes a test run; an already-deleted or missing run is a
// not-found error, not a silent no-op
func (s *TestRunService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTestRunNotFound
		}
		return fmt.Errorf("failed to get test run: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete test run: %w", err)
	}
	return nil
}

// Start moves a run to in_progress and stamps the start time. Completed runs
// cannot be restarted.
func (s *TestRunService) Start(id uuid.UUID) (*TestRunResponse, error) {
	run, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}

	if run.Status == models.TestRunCompleted {
		return nil, apperrors.ErrRunAlreadyCompleted
	}
	if run.Status == models.TestRunNotStarted {
		now := time.Now()
		run.Status = models.TestRunInProgress
		run.StartedAt = &now
		if err := s.repo.Update(run); err != nil {
			return nil, fmt.Errorf("failed to start test run: %w", err)
		}
	}

	return s.toResponse(run), nil
}

// Complete moves a run to completed and stamps the completion time
func (s *TestRunService) Complete(id uuid.UUID) (*TestRunResponse, error) {
	run, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}

	if run.Status != models.TestRunCompleted {
		now := time.Now()
		run.Status = models.TestRunCompleted
		run.CompletedAt = &now
		if run.StartedAt == nil {
			run.StartedAt = &now
		}
		if err := s.repo.Update(run); err != nil {
			return nil, fmt.Errorf("failed to complete test run: %w", err)
		}
	}

	return s.toResponse(run), nil
}

func (s *TestRunService) toResponse(run *models.TestRun) *TestRunResponse {
	return &TestRunResponse{
		ID:          run.ID,
		ProjectID:   run.ProjectID,
		TestPlanID:  run.TestPlanID,
		Name:        run.Name,
		Description: run.Description,
		Status:      run.Status,
		AssigneeID:  run.AssigneeID,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		CreatedAt:   run.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   run.UpdatedAt.Format(time.RFC3339),
	}
}
