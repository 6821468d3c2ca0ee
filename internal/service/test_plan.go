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

// TestPlanService handles business logic for test plans
type TestPlanService struct {
	repo        repository.TestPlanRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewTestPlanService creates a new test plan service
func NewTestPlanService(repo repository.TestPlanRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *TestPlanService {
	return &TestPlanService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateTestPlanRequest represents the request to create a test plan
type CreateTestPlanRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description,omitempty"`
}

// UpdateTestPlanRequest represents a partial update of a test plan
type UpdateTestPlanRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// TestPlanResponse represents the response for test plan operations
type TestPlanResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TestPlanListResponse represents a paginated list of test plans
type TestPlanListResponse struct {
	TestPlans []TestPlanResponse `json:"test_plans"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new test plan
func (s *TestPlanService) Create(req *CreateTestPlanRequest) (*TestPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to check project: %w", err)
	}

	plan := &models.TestPlan{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create test plan: %w", err)
	}

	return s.toResponse(plan), nil
}

// GetByID retrieves a test plan by ID
func (s *TestPlanService) GetByID(id uuid.UUID) (*TestPlanResponse, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestPlanNotFound
		}
		return nil, fmt.Errorf("failed to get test plan: %w", err)
	}

	return s.toResponse(plan), nil
}

// GetByProject retrieves test plans of a project with pagination
func (s *TestPlanService) GetByProject(projectID uuid.UUID, page, pageSize int) (*TestPlanListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	plans, total, err := s.repo.GetByProjectID(projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get test plans: %w", err)
	}

	responses := make([]TestPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *s.toResponse(&plans[i])
	}

	return &TestPlanListResponse{
		TestPlans: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update; absent fields keep their current values
func (s *TestPlanService) Update(id uuid.UUID, req *UpdateTestPlanRequest) (*TestPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestPlanNotFound
		}
		return nil, fmt.Errorf("failed to get test plan: %w", err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update test plan: %w", err)
	}

	return s.toResponse(plan), nil
}

// Delete removes a test plan; deleting a missing one is a not-found error
func (s *TestPlanService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTestPlanNotFound
		}
		return fmt.Errorf("failed to get test plan: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete test plan: %w", err)
	}
	return nil
}

func (s *TestPlanService) toResponse(plan *models.TestPlan) *TestPlanResponse {
	return &TestPlanResponse{
		ID:          plan.ID,
		ProjectID:   plan.ProjectID,
		Name:        plan.Name,
		Description: plan.Description,
		CreatedAt:   plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   plan.UpdatedAt.Format(time.RFC3339),
	}
}
