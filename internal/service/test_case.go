package service

import (
	"encoding/json"
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

// TestCaseService handles business logic for test cases
type TestCaseService struct {
	repo        repository.TestCaseRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewTestCaseService creates a new test case service
func NewTestCaseService(repo repository.TestCaseRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *TestCaseService {
	return &TestCaseService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateTestCaseRequest represents the request to create a test case
type CreateTestCaseRequest struct {
	ProjectID   uuid.UUID             `json:"project_id" validate:"required"`
	Title       string                `json:"title" validate:"required,min=1,max=255"`
	Description string                `json:"description,omitempty"`
	Steps       []models.TestCaseStep `json:"steps,omitempty" validate:"omitempty,dive"`
	Priority    string                `json:"priority,omitempty"`
	CreatedBy   *uuid.UUID            `json:"-"`
}

// UpdateTestCaseRequest represents a partial update of a test case. Any
// applied change bumps the version.
type UpdateTestCaseRequest struct {
	Title       *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string                `json:"description"`
	Steps       *[]models.TestCaseStep `json:"steps"`
	Priority    *string                `json:"priority"`
}

// TestCaseResponse represents the response for test case operations
type TestCaseResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProjectID   uuid.UUID               `json:"project_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Steps       []models.TestCaseStep   `json:"steps"`
	Priority    models.TestCasePriority `json:"priority"`
	Version     int                     `json:"version"`
	CreatedBy   *uuid.UUID              `json:"created_by,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// TestCaseListResponse represents a paginated list of test cases
type TestCaseListResponse struct {
	TestCases []TestCaseResponse `json:"test_cases"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new test case at version 1
func (s *TestCaseService) Create(req *CreateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.TestCasePriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "must be one of low, medium, high, critical")
		}
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to check project: %w", err)
	}

	steps, err := marshalSteps(req.Steps)
	if err != nil {
		return nil, err
	}

	tc := &models.TestCase{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Steps:       steps,
		Priority:    priority,
		Version:     1,
		CreatedBy:   req.CreatedBy,
	}

	if err := s.repo.Create(tc); err != nil {
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}

	return s.toResponse(tc)
}

// GetByID retrieves a test case by ID
func (s *TestCaseService) GetByID(id uuid.UUID) (*TestCaseResponse, error) {
	tc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}

	return s.toResponse(tc)
}

// GetByProject retrieves test cases of a project with pagination
func (s *TestCaseService) GetByProject(projectID uuid.UUID, page, pageSize int) (*TestCaseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	cases, total, err := s.repo.GetByProjectID(projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}

	responses := make([]TestCaseResponse, len(cases))
	for i := range cases {
		resp, err := s.toResponse(&cases[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &TestCaseListResponse{
		TestCases: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update and bumps the version. Absent fields keep
// their current values; existing results keep the version they executed.
func (s *TestCaseService) Update(id uuid.UUID, req *UpdateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}

	changed := false
	if req.Title != nil {
		tc.Title = *req.Title
		changed = true
	}
	if req.Description != nil {
		tc.Description = *req.Description
		changed = true
	}
	if req.Steps != nil {
		steps, err := marshalSteps(*req.Steps)
		if err != nil {
			return nil, err
		}
		tc.Steps = steps
		changed = true
	}
	if req.Priority != nil {
		priority := models.TestCasePriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "must be one of low, medium, high, critical")
		}
		tc.Priority = priority
		changed = true
	}

	if changed {
		tc.Version++
		if err := s.repo.Update(tc); err != nil {
			return nil, fmt.Errorf("failed to update test case: %w", err)
		}
	}

	return s.toResponse(tc)
}

// Delete soft-deletes a test case; deleting a missing one is a not-found error
func (s *TestCaseService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTestCaseNotFound
		}
		return fmt.Errorf("failed to get test case: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete test case: %w", err)
	}
	return nil
}

func (s *TestCaseService) toResponse(tc *models.TestCase) (*TestCaseResponse, error) {
	var steps []models.TestCaseStep
	if len(tc.Steps) > 0 {
		if err := json.Unmarshal(tc.Steps, &steps); err != nil {
			return nil, fmt.Errorf("failed to decode test case steps: %w", err)
		}
	}

	return &TestCaseResponse{
		ID:          tc.ID,
		ProjectID:   tc.ProjectID,
		Title:       tc.Title,
		Description: tc.Description,
		Steps:       steps,
		Priority:    tc.Priority,
		Version:     tc.Version,
		CreatedBy:   tc.CreatedBy,
		CreatedAt:   tc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tc.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func marshalSteps(steps []models.TestCaseStep) (json.RawMessage, error) {
	if len(steps) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode test case steps: %w", err)
	}
	return raw, nil
}
