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

// TestResultService handles business logic for test results
type TestResultService struct {
	repo      repository.TestResultRepositoryInterface
	runRepo   repository.TestRunRepositoryInterface
	caseRepo  repository.TestCaseRepositoryInterface
	validator *validator.Validate
}

// NewTestResultService creates a new test result service
func NewTestResultService(
	repo repository.TestResultRepositoryInterface,
	runRepo repository.TestRunRepositoryInterface,
	caseRepo repository.TestCaseRepositoryInterface,
	validator *validator.Validate,
) *TestResultService {
	return &TestResultService{
		repo:      repo,
		runRepo:   runRepo,
		caseRepo:  caseRepo,
		validator: validator,
	}
}

// RecordTestResultRequest represents the request to record a result for a
// test case within a run
type RecordTestResultRequest struct {
	TestCaseID     uuid.UUID               `json:"test_case_id" validate:"required"`
	Status         models.TestResultStatus `json:"status" validate:"required"`
	Comment        string                  `json:"comment,omitempty"`
	ElapsedSeconds int                     `json:"elapsed_seconds,omitempty" validate:"omitempty,min=0"`
	Defects        []string                `json:"defects,omitempty"`
	Attachments    []string                `json:"attachments,omitempty"`
}

// UpdateTestResultRequest represents a partial update of a recorded result
type UpdateTestResultRequest struct {
	Status         *models.TestResultStatus `json:"status"`
	Comment        *string                  `json:"comment"`
	ElapsedSeconds *int                     `json:"elapsed_seconds" validate:"omitempty,min=0"`
	Defects        []string                 `json:"defects"`
	Attachments    []string                 `json:"attachments"`
}

// TestResultResponse represents the response for test result operations
type TestResultResponse struct {
	ID              uuid.UUID               `json:"id"`
	TestRunID       uuid.UUID               `json:"test_run_id"`
	TestCaseID      uuid.UUID               `json:"test_case_id"`
	TestCaseVersion int                     `json:"test_case_version"`
	Status          models.TestResultStatus `json:"status"`
	Comment         string                  `json:"comment"`
	ElapsedSeconds  int                     `json:"elapsed_seconds"`
	Defects         []string                `json:"defects"`
	Attachments     []string                `json:"attachments"`
	ExecutedBy      *uuid.UUID              `json:"executed_by,omitempty"`
	ExecutedAt      *time.Time              `json:"executed_at,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// TestResultListResponse represents a paginated list of test results
type TestResultListResponse struct {
	TestResults []TestResultResponse `json:"test_results"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Record records the outcome of a test case within a run. The test case
// version is snapshotted at recording time so later edits to the case do not
// change what was executed.
func (s *TestResultService) Record(runID uuid.UUID, executorID uuid.UUID, req *RecordTestResultRequest) (*TestResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}
	if run.Status == models.TestRunCompleted {
		return nil, apperrors.ErrRunAlreadyCompleted
	}

	testCase, err := s.caseRepo.GetByID(req.TestCaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if testCase.ProjectID != run.ProjectID {
		return nil, apperrors.NewValidationError("test_case_id", "test case belongs to a different project")
	}

	if _, err := s.repo.GetByRunAndCase(runID, req.TestCaseID); err == nil {
		return nil, apperrors.ErrTestResultExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing result: %w", err)
	}

	defects, err := marshalStringList(req.Defects)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defects: %w", err)
	}
	attachments, err := marshalStringList(req.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachments: %w", err)
	}

	now := time.Now()
	result := &models.TestResult{
		TestRunID:       runID,
		TestCaseID:      req.TestCaseID,
		TestCaseVersion: testCase.Version,
		Status:          req.Status,
		Comment:         req.Comment,
		ElapsedSeconds:  req.ElapsedSeconds,
		Defects:         defects,
		Attachments:     attachments,
		ExecutedBy:      &executorID,
		ExecutedAt:      &now,
	}

	if err := s.repo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to create test result: %w", err)
	}

	return s.toResponse(result), nil
}

// GetByTestRun retrieves results of a test run with pagination
func (s *TestResultService) GetByTestRun(runID uuid.UUID, page, pageSize int) (*TestResultListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.runRepo.GetByID(runID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}

	offset := (page - 1) * pageSize
	results, total, err := s.repo.GetByTestRunID(runID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get test results: %w", err)
	}

	responses := make([]TestResultResponse, len(results))
	for i := range results {
		responses[i] = *s.toResponse(&results[i])
	}

	return &TestResultListResponse{
		TestResults: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update applies a partial update to a recorded result and re-stamps the
// executor and execution time
func (s *TestResultService) Update(id uuid.UUID, executorID uuid.UUID, req *UpdateTestResultRequest) (*TestResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestResultNotFound
		}
		return nil, fmt.Errorf("failed to get test result: %w", err)
	}

	run, err := s.runRepo.GetByID(result.TestRunID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestRunNotFound
		}
		return nil, fmt.Errorf("failed to get test run: %w", err)
	}
	if run.Status == models.TestRunCompleted {
		return nil, apperrors.ErrRunAlreadyCompleted
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		result.Status = *req.Status
	}
	if req.Comment != nil {
		result.Comment = *req.Comment
	}
	if req.ElapsedSeconds != nil {
		result.ElapsedSeconds = *req.ElapsedSeconds
	}
	if req.Defects != nil {
		defects, err := marshalStringList(req.Defects)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal defects: %w", err)
		}
		result.Defects = defects
	}
	if req.Attachments != nil {
		attachments, err := marshalStringList(req.Attachments)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attachments: %w", err)
		}
		result.Attachments = attachments
	}

	now := time.Now()
	result.ExecutedBy = &executorID
	result.ExecutedAt = &now

	if err := s.repo.Update(result); err != nil {
		return nil, fmt.Errorf("failed to update test result: %w", err)
	}

	return s.toResponse(result), nil
}

func (s *TestResultService) toResponse(result *models.TestResult) *TestResultResponse {
	return &TestResultResponse{
		ID:              result.ID,
		TestRunID:       result.TestRunID,
		TestCaseID:      result.TestCaseID,
		TestCaseVersion: result.TestCaseVersion,
		Status:          result.Status,
		Comment:         result.Comment,
		ElapsedSeconds:  result.ElapsedSeconds,
		Defects:         unmarshalStringList(result.Defects),
		Attachments:     unmarshalStringList(result.Attachments),
		ExecutedBy:      result.ExecutedBy,
		ExecutedAt:      result.ExecutedAt,
		CreatedAt:       result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       result.UpdatedAt.Format(time.RFC3339),
	}
}

func marshalStringList(items []string) (json.RawMessage, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func unmarshalStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	return items
}
