package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GenerationService proxies generation requests to the AI service and
// optionally persists generated test cases into a project
type GenerationService struct {
	cfg         *config.Config
	caseService TestCaseServiceInterface
	httpClient  *http.Client
	validator   *validator.Validate
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	cfg *config.Config,
	caseService TestCaseServiceInterface,
	validator *validator.Validate,
) *GenerationService {
	timeout := time.Duration(cfg.AIServiceTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GenerationService{
		cfg:         cfg,
		caseService: caseService,
		httpClient:  &http.Client{Timeout: timeout},
		validator:   validator,
	}
}

// GenerateTestsRequest represents the request to generate test cases from a
// requirement description. When ProjectID is set the generated cases are
// persisted into that project.
type GenerateTestsRequest struct {
	Description string     `json:"description" validate:"required,min=10,max=10000"`
	Context     string     `json:"context,omitempty" validate:"omitempty,max=5000"`
	TestType    string     `json:"test_type,omitempty" validate:"omitempty,oneof=functional edge_case negative all"`
	MaxTests    int        `json:"max_tests,omitempty" validate:"omitempty,min=1,max=20"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// GeneratedTestStep is a single step of a generated test case
type GeneratedTestStep struct {
	StepNumber     int    `json:"step_number"`
	Action         string `json:"action"`
	ExpectedResult string `json:"expected_result"`
}

// GeneratedTestCase is a test case produced by the AI service
type GeneratedTestCase struct {
	Title          string              `json:"title"`
	Preconditions  string              `json:"preconditions,omitempty"`
	Steps          []GeneratedTestStep `json:"steps"`
	ExpectedResult string              `json:"expected_result"`
	Priority       string              `json:"priority"`
	TestType       string              `json:"test_type"`
}

// GenerateTestsResponse represents the response of the test generation
// endpoint, including the IDs of any persisted test cases
type GenerateTestsResponse struct {
	TestCases        []GeneratedTestCase    `json:"test_cases"`
	Metadata         map[string]interface{} `json:"metadata"`
	SavedTestCaseIDs []uuid.UUID            `json:"saved_test_case_ids,omitempty"`
}

// GenerateBDDRequest represents the request to generate BDD scenarios in
// Gherkin format
type GenerateBDDRequest struct {
	FeatureDescription string `json:"feature_description" validate:"required,min=10,max=10000"`
	Context            string `json:"context,omitempty" validate:"omitempty,max=5000"`
	MaxScenarios       int    `json:"max_scenarios,omitempty" validate:"omitempty,min=1,max=10"`
	IncludeExamples    *bool  `json:"include_examples,omitempty"`
}

// BDDScenario is a single generated Gherkin scenario
type BDDScenario struct {
	Name     string                   `json:"name"`
	Given    []string                 `json:"given"`
	When     []string                 `json:"when"`
	Then     []string                 `json:"then"`
	Examples []map[string]interface{} `json:"examples,omitempty"`
}

// GenerateBDDResponse represents the response of the BDD generation endpoint
type GenerateBDDResponse struct {
	FeatureName        string        `json:"feature_name"`
	FeatureDescription string        `json:"feature_description"`
	Scenarios          []BDDScenario `json:"scenarios"`
	Gherkin            string        `json:"gherkin"`
}

// upstream wire types exclude the persistence fields
type upstreamTestsRequest struct {
	Description string `json:"description"`
	Context     string `json:"context,omitempty"`
	TestType    string `json:"test_type"`
	MaxTests    int    `json:"max_tests"`
	Priority    string `json:"priority,omitempty"`
}

type upstreamBDDRequest struct {
	FeatureDescription string `json:"feature_description"`
	Context            string `json:"context,omitempty"`
	MaxScenarios       int    `json:"max_scenarios"`
	IncludeExamples    bool   `json:"include_examples"`
}

// GenerateTests asks the AI service to generate test cases from a
// requirement description and persists them when a project is given
func (s *GenerationService) GenerateTests(ctx context.Context, req *GenerateTestsRequest) (*GenerateTestsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	payload := upstreamTestsRequest{
		Description: req.Description,
		Context:     req.Context,
		TestType:    req.TestType,
		MaxTests:    req.MaxTests,
		Priority:    req.Priority,
	}
	if payload.TestType == "" {
		payload.TestType = "all"
	}
	if payload.MaxTests == 0 {
		payload.MaxTests = 5
	}

	var result GenerateTestsResponse
	if err := s.post(ctx, "/generate/tests", payload, &result); err != nil {
		return nil, err
	}
	if result.Metadata == nil {
		result.Metadata = map[string]interface{}{}
	}

	if req.ProjectID != nil {
		ids, err := s.saveGeneratedCases(*req.ProjectID, req.CreatedBy, result.TestCases)
		if err != nil {
			return nil, err
		}
		result.SavedTestCaseIDs = ids
	}

	return &result, nil
}

// GenerateBDD asks the AI service to generate Gherkin scenarios from a
// feature description
func (s *GenerationService) GenerateBDD(ctx context.Context, req *GenerateBDDRequest) (*GenerateBDDResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	payload := upstreamBDDRequest{
		FeatureDescription: req.FeatureDescription,
		Context:            req.Context,
		MaxScenarios:       req.MaxScenarios,
		IncludeExamples:    true,
	}
	if payload.MaxScenarios == 0 {
		payload.MaxScenarios = 3
	}
	if req.IncludeExamples != nil {
		payload.IncludeExamples = *req.IncludeExamples
	}

	var result GenerateBDDResponse
	if err := s.post(ctx, "/generate/bdd", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// post sends a JSON request to the AI service and decodes the response.
// Transport failures and non-2xx upstream statuses both surface as
// ErrGenerationFailed so handlers can map them to a gateway error.
func (s *GenerationService) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode generation request: %w", err)
	}

	endpoint := strings.TrimRight(s.cfg.AIServiceURL, "/") + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.cfg.AIServiceAPIKey != "" {
		httpReq.Header.Set("X-API-Key", s.cfg.AIServiceAPIKey)
	}

	log := logger.WithContext(ctx).WithField("endpoint", endpoint)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("AI service request failed")
		return fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.WithField("status", resp.StatusCode).Error("AI service returned an error")
		return fmt.Errorf("%w: status=%d body=%s", apperrors.ErrGenerationFailed, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrGenerationFailed, err)
	}
	return nil
}

// saveGeneratedCases persists generated cases through the test case service
// so project checks and versioning apply
func (s *GenerationService) saveGeneratedCases(projectID uuid.UUID, createdBy *uuid.UUID, cases []GeneratedTestCase) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(cases))
	for _, gen := range cases {
		steps := make([]models.TestCaseStep, len(gen.Steps))
		for i, step := range gen.Steps {
			steps[i] = models.TestCaseStep{
				Action:   step.Action,
				Expected: step.ExpectedResult,
			}
		}

		description := gen.Preconditions
		if gen.ExpectedResult != "" {
			if description != "" {
				description += "\n\n"
			}
			description += "Expected result: " + gen.ExpectedResult
		}

		created, err := s.caseService.Create(&CreateTestCaseRequest{
			ProjectID:   projectID,
			Title:       gen.Title,
			Description: description,
			Steps:       steps,
			Priority:    gen.Priority,
			CreatedBy:   createdBy,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save generated test case: %w", err)
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}
