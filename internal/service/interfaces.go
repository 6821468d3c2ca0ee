package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetBySlug(slug string) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
	GetUsers(id uuid.UUID, page, pageSize int) (*UserListResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// TestCaseServiceInterface defines the interface for test case service
type TestCaseServiceInterface interface {
	Create(req *CreateTestCaseRequest) (*TestCaseResponse, error)
	GetByID(id uuid.UUID) (*TestCaseResponse, error)
	GetByProject(projectID uuid.UUID, page, pageSize int) (*TestCaseListResponse, error)
	Update(id uuid.UUID, req *UpdateTestCaseRequest) (*TestCaseResponse, error)
	Delete(id uuid.UUID) error
}

// TestPlanServiceInterface defines the interface for test plan service
type TestPlanServiceInterface interface {
	Create(req *CreateTestPlanRequest) (*TestPlanResponse, error)
	GetByID(id uuid.UUID) (*TestPlanResponse, error)
	GetByProject(projectID uuid.UUID, page, pageSize int) (*TestPlanListResponse, error)
	Update(id uuid.UUID, req *UpdateTestPlanRequest) (*TestPlanResponse, error)
	Delete(id uuid.UUID) error
}

// TestRunServiceInterface defines the interface for test run service
type TestRunServiceInterface interface {
	Create(projectID uuid.UUID, req *CreateTestRunRequest) (*TestRunResponse, error)
	GetByID(id uuid.UUID) (*TestRunResponse, error)
	GetByProject(projectID uuid.UUID, page, pageSize int) (*TestRunListResponse, error)
	Update(id uuid.UUID, req *UpdateTestRunRequest) (*TestRunResponse, error)
	Delete(id uuid.UUID) error
	Start(id uuid.UUID) (*TestRunResponse, error)
	Complete(id uuid.UUID) (*TestRunResponse, error)
}

// TestResultServiceInterface defines the interface for test result service
type TestResultServiceInterface interface {
	Record(runID uuid.UUID, executorID uuid.UUID, req *RecordTestResultRequest) (*TestResultResponse, error)
	GetByTestRun(runID uuid.UUID, page, pageSize int) (*TestResultListResponse, error)
	Update(id uuid.UUID, executorID uuid.UUID, req *UpdateTestResultRequest) (*TestResultResponse, error)
}

// GenerationServiceInterface defines the interface for the AI generation service
type GenerationServiceInterface interface {
	GenerateTests(ctx context.Context, req *GenerateTestsRequest) (*GenerateTestsResponse, error)
	GenerateBDD(ctx context.Context, req *GenerateBDDRequest) (*GenerateBDDResponse, error)
}
