package repository

import (
	"time"

	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// RefreshTokenRepositoryInterface defines the interface for refresh token repository operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByToken(token string) (*models.RefreshToken, error)
	Revoke(id uuid.UUID, at time.Time) error
	RevokeAllForUser(userID uuid.UUID, at time.Time) error
	DeleteExpired(before time.Time) (int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(orgID uuid.UUID, name string) (*models.Project, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	Create(testCase *models.TestCase) error
	GetByID(id uuid.UUID) (*models.TestCase, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestCase, int64, error)
	Update(testCase *models.TestCase) error
	Delete(id uuid.UUID) error
}

// TestPlanRepositoryInterface defines the interface for test plan repository operations
type TestPlanRepositoryInterface interface {
	Create(plan *models.TestPlan) error
	GetByID(id uuid.UUID) (*models.TestPlan, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestPlan, int64, error)
	Update(plan *models.TestPlan) error
	Delete(id uuid.UUID) error
}

// TestRunRepositoryInterface defines the interface for test run repository operations
type TestRunRepositoryInterface interface {
	Create(run *models.TestRun) error
	GetByID(id uuid.UUID) (*models.TestRun, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.TestRun, int64, error)
	Update(run *models.TestRun) error
	Delete(id uuid.UUID) error
}

// TestResultRepositoryInterface defines the interface for test result repository operations
type TestResultRepositoryInterface interface {
	Create(result *models.TestResult) error
	GetByID(id uuid.UUID) (*models.TestResult, error)
	GetByRunAndCase(runID, caseID uuid.UUID) (*models.TestResult, error)
	GetByTestRunID(runID uuid.UUID, limit, offset int) ([]models.TestResult, int64, error)
	Update(result *models.TestResult) error
	Delete(id uuid.UUID) error
}
