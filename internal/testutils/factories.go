package testutils

import (
	"time"

	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Organization",
		Slug: "test-organization-" + id.String()[:8],
		Plan: "free",
	}
}

// WithName sets a custom name and derived slug for the organization
func (f *OrganizationFactory) WithName(name, slug string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.Slug = slug
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Email:          "user-" + id.String()[:8] + "@test.com",
		PasswordHash:   string(hash),
		Name:           "Test User",
		Role:           models.RoleTester,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Project " + id.String()[:8],
		Description:    "A test project",
	}
}

// WithOrganization sets the organization ID for the project
func (f *ProjectFactory) WithOrganization(orgID uuid.UUID) *models.Project {
	project := f.Create()
	project.OrganizationID = orgID
	return project
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// NewTestCaseFactory creates a new TestCaseFactory
func NewTestCaseFactory() *TestCaseFactory {
	return &TestCaseFactory{}
}

// Create creates a test TestCase with default values
func (f *TestCaseFactory) Create() *models.TestCase {
	id := uuid.New()
	return &models.TestCase{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   uuid.New(),
		Title:       "Test Case " + id.String()[:8],
		Description: "A test case",
		Priority:    models.PriorityMedium,
		Version:     1,
	}
}

// WithProject sets the project ID for the test case
func (f *TestCaseFactory) WithProject(projectID uuid.UUID) *models.TestCase {
	testCase := f.Create()
	testCase.ProjectID = projectID
	return testCase
}

// TestRunFactory provides methods to create test TestRun data
type TestRunFactory struct{}

// NewTestRunFactory creates a new TestRunFactory
func NewTestRunFactory() *TestRunFactory {
	return &TestRunFactory{}
}

// Create creates a test TestRun with default values
func (f *TestRunFactory) Create() *models.TestRun {
	id := uuid.New()
	return &models.TestRun{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   uuid.New(),
		Name:        "Test Run " + id.String()[:8],
		Description: "A test run",
		Status:      models.TestRunNotStarted,
	}
}

// WithProject sets the project ID for the test run
func (f *TestRunFactory) WithProject(projectID uuid.UUID) *models.TestRun {
	run := f.Create()
	run.ProjectID = projectID
	return run
}

// WithStatus sets the status for the test run
func (f *TestRunFactory) WithStatus(status models.TestRunStatus) *models.TestRun {
	run := f.Create()
	run.Status = status
	return run
}
