package service_test

import (
	"testing"

	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/mocks"
	"qualityhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, suite.mockUserRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization with a derived slug
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{
		Name: "Acme QA Team",
	}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme-qa-team").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), "acme-qa-team", response.Slug)
	assert.Equal(suite.T(), "free", response.Plan)
}

// TestCreateOrganizationExplicitSlug tests creating an organization with a caller-provided slug
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationExplicitSlug() {
	req := &service.CreateOrganizationRequest{
		Name: "Acme QA Team",
		Slug: "acme",
		Plan: "enterprise",
	}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "acme", response.Slug)
	assert.Equal(suite.T(), "enterprise", response.Plan)
}

// TestCreateOrganizationValidationError tests creating an organization with validation error
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{
		Name: "", // Empty name should fail validation
	}

	response, err := suite.organizationService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateOrganizationDuplicateSlug tests creating an organization with a slug already taken
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateSlug() {
	req := &service.CreateOrganizationRequest{
		Name: "Acme QA Team",
	}

	existingOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
	}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme-qa-team").
		Return(existingOrg, nil).
		Times(1)

	response, err := suite.organizationService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

// TestGetOrganizationByID tests getting an organization by ID
func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID() {
	orgID := uuid.New()
	expectedOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: orgID,
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
		Plan: "free",
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(expectedOrg, nil).
		Times(1)

	response, err := suite.organizationService.GetByID(orgID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expectedOrg.ID, response.ID)
	assert.Equal(suite.T(), expectedOrg.Name, response.Name)
	assert.Equal(suite.T(), expectedOrg.Slug, response.Slug)
}

// TestGetOrganizationByIDNotFound tests getting an organization by ID when not found
func (suite *OrganizationServiceTestSuite) TestGetOrganizationByIDNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.GetByID(orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestGetOrganizationBySlug tests getting an organization by slug
func (suite *OrganizationServiceTestSuite) TestGetOrganizationBySlug() {
	expectedOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
	}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme-qa-team").
		Return(expectedOrg, nil).
		Times(1)

	response, err := suite.organizationService.GetBySlug("acme-qa-team")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expectedOrg.Slug, response.Slug)
	assert.Equal(suite.T(), expectedOrg.Name, response.Name)
}

// TestGetAllOrganizations tests listing organizations with pagination clamping
func (suite *OrganizationServiceTestSuite) TestGetAllOrganizations() {
	orgs := []models.Organization{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Org One", Slug: "org-one"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Org Two", Slug: "org-two"},
	}

	// Out-of-range pagination parameters fall back to page 1, page size 20
	suite.mockOrgRepo.EXPECT().
		GetAll(20, 0).
		Return(orgs, int64(2), nil).
		Times(1)

	response, err := suite.organizationService.GetAll(0, 500)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Organizations, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	existingOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: orgID,
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
		Plan: "free",
	}

	newName := "Acme Quality"
	newPlan := "enterprise"
	req := &service.UpdateOrganizationRequest{
		Name: &newName,
		Plan: &newPlan,
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(existingOrg, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Update(orgID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), newName, response.Name)
	assert.Equal(suite.T(), newPlan, response.Plan)
	// The slug is immutable on update
	assert.Equal(suite.T(), "acme-qa-team", response.Slug)
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()
	existingOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: orgID,
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(existingOrg, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	err := suite.organizationService.Delete(orgID)

	assert.NoError(suite.T(), err)
}

// TestDeleteOrganizationNotFound tests deleting a missing organization
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.organizationService.Delete(orgID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestGetOrganizationUsers tests listing members of an organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationUsers() {
	orgID := uuid.New()
	existingOrg := &models.Organization{
		BaseModel: models.BaseModel{
			ID: orgID,
		},
		Name: "Acme QA Team",
		Slug: "acme-qa-team",
	}
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID, Email: "a@acme.test", Name: "Alice", Role: models.RoleOrgAdmin},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID, Email: "b@acme.test", Name: "Bob", Role: models.RoleTester},
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(existingOrg, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByOrganizationID(orgID, 20, 0).
		Return(users, int64(2), nil).
		Times(1)

	response, err := suite.organizationService.GetUsers(orgID, 1, 20)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Users, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
