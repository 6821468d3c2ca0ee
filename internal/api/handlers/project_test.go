package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qualityhub-backend/internal/api/handlers"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/mocks"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// wrappedValidationError builds the error shape services return when
// validator.Struct rejects a request
func wrappedValidationError(t *testing.T) error {
	err := validator.New().Struct(struct {
		Name string `validate:"max=100"`
	}{Name: strings.Repeat("x", 200)})
	assert.Error(t, err)
	return fmt.Errorf("validation failed: %w", err)
}

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	router      *gin.Engine
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()

	handler := handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("organization_id", suite.orgID)
	})
	suite.router.POST("/projects", handler.CreateProject)
	suite.router.GET("/projects", handler.ListProjects)
	suite.router.GET("/projects/:id", handler.GetProject)
	suite.router.PUT("/projects/:id", handler.UpdateProject)
	suite.router.DELETE("/projects/:id", handler.DeleteProject)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(suite.T(), err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateProject tests creating a project through the handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	expected := &service.ProjectResponse{
		ID:             uuid.New(),
		OrganizationID: suite.orgID,
		Name:           "Billing Service",
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPost, "/projects", gin.H{"name": "Billing Service"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestCreateProjectValidationError tests that a service-side validation
// failure maps to 400, not 500
func (suite *ProjectHandlerTestSuite) TestCreateProjectValidationError() {
	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPost, "/projects", gin.H{"name": strings.Repeat("x", 200)})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateProjectConflict tests creating a project with a taken name
func (suite *ProjectHandlerTestSuite) TestCreateProjectConflict() {
	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrProjectExists).
		Times(1)

	w := suite.request(http.MethodPost, "/projects", gin.H{"name": "Billing Service"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestGetProjectNotFound tests fetching a missing project
func (suite *ProjectHandlerTestSuite) TestGetProjectNotFound() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(projectID).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	w := suite.request(http.MethodGet, "/projects/"+projectID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListProjects tests that listing is scoped to the caller's organization
func (suite *ProjectHandlerTestSuite) TestListProjects() {
	expected := &service.ProjectListResponse{
		Projects: []service.ProjectResponse{
			{ID: uuid.New(), OrganizationID: suite.orgID, Name: "Billing Service"},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		GetByOrganization(suite.orgID, 1, 20).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodGet, "/projects", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateProject tests updating a project through the handler
func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	projectID := uuid.New()
	expected := &service.ProjectResponse{
		ID:             projectID,
		OrganizationID: suite.orgID,
		Name:           "Billing Service v2",
	}

	suite.mockService.EXPECT().
		Update(projectID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPut, "/projects/"+projectID.String(), gin.H{"name": "Billing Service v2"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateProjectValidationError tests that an over-long name on update
// maps to 400, not 500
func (suite *ProjectHandlerTestSuite) TestUpdateProjectValidationError() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		Update(projectID, gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPut, "/projects/"+projectID.String(), gin.H{"name": strings.Repeat("x", 200)})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateProjectNotFound tests updating a missing project
func (suite *ProjectHandlerTestSuite) TestUpdateProjectNotFound() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		Update(projectID, gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	w := suite.request(http.MethodPut, "/projects/"+projectID.String(), gin.H{"name": "Renamed"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteProject tests deleting a project
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		Delete(projectID).
		Return(nil).
		Times(1)

	w := suite.request(http.MethodDelete, "/projects/"+projectID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
