package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qualityhub-backend/internal/api/handlers"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/mocks"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TestPlanHandlerTestSuite defines the test suite for TestPlanHandler
type TestPlanHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTestPlanServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TestPlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTestPlanServiceInterface(suite.ctrl)

	handler := handlers.NewTestPlanHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/test-plans", handler.CreateTestPlan)
	suite.router.GET("/test-plans/:id", handler.GetTestPlan)
	suite.router.PUT("/test-plans/:id", handler.UpdateTestPlan)
	suite.router.DELETE("/test-plans/:id", handler.DeleteTestPlan)
	suite.router.GET("/projects/:id/test-plans", handler.ListTestPlans)
}

// TearDownTest cleans up after each test
func (suite *TestPlanHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestPlanHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
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

// TestCreateTestPlan tests creating a test plan through the handler
func (suite *TestPlanHandlerTestSuite) TestCreateTestPlan() {
	projectID := uuid.New()
	expected := &service.TestPlanResponse{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Release 1.4",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPost, "/test-plans", gin.H{
		"project_id": projectID.String(),
		"name":       "Release 1.4",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestCreateTestPlanValidationError tests that a service-side validation
// failure maps to 400, not 500
func (suite *TestPlanHandlerTestSuite) TestCreateTestPlanValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPost, "/test-plans", gin.H{
		"project_id": uuid.New().String(),
		"name":       strings.Repeat("x", 300),
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTestPlanProjectNotFound tests creating a plan in a missing project
func (suite *TestPlanHandlerTestSuite) TestCreateTestPlanProjectNotFound() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	w := suite.request(http.MethodPost, "/test-plans", gin.H{
		"project_id": uuid.New().String(),
		"name":       "Release 1.4",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateTestPlanValidationError tests that an over-long name on update
// maps to 400, not 500
func (suite *TestPlanHandlerTestSuite) TestUpdateTestPlanValidationError() {
	planID := uuid.New()

	suite.mockService.EXPECT().
		Update(planID, gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPut, "/test-plans/"+planID.String(), gin.H{"name": strings.Repeat("x", 300)})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateTestPlanNotFound tests updating a missing plan
func (suite *TestPlanHandlerTestSuite) TestUpdateTestPlanNotFound() {
	planID := uuid.New()

	suite.mockService.EXPECT().
		Update(planID, gomock.Any()).
		Return(nil, apperrors.ErrTestPlanNotFound).
		Times(1)

	w := suite.request(http.MethodPut, "/test-plans/"+planID.String(), gin.H{"name": "Renamed"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListTestPlans tests the per-project paginated list
func (suite *TestPlanHandlerTestSuite) TestListTestPlans() {
	projectID := uuid.New()
	expected := &service.TestPlanListResponse{
		TestPlans: []service.TestPlanResponse{
			{ID: uuid.New(), ProjectID: projectID, Name: "Release 1.4"},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		GetByProject(projectID, 1, 20).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodGet, "/projects/"+projectID.String()+"/test-plans", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteTestPlan tests deleting a test plan
func (suite *TestPlanHandlerTestSuite) TestDeleteTestPlan() {
	planID := uuid.New()

	suite.mockService.EXPECT().
		Delete(planID).
		Return(nil).
		Times(1)

	w := suite.request(http.MethodDelete, "/test-plans/"+planID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestTestPlanHandlerTestSuite runs the test suite
func TestTestPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TestPlanHandlerTestSuite))
}
