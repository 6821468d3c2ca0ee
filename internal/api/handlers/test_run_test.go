package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"qualityhub-backend/internal/api/handlers"
	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/mocks"
	"qualityhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TestRunHandlerTestSuite defines the test suite for TestRunHandler
type TestRunHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTestRunServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TestRunHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTestRunServiceInterface(suite.ctrl)

	handler := handlers.NewTestRunHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/projects/:id/runs", handler.CreateTestRun)
	suite.router.GET("/projects/:id/runs", handler.ListTestRuns)
	suite.router.GET("/runs/:id", handler.GetTestRun)
	suite.router.PUT("/runs/:id", handler.UpdateTestRun)
	suite.router.DELETE("/runs/:id", handler.DeleteTestRun)
	suite.router.POST("/runs/:id/start", handler.StartTestRun)
	suite.router.POST("/runs/:id/complete", handler.CompleteTestRun)
}

// TearDownTest cleans up after each test
func (suite *TestRunHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestRunHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
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

// TestCreateTestRun tests creating a test run through the handler
func (suite *TestRunHandlerTestSuite) TestCreateTestRun() {
	projectID := uuid.New()
	expected := &service.TestRunResponse{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Release 1.4 regression",
		Status:    models.TestRunNotStarted,
	}

	suite.mockService.EXPECT().
		Create(projectID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPost, "/projects/"+projectID.String()+"/runs", gin.H{
		"name": "Release 1.4 regression",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TestRunResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), expected.ID, got.ID)
	assert.Equal(suite.T(), models.TestRunNotStarted, got.Status)
}

// TestCreateTestRunInvalidProjectID tests creating a run with a malformed project ID
func (suite *TestRunHandlerTestSuite) TestCreateTestRunInvalidProjectID() {
	w := suite.request(http.MethodPost, "/projects/not-a-uuid/runs", gin.H{
		"name": "Release 1.4 regression",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTestRunInvalidJSON tests creating a run with a malformed body
func (suite *TestRunHandlerTestSuite) TestCreateTestRunInvalidJSON() {
	projectID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.String()+"/runs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTestRunProjectNotFound tests creating a run in a missing project
func (suite *TestRunHandlerTestSuite) TestCreateTestRunProjectNotFound() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		Create(projectID, gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	w := suite.request(http.MethodPost, "/projects/"+projectID.String()+"/runs", gin.H{
		"name": "Orphan run",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateTestRunPlanMismatch tests the validation error for a foreign test plan
func (suite *TestRunHandlerTestSuite) TestCreateTestRunPlanMismatch() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		Create(projectID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("test_plan_id", "test plan belongs to a different project")).
		Times(1)

	w := suite.request(http.MethodPost, "/projects/"+projectID.String()+"/runs", gin.H{
		"name":         "Cross-project run",
		"test_plan_id": uuid.New().String(),
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateTestRunValidationError tests that a service-side validation
// failure on update maps to 400, not 500
func (suite *TestRunHandlerTestSuite) TestUpdateTestRunValidationError() {
	runID := uuid.New()

	suite.mockService.EXPECT().
		Update(runID, gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPut, "/runs/"+runID.String(), gin.H{"name": "x"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetTestRunNotFound tests fetching a missing run
func (suite *TestRunHandlerTestSuite) TestGetTestRunNotFound() {
	runID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(runID).
		Return(nil, apperrors.ErrTestRunNotFound).
		Times(1)

	w := suite.request(http.MethodGet, "/runs/"+runID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestStartCompletedRunConflict tests that restarting a completed run yields 409
func (suite *TestRunHandlerTestSuite) TestStartCompletedRunConflict() {
	runID := uuid.New()

	suite.mockService.EXPECT().
		Start(runID).
		Return(nil, apperrors.ErrRunAlreadyCompleted).
		Times(1)

	w := suite.request(http.MethodPost, "/runs/"+runID.String()+"/start", nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestStartTestRun tests the happy path of starting a run
func (suite *TestRunHandlerTestSuite) TestStartTestRun() {
	runID := uuid.New()
	expected := &service.TestRunResponse{
		ID:     runID,
		Name:   "Release 1.4 regression",
		Status: models.TestRunInProgress,
	}

	suite.mockService.EXPECT().
		Start(runID).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPost, "/runs/"+runID.String()+"/start", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TestRunResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.TestRunInProgress, got.Status)
}

// TestCompleteTestRun tests the happy path of completing a run
func (suite *TestRunHandlerTestSuite) TestCompleteTestRun() {
	runID := uuid.New()
	expected := &service.TestRunResponse{
		ID:     runID,
		Name:   "Release 1.4 regression",
		Status: models.TestRunCompleted,
	}

	suite.mockService.EXPECT().
		Complete(runID).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodPost, "/runs/"+runID.String()+"/complete", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteTestRun tests deleting a run
func (suite *TestRunHandlerTestSuite) TestDeleteTestRun() {
	runID := uuid.New()

	suite.mockService.EXPECT().
		Delete(runID).
		Return(nil).
		Times(1)

	w := suite.request(http.MethodDelete, "/runs/"+runID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteTestRunTwice tests that a second delete of the same run yields 404
func (suite *TestRunHandlerTestSuite) TestDeleteTestRunTwice() {
	runID := uuid.New()

	suite.mockService.EXPECT().
		Delete(runID).
		Return(apperrors.ErrTestRunNotFound).
		Times(1)

	w := suite.request(http.MethodDelete, "/runs/"+runID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListTestRuns tests listing runs of a project
func (suite *TestRunHandlerTestSuite) TestListTestRuns() {
	projectID := uuid.New()
	expected := &service.TestRunListResponse{
		TestRuns: []service.TestRunResponse{
			{ID: uuid.New(), ProjectID: projectID, Name: "Run A", Status: models.TestRunNotStarted},
		},
		Total:    1,
		Page:     2,
		PageSize: 10,
	}

	suite.mockService.EXPECT().
		GetByProject(projectID, 2, 10).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodGet, "/projects/"+projectID.String()+"/runs?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TestRunListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.TestRuns, 1)
	assert.Equal(suite.T(), int64(1), got.Total)
}

// TestTestRunHandlerTestSuite runs the test suite
func TestTestRunHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TestRunHandlerTestSuite))
}
