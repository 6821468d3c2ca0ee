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

// TestResultServiceTestSuite defines the test suite for TestResultService
type TestResultServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockResultRepo    *mocks.MockTestResultRepositoryInterface
	mockRunRepo       *mocks.MockTestRunRepositoryInterface
	mockCaseRepo      *mocks.MockTestCaseRepositoryInterface
	testResultService *service.TestResultService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TestResultServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResultRepo = mocks.NewMockTestResultRepositoryInterface(suite.ctrl)
	suite.mockRunRepo = mocks.NewMockTestRunRepositoryInterface(suite.ctrl)
	suite.mockCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.testResultService = service.NewTestResultService(suite.mockResultRepo, suite.mockRunRepo, suite.mockCaseRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TestResultServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestResultServiceTestSuite) activeRun(projectID uuid.UUID) *models.TestRun {
	return &models.TestRun{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		Name:      "Release 1.4 regression",
		Status:    models.TestRunInProgress,
	}
}

// TestRecordTestResult tests recording a result and snapshotting the case version
func (suite *TestResultServiceTestSuite) TestRecordTestResult() {
	projectID := uuid.New()
	run := suite.activeRun(projectID)
	executorID := uuid.New()
	testCase := &models.TestCase{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		Title:     "Login with valid credentials",
		Version:   3,
	}

	req := &service.RecordTestResultRequest{
		TestCaseID:     testCase.ID,
		Status:         models.ResultPassed,
		Comment:        "Worked on first attempt",
		ElapsedSeconds: 42,
		Defects:        []string{"QA-101"},
	}

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		GetByID(testCase.ID).
		Return(testCase, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByRunAndCase(run.ID, testCase.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockResultRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.testResultService.Record(run.ID, executorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.ResultPassed, response.Status)
	assert.Equal(suite.T(), 3, response.TestCaseVersion)
	assert.Equal(suite.T(), []string{"QA-101"}, response.Defects)
	assert.NotNil(suite.T(), response.ExecutedBy)
	assert.Equal(suite.T(), executorID, *response.ExecutedBy)
	assert.NotNil(suite.T(), response.ExecutedAt)
}

// TestRecordTestResultInvalidStatus tests recording with an unknown status
func (suite *TestResultServiceTestSuite) TestRecordTestResultInvalidStatus() {
	req := &service.RecordTestResultRequest{
		TestCaseID: uuid.New(),
		Status:     models.TestResultStatus("exploded"),
	}

	response, err := suite.testResultService.Record(uuid.New(), uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestRecordTestResultCompletedRun tests recording into a completed run
func (suite *TestResultServiceTestSuite) TestRecordTestResultCompletedRun() {
	run := suite.activeRun(uuid.New())
	run.Status = models.TestRunCompleted

	req := &service.RecordTestResultRequest{
		TestCaseID: uuid.New(),
		Status:     models.ResultFailed,
	}

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	response, err := suite.testResultService.Record(run.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRunAlreadyCompleted)
}

// TestRecordTestResultCaseFromOtherProject tests recording a case from a different project
func (suite *TestResultServiceTestSuite) TestRecordTestResultCaseFromOtherProject() {
	run := suite.activeRun(uuid.New())
	testCase := &models.TestCase{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: uuid.New(), // different project
		Title:     "Foreign case",
		Version:   1,
	}

	req := &service.RecordTestResultRequest{
		TestCaseID: testCase.ID,
		Status:     models.ResultPassed,
	}

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		GetByID(testCase.ID).
		Return(testCase, nil).
		Times(1)

	response, err := suite.testResultService.Record(run.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRecordTestResultDuplicate tests recording a second result for the same case in a run
func (suite *TestResultServiceTestSuite) TestRecordTestResultDuplicate() {
	projectID := uuid.New()
	run := suite.activeRun(projectID)
	testCase := &models.TestCase{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		Title:     "Login with valid credentials",
		Version:   1,
	}

	req := &service.RecordTestResultRequest{
		TestCaseID: testCase.ID,
		Status:     models.ResultRetest,
	}

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	suite.mockCaseRepo.EXPECT().
		GetByID(testCase.ID).
		Return(testCase, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByRunAndCase(run.ID, testCase.ID).
		Return(&models.TestResult{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.testResultService.Record(run.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTestResultExists)
}

// TestUpdateTestResult tests updating a recorded result
func (suite *TestResultServiceTestSuite) TestUpdateTestResult() {
	run := suite.activeRun(uuid.New())
	executorID := uuid.New()
	existing := &models.TestResult{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		TestRunID:       run.ID,
		TestCaseID:      uuid.New(),
		TestCaseVersion: 2,
		Status:          models.ResultFailed,
	}

	newStatus := models.ResultPassed
	newComment := "Passes after the hotfix"
	req := &service.UpdateTestResultRequest{
		Status:  &newStatus,
		Comment: &newComment,
	}

	suite.mockResultRepo.EXPECT().
		GetByID(existing.ID).
		Return(existing, nil).
		Times(1)

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.testResultService.Update(existing.ID, executorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.ResultPassed, response.Status)
	assert.Equal(suite.T(), newComment, response.Comment)
	// The version snapshot never changes on update
	assert.Equal(suite.T(), 2, response.TestCaseVersion)
	assert.Equal(suite.T(), executorID, *response.ExecutedBy)
}

// TestUpdateTestResultCompletedRun tests updating a result of a completed run
func (suite *TestResultServiceTestSuite) TestUpdateTestResultCompletedRun() {
	run := suite.activeRun(uuid.New())
	run.Status = models.TestRunCompleted
	existing := &models.TestResult{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TestRunID:  run.ID,
		TestCaseID: uuid.New(),
		Status:     models.ResultPassed,
	}

	newComment := "Too late"
	req := &service.UpdateTestResultRequest{Comment: &newComment}

	suite.mockResultRepo.EXPECT().
		GetByID(existing.ID).
		Return(existing, nil).
		Times(1)

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	response, err := suite.testResultService.Update(existing.ID, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRunAlreadyCompleted)
}

// TestGetResultsByTestRun tests listing results of a run
func (suite *TestResultServiceTestSuite) TestGetResultsByTestRun() {
	run := suite.activeRun(uuid.New())
	results := []models.TestResult{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TestRunID: run.ID, TestCaseID: uuid.New(), Status: models.ResultPassed},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TestRunID: run.ID, TestCaseID: uuid.New(), Status: models.ResultBlocked},
	}

	suite.mockRunRepo.EXPECT().
		GetByID(run.ID).
		Return(run, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByTestRunID(run.ID, 20, 0).
		Return(results, int64(2), nil).
		Times(1)

	response, err := suite.testResultService.GetByTestRun(run.ID, 1, 20)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.TestResults, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	// Empty jsonb columns come back as empty slices, not nil
	assert.Equal(suite.T(), []string{}, response.TestResults[0].Defects)
	assert.Equal(suite.T(), []string{}, response.TestResults[0].Attachments)
}

// TestGetResultsByTestRunNotFound tests listing results of a missing run
func (suite *TestResultServiceTestSuite) TestGetResultsByTestRunNotFound() {
	runID := uuid.New()

	suite.mockRunRepo.EXPECT().
		GetByID(runID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.testResultService.GetByTestRun(runID, 1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTestRunNotFound)
}

// TestTestResultServiceTestSuite runs the test suite
func TestTestResultServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestResultServiceTestSuite))
}
