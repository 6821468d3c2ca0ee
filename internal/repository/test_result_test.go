//go:build integration
// +build integration

package repository

import (
	"testing"

	"qualityhub-backend/internal/database/models"
	"qualityhub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestResultRepositoryTestSuite tests the TestResultRepository
type TestResultRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TestResultRepository
	orgFactory     *testutils.OrganizationFactory
	projectFactory *testutils.ProjectFactory
	caseFactory    *testutils.TestCaseFactory
	runFactory     *testutils.TestRunFactory
	run            *models.TestRun
	testCase       *models.TestCase
}

// SetupSuite runs before all tests in the suite
func (suite *TestResultRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTestResultRepository(suite.baseTestSuite.DB)
	suite.orgFactory = testutils.NewOrganizationFactory()
	suite.projectFactory = testutils.NewProjectFactory()
	suite.caseFactory = testutils.NewTestCaseFactory()
	suite.runFactory = testutils.NewTestRunFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TestResultRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and provides a run and a case to record against
func (suite *TestResultRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := suite.orgFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)
	project := suite.projectFactory.WithOrganization(org.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(project).Error)
	suite.run = suite.runFactory.WithProject(project.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.run).Error)
	suite.testCase = suite.caseFactory.WithProject(project.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.testCase).Error)
}

// TearDownTest runs after each test
func (suite *TestResultRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TestResultRepositoryTestSuite) newResult(status models.TestResultStatus) *models.TestResult {
	return &models.TestResult{
		TestRunID:       suite.run.ID,
		TestCaseID:      suite.testCase.ID,
		TestCaseVersion: suite.testCase.Version,
		Status:          status,
	}
}

// TestCreate tests recording a result
func (suite *TestResultRepositoryTestSuite) TestCreate() {
	result := suite.newResult(models.ResultPassed)

	err := suite.repo.Create(result)

	suite.NoError(err)
	suite.Equal(1, result.TestCaseVersion)
}

// TestUniquePerRunAndCase tests that the (run, case) unique index is enforced
func (suite *TestResultRepositoryTestSuite) TestUniquePerRunAndCase() {
	suite.NoError(suite.repo.Create(suite.newResult(models.ResultPassed)))

	err := suite.repo.Create(suite.newResult(models.ResultFailed))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByRunAndCase tests looking up the result recorded for a pair
func (suite *TestResultRepositoryTestSuite) TestGetByRunAndCase() {
	created := suite.newResult(models.ResultBlocked)
	suite.NoError(suite.repo.Create(created))

	retrieved, err := suite.repo.GetByRunAndCase(suite.run.ID, suite.testCase.ID)

	suite.NoError(err)
	suite.Equal(created.ID, retrieved.ID)
	suite.Equal(models.ResultBlocked, retrieved.Status)
}

// TestGetByRunAndCaseNotFound tests looking up a pair with no result yet
func (suite *TestResultRepositoryTestSuite) TestGetByRunAndCaseNotFound() {
	result, err := suite.repo.GetByRunAndCase(suite.run.ID, suite.testCase.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(result)
}

// TestGetByTestRunID tests listing results of a run with pagination
func (suite *TestResultRepositoryTestSuite) TestGetByTestRunID() {
	suite.NoError(suite.repo.Create(suite.newResult(models.ResultPassed)))

	results, total, err := suite.repo.GetByTestRunID(suite.run.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(results, 1)
}

// TestUpdate tests updating a recorded result
func (suite *TestResultRepositoryTestSuite) TestUpdate() {
	result := suite.newResult(models.ResultRetest)
	suite.NoError(suite.repo.Create(result))

	result.Status = models.ResultPassed
	result.Comment = "passed on retest"
	suite.NoError(suite.repo.Update(result))

	retrieved, err := suite.repo.GetByID(result.ID)
	suite.NoError(err)
	suite.Equal(models.ResultPassed, retrieved.Status)
	suite.Equal("passed on retest", retrieved.Comment)
}

// TestResultRepositoryIntegration runs the test suite
func TestResultRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(TestResultRepositoryTestSuite))
}
