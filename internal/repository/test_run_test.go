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

// TestRunRepositoryTestSuite tests the TestRunRepository
type TestRunRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TestRunRepository
	orgFactory     *testutils.OrganizationFactory
	projectFactory *testutils.ProjectFactory
	runFactory     *testutils.TestRunFactory
	project        *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *TestRunRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTestRunRepository(suite.baseTestSuite.DB)
	suite.orgFactory = testutils.NewOrganizationFactory()
	suite.projectFactory = testutils.NewProjectFactory()
	suite.runFactory = testutils.NewTestRunFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TestRunRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and provides a parent project
func (suite *TestRunRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org := suite.orgFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)
	suite.project = suite.projectFactory.WithOrganization(org.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.project).Error)
}

// TearDownTest runs after each test
func (suite *TestRunRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new test run
func (suite *TestRunRepositoryTestSuite) TestCreate() {
	run := suite.runFactory.WithProject(suite.project.ID)

	err := suite.repo.Create(run)

	suite.NoError(err)
	suite.Equal(models.TestRunNotStarted, run.Status)
}

// TestGetByProjectID tests listing runs of a project, newest first
func (suite *TestRunRepositoryTestSuite) TestGetByProjectID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.runFactory.WithProject(suite.project.ID)))
	}

	runs, total, err := suite.repo.GetByProjectID(suite.project.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(runs, 2)
}

// TestDeleteIsSoft tests that deletion hides the run but keeps the row
func (suite *TestRunRepositoryTestSuite) TestDeleteIsSoft() {
	run := suite.runFactory.WithProject(suite.project.ID)
	suite.NoError(suite.repo.Create(run))

	suite.NoError(suite.repo.Delete(run.ID))

	// Invisible through the repository
	_, err := suite.repo.GetByID(run.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// The row still exists with a deletion timestamp
	var raw models.TestRun
	err = suite.baseTestSuite.DB.Unscoped().First(&raw, "id = ?", run.ID).Error
	suite.NoError(err)
	suite.True(raw.DeletedAt.Valid)
}

// TestDeletedRunExcludedFromList tests that soft-deleted runs do not count
func (suite *TestRunRepositoryTestSuite) TestDeletedRunExcludedFromList() {
	kept := suite.runFactory.WithProject(suite.project.ID)
	suite.NoError(suite.repo.Create(kept))
	deleted := suite.runFactory.WithProject(suite.project.ID)
	suite.NoError(suite.repo.Create(deleted))
	suite.NoError(suite.repo.Delete(deleted.ID))

	runs, total, err := suite.repo.GetByProjectID(suite.project.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(runs, 1)
	suite.Equal(kept.ID, runs[0].ID)
}

// TestTestRunRepositoryTestSuite runs the test suite
func TestTestRunRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TestRunRepositoryTestSuite))
}
