package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	router      *gin.Engine
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()

	handler := handlers.NewUserHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("organization_id", suite.orgID)
	})
	suite.router.POST("/users", handler.CreateUser)
	suite.router.GET("/users", handler.ListUsers)
	suite.router.GET("/users/:id", handler.GetUser)
	suite.router.PUT("/users/:id", handler.UpdateUser)
	suite.router.DELETE("/users/:id", handler.DeleteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
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

// TestListUsersScopedToCallerOrganization tests that listing defaults to the
// caller's own organization
func (suite *UserHandlerTestSuite) TestListUsersScopedToCallerOrganization() {
	expected := &service.UserListResponse{
		Users:    []service.UserResponse{{ID: uuid.New(), OrganizationID: suite.orgID, Email: "a@acme.test"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		GetByOrganization(suite.orgID, 1, 20).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodGet, "/users", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestListUsersOwnOrganizationParam tests that naming the caller's own
// organization explicitly is accepted
func (suite *UserHandlerTestSuite) TestListUsersOwnOrganizationParam() {
	expected := &service.UserListResponse{
		Users:    []service.UserResponse{},
		Total:    0,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		GetByOrganization(suite.orgID, 1, 20).
		Return(expected, nil).
		Times(1)

	w := suite.request(http.MethodGet, "/users?organization_id="+suite.orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestListUsersForeignOrganizationRejected tests that a caller cannot list
// another organization's users
func (suite *UserHandlerTestSuite) TestListUsersForeignOrganizationRejected() {
	w := suite.request(http.MethodGet, "/users?organization_id="+uuid.New().String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestListUsersInvalidOrganizationParam tests a malformed organization_id
func (suite *UserHandlerTestSuite) TestListUsersInvalidOrganizationParam() {
	w := suite.request(http.MethodGet, "/users?organization_id=not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateUserConflict tests creating a user with a taken email
func (suite *UserHandlerTestSuite) TestCreateUserConflict() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrUserExists).
		Times(1)

	w := suite.request(http.MethodPost, "/users", gin.H{
		"organization_id": suite.orgID,
		"email":           "a@acme.test",
		"password":        "password123",
		"name":            "A",
		"role":            "tester",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestUpdateUserValidationError tests that a service-side validation failure
// maps to 400, not 500
func (suite *UserHandlerTestSuite) TestUpdateUserValidationError() {
	userID := uuid.New()

	suite.mockService.EXPECT().
		Update(userID, gomock.Any()).
		Return(nil, wrappedValidationError(suite.T())).
		Times(1)

	w := suite.request(http.MethodPut, "/users/"+userID.String(), gin.H{"name": "x"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteUserNotFound tests deleting a missing user
func (suite *UserHandlerTestSuite) TestDeleteUserNotFound() {
	userID := uuid.New()

	suite.mockService.EXPECT().
		Delete(userID).
		Return(apperrors.ErrUserNotFound).
		Times(1)

	w := suite.request(http.MethodDelete, "/users/"+userID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
