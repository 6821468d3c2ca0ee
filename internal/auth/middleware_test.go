package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qualityhub-backend/internal/auth"
	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/database/models"
	"qualityhub-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// AuthMiddlewareTestSuite defines the test suite for AuthMiddleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockOrgRepo   *mocks.MockOrganizationRepositoryInterface
	mockTokenRepo *mocks.MockRefreshTokenRepositoryInterface
	authService   *auth.AuthService
	middleware    *auth.AuthMiddleware
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockTokenRepo = mocks.NewMockRefreshTokenRepositoryInterface(suite.ctrl)

	cfg := &config.Config{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		RefreshTokenTTLHours:  168,
	}
	suite.authService = auth.NewAuthService(cfg, suite.mockUserRepo, suite.mockOrgRepo, suite.mockTokenRepo, validator.New())
	suite.middleware = auth.NewAuthMiddleware(suite.authService)
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// tokenForRole logs in a user with the given role and returns their access token
func (suite *AuthMiddlewareTestSuite) tokenForRole(role models.UserRole) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(suite.T(), err)
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Email:          "user@acme.test",
		PasswordHash:   string(hash),
		Name:           "User",
		Role:           role,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})
	assert.NoError(suite.T(), err)
	return response.AccessToken
}

func (suite *AuthMiddlewareTestSuite) newRouter(perms ...auth.Permission) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{suite.middleware.RequireAuth()}
	if len(perms) > 0 {
		handlers = append(handlers, suite.middleware.RequirePermissions(perms...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/protected", handlers...)
	return router
}

func (suite *AuthMiddlewareTestSuite) request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestMissingAuthorizationHeader tests that a missing header yields 401
func (suite *AuthMiddlewareTestSuite) TestMissingAuthorizationHeader() {
	router := suite.newRouter()

	w := suite.request(router, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestMalformedAuthorizationHeader tests that a non-Bearer header yields 401
func (suite *AuthMiddlewareTestSuite) TestMalformedAuthorizationHeader() {
	router := suite.newRouter()

	w := suite.request(router, "Basic dXNlcjpwYXNz")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestInvalidToken tests that a garbage token yields 401
func (suite *AuthMiddlewareTestSuite) TestInvalidToken() {
	router := suite.newRouter()

	w := suite.request(router, "Bearer not-a-jwt")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestValidToken tests that a valid token reaches the handler
func (suite *AuthMiddlewareTestSuite) TestValidToken() {
	token := suite.tokenForRole(models.RoleViewer)
	router := suite.newRouter()

	w := suite.request(router, "Bearer "+token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestRequestContextCarriesEmail tests that the authenticated user's email is
// propagated to the request context for downstream logging
func (suite *AuthMiddlewareTestSuite) TestRequestContextCarriesEmail() {
	token := suite.tokenForRole(models.RoleViewer)

	router := gin.New()
	var gotEmail string
	router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		gotEmail, _ = c.Request.Context().Value("email").(string)
		c.Status(http.StatusOK)
	})

	w := suite.request(router, "Bearer "+token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "user@acme.test", gotEmail)
}

// TestPermissionGranted tests that a role holding the permission passes
func (suite *AuthMiddlewareTestSuite) TestPermissionGranted() {
	token := suite.tokenForRole(models.RoleTester)
	router := suite.newRouter(auth.PermExecuteTestRun)

	w := suite.request(router, "Bearer "+token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestPermissionDenied tests that a valid token without the permission yields 403
func (suite *AuthMiddlewareTestSuite) TestPermissionDenied() {
	token := suite.tokenForRole(models.RoleViewer)
	router := suite.newRouter(auth.PermCreateTestCase)

	w := suite.request(router, "Bearer "+token)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestMultiplePermissionsAllRequired tests that every listed permission must be held
func (suite *AuthMiddlewareTestSuite) TestMultiplePermissionsAllRequired() {
	token := suite.tokenForRole(models.RoleTester)
	router := suite.newRouter(auth.PermExecuteTestRun, auth.PermCloseTestRun)

	w := suite.request(router, "Bearer "+token)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
