package auth_test

import (
	"testing"
	"time"

	"qualityhub-backend/internal/auth"
	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockOrgRepo   *mocks.MockOrganizationRepositoryInterface
	mockTokenRepo *mocks.MockRefreshTokenRepositoryInterface
	authService   *auth.AuthService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockTokenRepo = mocks.NewMockRefreshTokenRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	cfg := &config.Config{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		RefreshTokenTTLHours:  168,
	}
	suite.authService = auth.NewAuthService(cfg, suite.mockUserRepo, suite.mockOrgRepo, suite.mockTokenRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(suite.T(), err)
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Email:          "alice@acme.test",
		PasswordHash:   string(hash),
		Name:           "Alice",
		Role:           models.RoleOrgAdmin,
	}
}

// TestRegister tests registering a new organization and its first user
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &auth.RegisterRequest{
		OrganizationName: "Acme QA Team",
		Email:            "alice@acme.test",
		Password:         "password123",
		Name:             "Alice",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme-qa-team").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	var createdUser *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			createdUser = u
			return nil
		}).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.authService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), "bearer", response.TokenType)
	assert.Equal(suite.T(), int64(15*60), response.ExpiresIn)

	// The first user of a new organization is its org_admin
	assert.NotNil(suite.T(), createdUser)
	assert.Equal(suite.T(), models.RoleOrgAdmin, createdUser.Role)
	assert.Equal(suite.T(), models.RoleOrgAdmin, response.User.Role)
}

// TestRegisterDuplicateEmail tests registering with an email already in use
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &auth.RegisterRequest{
		OrganizationName: "Acme QA Team",
		Email:            "alice@acme.test",
		Password:         "password123",
		Name:             "Alice",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: req.Email}, nil).
		Times(1)

	response, err := suite.authService.Register(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestLogin tests logging in with the correct password
func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.userWithPassword("password123")

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
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.Equal(suite.T(), user.ID, response.User.ID)

	// The access token validates against the same service
	claims, err := suite.authService.ValidateJWT(response.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), user.OrganizationID, claims.OrganizationID)
	assert.Equal(suite.T(), user.Role, claims.Role)
}

// TestLoginWrongPassword tests logging in with a wrong password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.userWithPassword("password123")

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "not-the-password",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that an unknown email is indistinguishable from a wrong password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@acme.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "password123",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestRefreshRotatesToken tests that a valid refresh revokes the old token and issues a new pair
func (suite *AuthServiceTestSuite) TestRefreshRotatesToken() {
	user := suite.userWithPassword("password123")
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Token:     "old-refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("old-refresh-token").
		Return(rt, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(user.ID).
		Return(user, nil).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Revoke(rt.ID, gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.authService.Refresh("old-refresh-token")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.NotEqual(suite.T(), "old-refresh-token", response.RefreshToken)
}

// TestRefreshRevokedToken tests that a revoked token never refreshes
func (suite *AuthServiceTestSuite) TestRefreshRevokedToken() {
	revokedAt := time.Now().Add(-time.Minute)
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "rotated-token",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("rotated-token").
		Return(rt, nil).
		Times(1)

	response, err := suite.authService.Refresh("rotated-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenRevoked)
}

// TestRefreshLostRotationRace tests that losing the revoke race to a
// concurrent rotation of the same token yields no new token pair
func (suite *AuthServiceTestSuite) TestRefreshLostRotationRace() {
	user := suite.userWithPassword("password123")
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Token:     "contested-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("contested-token").
		Return(rt, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(user.ID).
		Return(user, nil).
		Times(1)

	// The other request revoked the row between the read and the update
	suite.mockTokenRepo.EXPECT().
		Revoke(rt.ID, gomock.Any()).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Refresh("contested-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenRevoked)
}

// TestRefreshExpiredToken tests that an expired token never refreshes
func (suite *AuthServiceTestSuite) TestRefreshExpiredToken() {
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("expired-token").
		Return(rt, nil).
		Times(1)

	response, err := suite.authService.Refresh("expired-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenExpired)
}

// TestRefreshUnknownToken tests refreshing with a token that was never issued
func (suite *AuthServiceTestSuite) TestRefreshUnknownToken() {
	suite.mockTokenRepo.EXPECT().
		GetByToken("never-issued").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Refresh("never-issued")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestLogout tests that logout revokes the presented token
func (suite *AuthServiceTestSuite) TestLogout() {
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "active-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("active-token").
		Return(rt, nil).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Revoke(rt.ID, gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.authService.Logout("active-token")

	assert.NoError(suite.T(), err)
}

// TestLogoutIdempotent tests that logging out an already-revoked token succeeds without a second revoke
func (suite *AuthServiceTestSuite) TestLogoutIdempotent() {
	revokedAt := time.Now().Add(-time.Minute)
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "already-revoked",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	// No Revoke expected
	suite.mockTokenRepo.EXPECT().
		GetByToken("already-revoked").
		Return(rt, nil).
		Times(1)

	err := suite.authService.Logout("already-revoked")

	assert.NoError(suite.T(), err)
}

// TestLogoutLostRevokeRace tests that logout still succeeds when another
// request revokes the token first
func (suite *AuthServiceTestSuite) TestLogoutLostRevokeRace() {
	rt := &models.RefreshToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "active-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().
		GetByToken("active-token").
		Return(rt, nil).
		Times(1)

	suite.mockTokenRepo.EXPECT().
		Revoke(rt.ID, gomock.Any()).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.authService.Logout("active-token")

	assert.NoError(suite.T(), err)
}

// TestValidateJWTTampered tests that a tampered token is rejected
func (suite *AuthServiceTestSuite) TestValidateJWTTampered() {
	user := suite.userWithPassword("password123")

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

	claims, err := suite.authService.ValidateJWT(response.AccessToken + "x")
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
