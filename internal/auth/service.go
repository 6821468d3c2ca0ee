package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"qualityhub-backend/internal/config"
	"qualityhub-backend/internal/database/models"
	apperrors "qualityhub-backend/internal/errors"
	"qualityhub-backend/internal/repository"
	"qualityhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims represents JWT token claims
type Claims struct {
	UserID         uuid.UUID       `json:"user_id"`
	Email          string          `json:"email" example:"jane.doe@example.com"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Role           models.UserRole `json:"role" example:"tester"`
	jwt.RegisteredClaims
}

// AuthService provides authentication functionality: password login, JWT
// issuance/validation and refresh-token rotation backed by the persisted
// refresh_tokens table.
type AuthService struct {
	cfg       *config.Config
	users     repository.UserRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	tokens    repository.RefreshTokenRepositoryInterface
	validator *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(
	cfg *config.Config,
	users repository.UserRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	tokens repository.RefreshTokenRepositoryInterface,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		cfg:       cfg,
		users:     users,
		orgs:      orgs,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new organization and
// its first (org_admin) user
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
	Name             string `json:"name" validate:"required,max=100"`
}

// LoginRequest represents the request to log in with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the user shape embedded in auth responses
type UserInfo struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           models.UserRole `json:"role"`
}

// AuthResponse is returned on successful register, login and refresh
type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type" example:"bearer"`
	ExpiresIn    int64    `json:"expires_in" example:"900"`
	RefreshToken string   `json:"refresh_token"`
	User         UserInfo `json:"user"`
}

// Register creates a new organization and its first user with the org_admin
// role. The organization slug is derived from the name.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Reject duplicate email before creating anything
	existing, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	slug := service.Slugify(req.OrganizationName)
	if slug == "" {
		return nil, apperrors.NewValidationError("organization_name", "cannot be reduced to a valid slug")
	}
	existingOrg, err := s.orgs.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existingOrg != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name: req.OrganizationName,
		Slug: slug,
		Plan: "free",
	}
	if err := s.orgs.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		OrganizationID: org.ID,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Name:           req.Name,
		Role:           models.RoleOrgAdmin,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(user)
}

// Login verifies the email/password pair and issues a token pair. A wrong
// password yields ErrInvalidCredentials and no token.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh rotates a refresh token: the presented token must exist, be
// unexpired and unrevoked. It is revoked and a fresh pair is issued. A
// rotated or revoked token presented again is rejected.
func (s *AuthService) Refresh(token string) (*AuthResponse, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	rt, err := s.tokens.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	now := time.Now()
	if rt.RevokedAt != nil {
		return nil, apperrors.ErrRefreshTokenRevoked
	}
	if !now.Before(rt.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByID(rt.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	// The revoke is conditional on the token still being active. Losing the
	// race to a concurrent rotation of the same token means it was already
	// spent.
	if err := s.tokens.Revoke(rt.ID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefreshTokenRevoked
		}
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(user)
}

// Logout revokes the presented refresh token. Unknown tokens are rejected the
// same way as invalid refresh attempts.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return apperrors.ErrInvalidRefreshToken
	}

	rt, err := s.tokens.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidRefreshToken
		}
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if rt.RevokedAt != nil {
		// Already revoked; logout is idempotent
		return nil
	}

	if err := s.tokens.Revoke(rt.ID, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Revoked by a concurrent request; logout is idempotent
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// GetUser loads the current user by ID (for /auth/me)
func (s *AuthService) GetUser(id uuid.UUID) (*UserInfo, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	info := toUserInfo(user)
	return &info, nil
}

// ValidateJWT parses and validates an access token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessTTL := time.Duration(s.cfg.AccessTokenTTLMinutes) * time.Minute
	now := time.Now()

	claims := &Claims{
		UserID:         user.ID,
		Email:          user.Email,
		OrganizationID: user.OrganizationID,
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "qualityhub-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	rt := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: now.Add(time.Duration(s.cfg.RefreshTokenTTLHours) * time.Hour),
	}
	if err := s.tokens.Create(rt); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(accessTTL.Seconds()),
		RefreshToken: refreshToken,
		User:         toUserInfo(user),
	}, nil
}

func toUserInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role,
	}
}

// generateRefreshToken returns a 256-bit URL-safe random token string
func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
