package repository

import (
	"time"

	"qualityhub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenRepository handles database operations for refresh tokens
type RefreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create creates a new refresh token
func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// GetByToken retrieves a refresh token row by its token string
func (r *RefreshTokenRepository) GetByToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.First(&rt, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// Revoke marks a refresh token as revoked. Returns gorm.ErrRecordNotFound
// when the token was already revoked, so concurrent rotations of the same
// token cannot both succeed.
func (r *RefreshTokenRepository) Revoke(id uuid.UUID, at time.Time) error {
	res := r.db.Model(&models.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RevokeAllForUser revokes every active refresh token belonging to a user
func (r *RefreshTokenRepository) RevokeAllForUser(userID uuid.UUID, at time.Time) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at).Error
}

// DeleteExpired removes tokens whose expiry passed before the given time
func (r *RefreshTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	res := r.db.Delete(&models.RefreshToken{}, "expires_at < ?", before)
	return res.RowsAffected, res.Error
}
