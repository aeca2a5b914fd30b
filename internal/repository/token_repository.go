package repository

import (
	"github.com/hockeylive/backend/internal/models"
	"gorm.io/gorm"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// Create persists a freshly issued token
func (r *GormTokenRepository) Create(token *models.UserToken) error {
	return r.db.Create(token).Error
}

// FindByToken finds a token record by its opaque string
func (r *GormTokenRepository) FindByToken(token string) (*models.UserToken, error) {
	var record models.UserToken
	if err := r.db.Where("token = ?", token).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteByToken deletes a token record and reports whether one existed
func (r *GormTokenRepository) DeleteByToken(token string) (bool, error) {
	result := r.db.Where("token = ?", token).Delete(&models.UserToken{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
