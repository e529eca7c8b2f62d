package services

import (
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/models"
)

// IdentityRepository loads the principal behind an authenticated session.
// The auth middleware consults it on every request, so a deleted user loses
// access immediately even with a valid token.
type IdentityRepository interface {
	FindByID(id uint) (*models.User, error)
}

type GormIdentityRepository struct {
	DB *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *GormIdentityRepository {
	return &GormIdentityRepository{DB: db}
}

func (r *GormIdentityRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
