package repository

import (
	"errors"

	"github.com/orderdesk/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the user data access interface.
type UserRepository interface {
	GetByID(id int64) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

// GormUserRepository is the GORM implementation.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID fetches a user by chat id. Not found yields (nil, nil).
func (r *GormUserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save persists all fields of an existing user.
func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
