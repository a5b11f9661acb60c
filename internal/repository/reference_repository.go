package repository

import (
	"errors"

	"github.com/orderdesk/internal/models"

	"gorm.io/gorm"
)

// ReferenceRepository reads the static lookup sets. All lookups by name
// return (nil, nil) when the name does not resolve.
type ReferenceRepository interface {
	ListProducts() ([]models.Product, error)
	ListPeriods() ([]models.Period, error)
	ListPaymentMethods() ([]models.PaymentMethod, error)
	ListPlatforms() ([]models.Platform, error)
	FindProductByName(name string) (*models.Product, error)
	FindPeriodByDuration(duration string) (*models.Period, error)
	FindPaymentMethodByName(name string) (*models.PaymentMethod, error)
	FindPlatformByName(name string) (*models.Platform, error)
}

// GormReferenceRepository is the GORM implementation.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a reference-data repository.
func NewReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

// ListProducts returns all products in insertion order.
func (r *GormReferenceRepository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListPeriods returns all periods in insertion order.
func (r *GormReferenceRepository) ListPeriods() ([]models.Period, error) {
	var periods []models.Period
	if err := r.db.Order("id asc").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// ListPaymentMethods returns all payment methods in insertion order.
func (r *GormReferenceRepository) ListPaymentMethods() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.Order("id asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// ListPlatforms returns all platforms in insertion order.
func (r *GormReferenceRepository) ListPlatforms() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := r.db.Order("id asc").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// FindProductByName resolves a product by exact name.
func (r *GormReferenceRepository) FindProductByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindPeriodByDuration resolves a period by exact duration text.
func (r *GormReferenceRepository) FindPeriodByDuration(duration string) (*models.Period, error) {
	var period models.Period
	if err := r.db.Where("duration = ?", duration).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

// FindPaymentMethodByName resolves a payment method by exact name.
func (r *GormReferenceRepository) FindPaymentMethodByName(name string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.Where("name = ?", name).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// FindPlatformByName resolves a platform by exact name.
func (r *GormReferenceRepository) FindPlatformByName(name string) (*models.Platform, error) {
	var platform models.Platform
	if err := r.db.Where("name = ?", name).First(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &platform, nil
}
