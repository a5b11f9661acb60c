package models

import (
	"errors"

	"github.com/orderdesk/internal/logger"

	"gorm.io/gorm"
)

// Default reference data. Seeding is idempotent: existing names are kept.
var (
	DefaultProducts = []string{
		"Creative Cloud", "Perplexity", "Office 365", "Google AI Pro",
		"Coursera Plus", "LinkedIn", "Gamma", "Cursor", "Filmora Pro", "Eleven Labs",
	}
	DefaultPeriods        = []string{"1 month", "3 months", "6 months", "12 months"}
	DefaultPaymentMethods = []string{"CIH Bank", "Barid Bank", "Tijjari/Wafa Bank"}
	DefaultPlatforms      = []string{"WhatsApp", "Instagram"}
)

// InitReferenceData seeds the reference tables on the global connection.
func InitReferenceData() error {
	return SeedReferenceData(DB)
}

// SeedReferenceData seeds the reference lookup sets, skipping names that
// already exist.
func SeedReferenceData(db *gorm.DB) error {
	for _, name := range DefaultProducts {
		var existing Product
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&Product{Name: name}).Error; err != nil {
			return err
		}
		logger.Infow("reference_product_seeded", "name", name)
	}
	for _, duration := range DefaultPeriods {
		var existing Period
		err := db.Where("duration = ?", duration).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&Period{Duration: duration}).Error; err != nil {
			return err
		}
		logger.Infow("reference_period_seeded", "duration", duration)
	}
	for _, name := range DefaultPaymentMethods {
		var existing PaymentMethod
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&PaymentMethod{Name: name}).Error; err != nil {
			return err
		}
		logger.Infow("reference_payment_method_seeded", "name", name)
	}
	for _, name := range DefaultPlatforms {
		var existing Platform
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&Platform{Name: name}).Error; err != nil {
			return err
		}
		logger.Infow("reference_platform_seeded", "name", name)
	}
	return nil
}
