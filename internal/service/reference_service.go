package service

import (
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/repository"
)

// ReferenceService exposes the read-only lookup sets to the dialogue layer.
type ReferenceService struct {
	refRepo repository.ReferenceRepository
}

// NewReferenceService creates a reference-data service.
func NewReferenceService(refRepo repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{refRepo: refRepo}
}

// ListProducts returns all products.
func (s *ReferenceService) ListProducts() ([]models.Product, error) {
	return s.refRepo.ListProducts()
}

// ListPeriods returns all periods.
func (s *ReferenceService) ListPeriods() ([]models.Period, error) {
	return s.refRepo.ListPeriods()
}

// ListPaymentMethods returns all payment methods.
func (s *ReferenceService) ListPaymentMethods() ([]models.PaymentMethod, error) {
	return s.refRepo.ListPaymentMethods()
}

// ListPlatforms returns all platforms.
func (s *ReferenceService) ListPlatforms() ([]models.Platform, error) {
	return s.refRepo.ListPlatforms()
}
