package repository

import (
	"errors"

	"github.com/orderdesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByOrderNo(orderNo string) (*models.Order, error)
	ListAll() ([]models.Order, error)
	ListByStatus(status string) ([]models.Order, error)
	ListByAgent(agentID int64) ([]models.Order, error)
	Save(order *models.Order) error
	Count() (int64, error)
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withRefs(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Product").
		Preload("Period").
		Preload("PaymentMethod").
		Preload("Platform").
		Preload("Agent").
		Preload("DeliveryUser")
}

// Create inserts an order as a single commit. Associations are resolved by
// id and never written through the order.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Omit(clause.Associations).Create(order).Error
}

// GetByOrderNo fetches an order with all associations. Not found yields
// (nil, nil) so callers can treat it as a soft failure.
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.withRefs(r.db).Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAll returns every order, newest-created first.
func (r *GormOrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.withRefs(r.db).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus returns orders in the given status, newest-created first.
func (r *GormOrderRepository) ListByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withRefs(r.db).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByAgent returns orders created by the given agent, newest-created first.
func (r *GormOrderRepository) ListByAgent(agentID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withRefs(r.db).
		Where("agent_id = ?", agentID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists all fields of an existing order as a single commit.
func (r *GormOrderRepository) Save(order *models.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}

// Count returns the number of persisted orders.
func (r *GormOrderRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
