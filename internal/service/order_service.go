package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/logger"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/repository"
)

// OrderService owns order creation, queries and the lifecycle state machine.
type OrderService struct {
	orderRepo repository.OrderRepository
	refRepo   repository.ReferenceRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, refRepo repository.ReferenceRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		refRepo:   refRepo,
	}
}

// CreateOrderInput carries the attributes collected by the agent wizard.
// Reference values arrive as display names and are resolved to ids here.
type CreateOrderInput struct {
	AgentID           int64
	ProductName       string
	PeriodDuration    string
	PaymentMethodName string
	PlatformName      string
	ContactInfo       string
	Comments          *string
}

// allowedTransitions is the closed lifecycle: waiting -> in delivery ->
// completed. Re-entering in delivery re-affirms ownership without advancing.
// Terminal states have no outgoing edges; completing an order that never
// entered delivery is rejected.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusWaitingDelivery: {
		constants.OrderStatusInDelivery: true,
	},
	constants.OrderStatusInDelivery: {
		constants.OrderStatusInDelivery: true,
		constants.OrderStatusCompleted:  true,
	},
}

func isTransitionAllowed(current, target string) bool {
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

// Create resolves the reference names, generates an order number and
// persists the order in Waiting Delivery. Any unresolvable reference name
// fails the whole operation; nothing is persisted.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	contactInfo := strings.TrimSpace(input.ContactInfo)
	if contactInfo == "" {
		return nil, ErrContactInfoRequired
	}

	product, err := s.refRepo.FindProductByName(input.ProductName)
	if err != nil {
		return nil, err
	}
	period, err := s.refRepo.FindPeriodByDuration(input.PeriodDuration)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := s.refRepo.FindPaymentMethodByName(input.PaymentMethodName)
	if err != nil {
		return nil, err
	}
	platform, err := s.refRepo.FindPlatformByName(input.PlatformName)
	if err != nil {
		return nil, err
	}

	var missing []string
	if product == nil {
		missing = append(missing, fmt.Sprintf("product %q", input.ProductName))
	}
	if period == nil {
		missing = append(missing, fmt.Sprintf("period %q", input.PeriodDuration))
	}
	if paymentMethod == nil {
		missing = append(missing, fmt.Sprintf("payment method %q", input.PaymentMethodName))
	}
	if platform == nil {
		missing = append(missing, fmt.Sprintf("platform %q", input.PlatformName))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, strings.Join(missing, ", "))
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		AgentID:         input.AgentID,
		ProductID:       product.ID,
		PeriodID:        period.ID,
		PaymentMethodID: paymentMethod.ID,
		PlatformID:      platform.ID,
		ContactInfo:     contactInfo,
		Comments:        normalizeComments(input.Comments),
		Status:          constants.OrderStatusWaitingDelivery,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"agent_id", order.AgentID,
		"product", input.ProductName,
	)
	return s.orderRepo.GetByOrderNo(order.OrderNo)
}

// GetByOrderNo fetches one order. A vanished order yields (nil, nil).
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	return s.orderRepo.GetByOrderNo(strings.TrimSpace(orderNo))
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orderRepo.ListAll()
}

// ListByStatus returns orders in one status, newest first.
func (s *OrderService) ListByStatus(status string) ([]models.Order, error) {
	if _, ok := constants.StatusDisplay[status]; !ok {
		return nil, ErrUnknownStatus
	}
	return s.orderRepo.ListByStatus(status)
}

// ListPendingForDelivery returns the orders still waiting for a delivery
// responsible, newest first.
func (s *OrderService) ListPendingForDelivery() ([]models.Order, error) {
	return s.orderRepo.ListByStatus(constants.OrderStatusWaitingDelivery)
}

// ListByAgent returns the orders a given agent created, newest first.
func (s *OrderService) ListByAgent(agentID int64) ([]models.Order, error) {
	return s.orderRepo.ListByAgent(agentID)
}

// UpdateStatus drives the lifecycle state machine. A missing order yields
// (nil, nil), a soft failure the caller turns into a "not found" message.
// Transitions outside the lifecycle return ErrInvalidTransition.
//
// Entering In Delivery requires deliveryUserID and stamps
// delivery_started_at; repeating it re-stamps both (idempotent claim,
// last-writer-wins). Entering Completed stamps completed_at and stores the
// delivery comments, with the "no" sentinel normalized to absent.
func (s *OrderService) UpdateStatus(orderNo, newStatus string, deliveryUserID *int64, deliveryComments *string) (*models.Order, error) {
	if _, ok := constants.StatusDisplay[newStatus]; !ok {
		return nil, ErrUnknownStatus
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !isTransitionAllowed(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	now := time.Now()
	switch newStatus {
	case constants.OrderStatusInDelivery:
		if deliveryUserID == nil {
			return nil, ErrDeliveryUserRequired
		}
		order.DeliveryUserID = deliveryUserID
		order.DeliveryStartedAt = &now
	case constants.OrderStatusCompleted:
		order.CompletedAt = &now
		order.DeliveryComments = normalizeComments(deliveryComments)
	}
	order.Status = newStatus

	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}

	logger.Infow("order_status_updated",
		"order_no", order.OrderNo,
		"status", newStatus,
	)
	return s.orderRepo.GetByOrderNo(order.OrderNo)
}

// normalizeComments maps the "no" sentinel and whitespace-only text to
// absent; anything else is stored trimmed.
func normalizeComments(comments *string) *string {
	if comments == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comments)
	if trimmed == "" || strings.EqualFold(trimmed, constants.CommentsNoneSentinel) {
		return nil
	}
	return &trimmed
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("OrderN%s%s", now, randNumeric(4))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
