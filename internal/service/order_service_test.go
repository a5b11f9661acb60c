package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := models.SeedReferenceData(db); err != nil {
		t.Fatalf("seed reference data failed: %v", err)
	}
	return db
}

func setupOrderService(t *testing.T, name string) (*OrderService, *gorm.DB) {
	t.Helper()
	db := setupOrderDB(t, name)
	return NewOrderService(repository.NewOrderRepository(db), repository.NewReferenceRepository(db)), db
}

func validCreateInput(agentID int64) CreateOrderInput {
	return CreateOrderInput{
		AgentID:           agentID,
		ProductName:       "Cursor",
		PeriodDuration:    "1 month",
		PaymentMethodName: "CIH Bank",
		PlatformName:      "WhatsApp",
		ContactInfo:       "@customer",
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	svc, _ := setupOrderService(t, "order_create")

	comments := "deliver after 6pm"
	input := validCreateInput(100)
	input.Comments = &comments

	order, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "OrderN") {
		t.Fatalf("unexpected order no prefix: %s", order.OrderNo)
	}
	if len(order.OrderNo) != len("OrderN")+14+4 {
		t.Fatalf("unexpected order no length: %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusWaitingDelivery {
		t.Fatalf("expected waiting_delivery, got %s", order.Status)
	}
	if order.Product.Name != "Cursor" || order.Period.Duration != "1 month" {
		t.Fatalf("associations not loaded: %+v", order)
	}
	if order.Comments == nil || *order.Comments != comments {
		t.Fatalf("unexpected comments: %v", order.Comments)
	}
	if order.DeliveryUserID != nil || order.DeliveryStartedAt != nil || order.CompletedAt != nil {
		t.Fatalf("delivery fields should be unset on creation: %+v", order)
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("created_at not stamped")
	}
}

func TestCreateOrderUnknownReference(t *testing.T) {
	svc, db := setupOrderService(t, "order_bad_ref")

	input := validCreateInput(100)
	input.ProductName = "Nonexistent Product"
	if _, err := svc.Create(input); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no persisted orders, got %d", count)
	}
}

func TestCreateOrderRequiresContactInfo(t *testing.T) {
	svc, _ := setupOrderService(t, "order_no_contact")

	input := validCreateInput(100)
	input.ContactInfo = "   "
	if _, err := svc.Create(input); !errors.Is(err, ErrContactInfoRequired) {
		t.Fatalf("expected ErrContactInfoRequired, got %v", err)
	}
}

func TestCreateOrderNormalizesCommentSentinel(t *testing.T) {
	svc, _ := setupOrderService(t, "order_no_comments")

	for _, raw := range []string{"no", "No", "NO", "  no  ", ""} {
		comments := raw
		input := validCreateInput(100)
		input.Comments = &comments
		order, err := svc.Create(input)
		if err != nil {
			t.Fatalf("create order failed for %q: %v", raw, err)
		}
		if order.Comments != nil {
			t.Fatalf("expected absent comments for %q, got %q", raw, *order.Comments)
		}
	}
}

func TestUpdateStatusClaimStampsDelivery(t *testing.T) {
	svc, _ := setupOrderService(t, "order_claim")

	order, err := svc.Create(validCreateInput(100))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	deliveryUser := int64(200)
	claimed, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, &deliveryUser, nil)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed.Status != constants.OrderStatusInDelivery {
		t.Fatalf("expected in_delivery, got %s", claimed.Status)
	}
	if claimed.DeliveryUserID == nil || *claimed.DeliveryUserID != deliveryUser {
		t.Fatalf("delivery user not recorded: %v", claimed.DeliveryUserID)
	}
	if claimed.DeliveryStartedAt == nil {
		t.Fatalf("delivery_started_at not stamped")
	}

	// Re-claiming by another user re-stamps, last writer wins.
	otherUser := int64(201)
	reclaimed, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, &otherUser, nil)
	if err != nil {
		t.Fatalf("reclaim failed: %v", err)
	}
	if reclaimed.DeliveryUserID == nil || *reclaimed.DeliveryUserID != otherUser {
		t.Fatalf("expected reclaim to switch delivery user, got %v", reclaimed.DeliveryUserID)
	}
}

func TestUpdateStatusCompleteNormalizesComments(t *testing.T) {
	svc, _ := setupOrderService(t, "order_complete")

	order, err := svc.Create(validCreateInput(100))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	deliveryUser := int64(200)
	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, &deliveryUser, nil); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	sentinel := "No"
	completed, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusCompleted, &deliveryUser, &sentinel)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatalf("completed_at not stamped")
	}
	if completed.DeliveryComments != nil {
		t.Fatalf("sentinel comments should be absent, got %q", *completed.DeliveryComments)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc, _ := setupOrderService(t, "order_missing")

	deliveryUser := int64(200)
	order, err := svc.UpdateStatus("OrderN00000000000000000", constants.OrderStatusInDelivery, &deliveryUser, nil)
	if err != nil {
		t.Fatalf("expected soft failure, got error: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc, _ := setupOrderService(t, "order_guard")

	order, err := svc.Create(validCreateInput(100))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	deliveryUser := int64(200)

	// Completing straight from waiting skips the lifecycle.
	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusCompleted, &deliveryUser, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, &deliveryUser, nil); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusCompleted, &deliveryUser, nil); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// Completed is terminal.
	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, &deliveryUser, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition out of completed, got %v", err)
	}
}

func TestUpdateStatusRequiresDeliveryUser(t *testing.T) {
	svc, _ := setupOrderService(t, "order_need_user")

	order, err := svc.Create(validCreateInput(100))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.UpdateStatus(order.OrderNo, constants.OrderStatusInDelivery, nil, nil); !errors.Is(err, ErrDeliveryUserRequired) {
		t.Fatalf("expected ErrDeliveryUserRequired, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := setupOrderService(t, "order_bad_status")

	if _, err := svc.UpdateStatus("whatever", "shipped", nil, nil); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestListPendingForDelivery(t *testing.T) {
	svc, _ := setupOrderService(t, "order_pending")

	first, err := svc.Create(validCreateInput(100))
	if err != nil {
		t.Fatalf("create first order failed: %v", err)
	}
	second, err := svc.Create(validCreateInput(101))
	if err != nil {
		t.Fatalf("create second order failed: %v", err)
	}

	deliveryUser := int64(200)
	if _, err := svc.UpdateStatus(first.OrderNo, constants.OrderStatusInDelivery, &deliveryUser, nil); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	pending, err := svc.ListPendingForDelivery()
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending order, got %d", len(pending))
	}
	if pending[0].OrderNo != second.OrderNo {
		t.Fatalf("expected %s pending, got %s", second.OrderNo, pending[0].OrderNo)
	}
	if pending[0].Product.Name == "" {
		t.Fatalf("pending list should preload product")
	}
}

func TestListByStatusRejectsUnknown(t *testing.T) {
	svc, _ := setupOrderService(t, "order_list_status")

	if _, err := svc.ListByStatus("shipped"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestListByAgentFiltersOwner(t *testing.T) {
	svc, _ := setupOrderService(t, "order_by_agent")

	if _, err := svc.Create(validCreateInput(100)); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.Create(validCreateInput(101)); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	mine, err := svc.ListByAgent(100)
	if err != nil {
		t.Fatalf("list by agent failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 order for agent 100, got %d", len(mine))
	}
	if mine[0].AgentID != 100 {
		t.Fatalf("unexpected agent id: %d", mine[0].AgentID)
	}
}
