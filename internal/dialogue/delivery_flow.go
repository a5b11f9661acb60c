package dialogue

import (
	"fmt"
	"strings"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/logger"
	"github.com/orderdesk/internal/models"
)

// handleDelivery drives the fulfillment side: list waiting orders, inspect
// one, claim it, or complete it with optional comments.
func (e *Engine) handleDelivery(session *Session, user *models.User, event Event) ([]Reply, error) {
	switch ev := event.(type) {
	case StartEvent:
		session.Step = StepRoot
		return []Reply{welcomeMenu(user)}, nil

	case MenuEvent, BackEvent:
		return e.listPendingOrders(session, user)

	case ListPendingEvent:
		return e.listPendingOrders(session, user)

	case SelectOrderEvent:
		return e.showOrderDetail(session, user, ev.OrderNo)

	case KeepInDeliveryEvent:
		return e.keepInDelivery(session, user, ev.OrderNo)

	case CompleteOrderEvent:
		session.CompleteOrderNo = ev.OrderNo
		session.Step = StepDeliveryEnterComments
		return []Reply{textReply("Please enter any optional comments for the completion, or type 'no' if none:")}, nil

	case TextEvent:
		if session.Step == StepDeliveryEnterComments && session.CompleteOrderNo != "" {
			return e.completeOrder(session, user, ev.Text)
		}
	}

	session.Step = StepRoot
	return []Reply{roleMenu(user)}, nil
}

func (e *Engine) listPendingOrders(session *Session, user *models.User) ([]Reply, error) {
	orders, err := e.orders.ListPendingForDelivery()
	if err != nil {
		return nil, err
	}
	session.Step = StepDeliverySelectOrder
	session.SelectedOrderNo = ""
	session.CompleteOrderNo = ""
	if len(orders) == 0 {
		return []Reply{textReply("No orders waiting for delivery."), roleMenu(user)}, nil
	}
	choices := make([]Choice, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		choices = append(choices, Choice{
			Label:   fmt.Sprintf("%s - %s", o.OrderNo, o.Product.Name),
			Payload: "select_order_" + o.OrderNo,
		})
	}
	return []Reply{choiceReply("Orders waiting for delivery:", choices)}, nil
}

func (e *Engine) showOrderDetail(session *Session, user *models.User, orderNo string) ([]Reply, error) {
	order, err := e.orders.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		session.Step = StepRoot
		return []Reply{textReply("Order not found."), roleMenu(user)}, nil
	}
	session.Step = StepDeliveryViewOrder
	session.SelectedOrderNo = order.OrderNo

	comments := "None"
	if order.Comments != nil {
		comments = *order.Comments
	}
	text := fmt.Sprintf(
		"Order ID: %s\nProduct: %s\nPeriod: %s\nPayment Method: %s\nPlatform: %s\nContact Info: %s\nComments: %s\nStatus: %s\nCreated At: %s",
		order.OrderNo,
		order.Product.Name,
		order.Period.Duration,
		order.PaymentMethod.Name,
		order.Platform.Name,
		order.ContactInfo,
		comments,
		constants.StatusDisplay[order.Status],
		order.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	return []Reply{choiceReply(text, []Choice{
		{Label: "🚚 Keep in Delivery", Payload: "keep_delivery_" + order.OrderNo},
		{Label: "✅ Complete", Payload: "complete_order_" + order.OrderNo},
		{Label: "⬅️ Back to Orders List", Payload: "orders_waiting_delivery"},
	})}, nil
}

func (e *Engine) keepInDelivery(session *Session, user *models.User, orderNo string) ([]Reply, error) {
	updated, err := e.orders.UpdateStatus(orderNo, constants.OrderStatusInDelivery, &user.ID, nil)
	if err != nil || updated == nil {
		if err != nil {
			logger.Warnw("order_claim_failed", "order_no", orderNo, "user_id", user.ID, "error", err)
		}
		session.Step = StepRoot
		return []Reply{textReply("Failed to update order status."), roleMenu(user)}, nil
	}
	session.Step = StepRoot
	session.SelectedOrderNo = ""
	return []Reply{
		textReply(fmt.Sprintf("Order %s status updated to 'In Delivery'.", updated.OrderNo)),
		roleMenu(user),
	}, nil
}

// completeOrder finishes an order. Completing straight from the waiting
// list claims the order first so the lifecycle still passes through
// in delivery.
func (e *Engine) completeOrder(session *Session, user *models.User, text string) ([]Reply, error) {
	orderNo := session.CompleteOrderNo
	session.CompleteOrderNo = ""
	session.SelectedOrderNo = ""
	session.Step = StepRoot

	order, err := e.orders.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return []Reply{textReply("Failed to complete order."), roleMenu(user)}, nil
	}
	if order.Status == constants.OrderStatusWaitingDelivery {
		if _, err := e.orders.UpdateStatus(orderNo, constants.OrderStatusInDelivery, &user.ID, nil); err != nil {
			logger.Warnw("order_claim_failed", "order_no", orderNo, "user_id", user.ID, "error", err)
			return []Reply{textReply("Failed to complete order."), roleMenu(user)}, nil
		}
	}

	comments := strings.TrimSpace(text)
	updated, err := e.orders.UpdateStatus(orderNo, constants.OrderStatusCompleted, &user.ID, &comments)
	if err != nil || updated == nil {
		if err != nil {
			logger.Warnw("order_complete_failed", "order_no", orderNo, "user_id", user.ID, "error", err)
		}
		return []Reply{textReply("Failed to complete order."), roleMenu(user)}, nil
	}
	return []Reply{
		textReply(fmt.Sprintf("Order %s marked as 'Completed'!", updated.OrderNo)),
		roleMenu(user),
	}, nil
}
