package gateway

import (
	"strings"

	"github.com/orderdesk/internal/dialogue"
)

// DecodeEvent turns a raw inbound message into a dialogue event. Tapped
// choices arrive as an opaque payload; free text arrives with an empty
// payload. Payloads are decoded here exactly once; the engine never sees
// raw strings.
func DecodeEvent(text, payload string) dialogue.Event {
	if payload != "" {
		return decodePayload(payload)
	}
	if strings.TrimSpace(text) == "/start" {
		return dialogue.StartEvent{}
	}
	return dialogue.TextEvent{Text: text}
}

func decodePayload(payload string) dialogue.Event {
	switch payload {
	case "menu":
		return dialogue.MenuEvent{}
	case "back":
		return dialogue.BackEvent{}
	case "new_order":
		return dialogue.NewOrderEvent{}
	case "see_all_orders":
		return dialogue.SeeAllOrdersEvent{}
	case "download_orders_file":
		return dialogue.DownloadOrdersEvent{}
	case "confirm_new_order":
		return dialogue.ConfirmOrderEvent{}
	case "cancel_new_order":
		return dialogue.CancelOrderEvent{}
	case "orders_waiting_delivery":
		return dialogue.ListPendingEvent{}
	}

	if name, ok := strings.CutPrefix(payload, "new_order_product_"); ok {
		return dialogue.SelectProductEvent{Name: name}
	}
	if duration, ok := strings.CutPrefix(payload, "new_order_period_"); ok {
		return dialogue.SelectPeriodEvent{Duration: duration}
	}
	if name, ok := strings.CutPrefix(payload, "new_order_payment_"); ok {
		return dialogue.SelectPaymentMethodEvent{Name: name}
	}
	if name, ok := strings.CutPrefix(payload, "new_order_platform_"); ok {
		return dialogue.SelectPlatformEvent{Name: name}
	}
	if role, ok := strings.CutPrefix(payload, "set_role_"); ok {
		return dialogue.SetRoleEvent{Role: role}
	}
	if orderNo, ok := strings.CutPrefix(payload, "select_order_"); ok {
		return dialogue.SelectOrderEvent{OrderNo: orderNo}
	}
	if orderNo, ok := strings.CutPrefix(payload, "keep_delivery_"); ok {
		return dialogue.KeepInDeliveryEvent{OrderNo: orderNo}
	}
	if orderNo, ok := strings.CutPrefix(payload, "complete_order_"); ok {
		return dialogue.CompleteOrderEvent{OrderNo: orderNo}
	}
	return dialogue.UnknownEvent{Payload: payload}
}
