package dialogue

// Event is the structured input the engine consumes. Raw transport payload
// strings are decoded into these exactly once, at the gateway boundary.
type Event interface {
	isEvent()
}

// StartEvent is the first contact / explicit restart ("/start").
type StartEvent struct{}

// TextEvent is a free-text message.
type TextEvent struct {
	Text string
}

// MenuEvent returns the user to their role's root menu.
type MenuEvent struct{}

// BackEvent returns the wizard to the immediately preceding prompt.
type BackEvent struct{}

// NewOrderEvent starts the agent order wizard.
type NewOrderEvent struct{}

// SeeAllOrdersEvent lists the agent's orders.
type SeeAllOrdersEvent struct{}

// DownloadOrdersEvent requests the agent's CSV export.
type DownloadOrdersEvent struct{}

// SelectProductEvent picks the product in the wizard.
type SelectProductEvent struct {
	Name string
}

// SelectPeriodEvent picks the period in the wizard.
type SelectPeriodEvent struct {
	Duration string
}

// SelectPaymentMethodEvent picks the payment method in the wizard.
type SelectPaymentMethodEvent struct {
	Name string
}

// SelectPlatformEvent picks the platform in the wizard.
type SelectPlatformEvent struct {
	Name string
}

// ConfirmOrderEvent commits the draft at the confirmation gate.
type ConfirmOrderEvent struct{}

// CancelOrderEvent abandons the draft without persisting anything.
type CancelOrderEvent struct{}

// SetRoleEvent is the one-time role choice after the password gate.
type SetRoleEvent struct {
	Role string
}

// ListPendingEvent lists orders waiting for delivery.
type ListPendingEvent struct{}

// SelectOrderEvent opens one pending order's detail view.
type SelectOrderEvent struct {
	OrderNo string
}

// KeepInDeliveryEvent claims an order (transition to In Delivery).
type KeepInDeliveryEvent struct {
	OrderNo string
}

// CompleteOrderEvent asks for completion comments before finishing an order.
type CompleteOrderEvent struct {
	OrderNo string
}

// UnknownEvent is anything the gateway could not decode.
type UnknownEvent struct {
	Payload string
}

func (StartEvent) isEvent()               {}
func (TextEvent) isEvent()                {}
func (MenuEvent) isEvent()                {}
func (BackEvent) isEvent()                {}
func (NewOrderEvent) isEvent()            {}
func (SeeAllOrdersEvent) isEvent()        {}
func (DownloadOrdersEvent) isEvent()      {}
func (SelectProductEvent) isEvent()       {}
func (SelectPeriodEvent) isEvent()        {}
func (SelectPaymentMethodEvent) isEvent() {}
func (SelectPlatformEvent) isEvent()      {}
func (ConfirmOrderEvent) isEvent()        {}
func (CancelOrderEvent) isEvent()         {}
func (SetRoleEvent) isEvent()             {}
func (ListPendingEvent) isEvent()         {}
func (SelectOrderEvent) isEvent()         {}
func (KeepInDeliveryEvent) isEvent()      {}
func (CompleteOrderEvent) isEvent()       {}
func (UnknownEvent) isEvent()             {}
