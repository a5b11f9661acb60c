package dialogue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/service"
)

// handleAgent drives the order wizard: product, period, payment method,
// platform, contact info, optional comments, confirmation. Each step
// re-renders from the draft, so back-navigation keeps entered fields.
func (e *Engine) handleAgent(session *Session, user *models.User, event Event) ([]Reply, error) {
	switch ev := event.(type) {
	case StartEvent:
		session.Step = StepRoot
		session.Draft = nil
		return []Reply{welcomeMenu(user)}, nil

	case MenuEvent:
		session.Step = StepRoot
		session.Draft = nil
		return []Reply{roleMenu(user)}, nil

	case NewOrderEvent:
		session.Draft = &DraftOrder{}
		return e.promptProduct(session)

	case SelectProductEvent:
		if session.Step != StepSelectProduct || session.Draft == nil {
			break
		}
		session.Draft.Product = ev.Name
		return e.promptPeriod(session, fmt.Sprintf("You selected %s. Now, please select the period:", ev.Name))

	case SelectPeriodEvent:
		if session.Step != StepSelectPeriod || session.Draft == nil {
			break
		}
		session.Draft.Period = ev.Duration
		return e.promptPaymentMethod(session, fmt.Sprintf("You selected %s. Now, please select the payment method:", ev.Duration))

	case SelectPaymentMethodEvent:
		if session.Step != StepSelectPaymentMethod || session.Draft == nil {
			break
		}
		session.Draft.PaymentMethod = ev.Name
		return e.promptPlatform(session, fmt.Sprintf("You selected %s. Now, please select the platform:", ev.Name))

	case SelectPlatformEvent:
		if session.Step != StepSelectPlatform || session.Draft == nil {
			break
		}
		session.Draft.Platform = ev.Name
		session.Step = StepEnterContactInfo
		return []Reply{textReply("Please enter the username or contact info for the order:")}, nil

	case TextEvent:
		return e.handleAgentText(session, ev.Text)

	case BackEvent:
		return e.handleAgentBack(session)

	case ConfirmOrderEvent:
		return e.confirmOrder(session, user)

	case CancelOrderEvent:
		session.Draft = nil
		session.Step = StepRoot
		return []Reply{textReply("Order creation cancelled."), roleMenu(user)}, nil

	case SeeAllOrdersEvent:
		return e.listAgentOrders(user)

	case DownloadOrdersEvent:
		return e.downloadAgentOrders(user)
	}

	session.Step = StepRoot
	return []Reply{roleMenu(user)}, nil
}

func (e *Engine) handleAgentText(session *Session, text string) ([]Reply, error) {
	if session.Draft == nil {
		session.Step = StepRoot
		return []Reply{choiceReply("What else would you like to do?", agentMenuChoices())}, nil
	}
	switch session.Step {
	case StepEnterContactInfo:
		session.Draft.ContactInfo = strings.TrimSpace(text)
		session.Step = StepEnterComments
		return []Reply{textReply("Please enter any optional comments for the order, or type 'no' if none:")}, nil

	case StepEnterComments:
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.EqualFold(trimmed, constants.CommentsNoneSentinel) {
			session.Draft.Comments = nil
		} else {
			session.Draft.Comments = &trimmed
		}
		session.Step = StepConfirmOrder
		return []Reply{confirmationSummary(session.Draft)}, nil
	}
	session.Step = StepRoot
	return []Reply{choiceReply("What else would you like to do?", agentMenuChoices())}, nil
}

// handleAgentBack steps the wizard one screen back, re-rendering the prior
// prompt from the draft.
func (e *Engine) handleAgentBack(session *Session) ([]Reply, error) {
	if session.Draft == nil {
		session.Step = StepRoot
		return []Reply{choiceReply("What else would you like to do?", agentMenuChoices())}, nil
	}
	switch session.Step {
	case StepSelectPeriod:
		return e.promptProduct(session)
	case StepSelectPaymentMethod:
		return e.promptPeriod(session, "Please select the period:")
	case StepSelectPlatform:
		return e.promptPaymentMethod(session, "Please select the payment method:")
	case StepEnterContactInfo:
		return e.promptPlatform(session, "Please select the platform:")
	case StepEnterComments:
		session.Step = StepEnterContactInfo
		return []Reply{textReply("Please enter the username or contact info for the order:")}, nil
	case StepConfirmOrder:
		session.Step = StepEnterComments
		return []Reply{textReply("Please enter any optional comments for the order, or type 'no' if none:")}, nil
	}
	session.Step = StepRoot
	session.Draft = nil
	return []Reply{choiceReply("What else would you like to do?", agentMenuChoices())}, nil
}

func (e *Engine) promptProduct(session *Session) ([]Reply, error) {
	products, err := e.refs.ListProducts()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(products))
	for _, p := range products {
		choices = append(choices, Choice{Label: p.Name, Payload: "new_order_product_" + p.Name})
	}
	session.Step = StepSelectProduct
	return []Reply{choiceReply("Please select a product:", choices)}, nil
}

func (e *Engine) promptPeriod(session *Session, text string) ([]Reply, error) {
	periods, err := e.refs.ListPeriods()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(periods)+1)
	for _, p := range periods {
		choices = append(choices, Choice{Label: p.Duration, Payload: "new_order_period_" + p.Duration})
	}
	choices = append(choices, backChoice())
	session.Step = StepSelectPeriod
	return []Reply{choiceReply(text, choices)}, nil
}

func (e *Engine) promptPaymentMethod(session *Session, text string) ([]Reply, error) {
	methods, err := e.refs.ListPaymentMethods()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(methods)+1)
	for _, m := range methods {
		choices = append(choices, Choice{Label: m.Name, Payload: "new_order_payment_" + m.Name})
	}
	choices = append(choices, backChoice())
	session.Step = StepSelectPaymentMethod
	return []Reply{choiceReply(text, choices)}, nil
}

func (e *Engine) promptPlatform(session *Session, text string) ([]Reply, error) {
	platforms, err := e.refs.ListPlatforms()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(platforms)+1)
	for _, p := range platforms {
		choices = append(choices, Choice{Label: p.Name, Payload: "new_order_platform_" + p.Name})
	}
	choices = append(choices, backChoice())
	session.Step = StepSelectPlatform
	return []Reply{choiceReply(text, choices)}, nil
}

func confirmationSummary(draft *DraftOrder) Reply {
	comments := "None"
	if draft.Comments != nil {
		comments = *draft.Comments
	}
	text := fmt.Sprintf(
		"Please confirm the order details:\n\nProduct: %s\nPeriod: %s\nPayment Method: %s\nPlatform: %s\nContact Info: %s\nComments: %s",
		draft.Product, draft.Period, draft.PaymentMethod, draft.Platform, draft.ContactInfo, comments,
	)
	return choiceReply(text, []Choice{
		{Label: "✅ Confirm", Payload: "confirm_new_order"},
		{Label: "❌ Cancel", Payload: "cancel_new_order"},
		backChoice(),
	})
}

func (e *Engine) confirmOrder(session *Session, user *models.User) ([]Reply, error) {
	if session.Draft == nil || session.Step != StepConfirmOrder {
		session.Step = StepRoot
		return []Reply{roleMenu(user)}, nil
	}
	draft := session.Draft
	order, err := e.orders.Create(service.CreateOrderInput{
		AgentID:           user.ID,
		ProductName:       draft.Product,
		PeriodDuration:    draft.Period,
		PaymentMethodName: draft.PaymentMethod,
		PlatformName:      draft.Platform,
		ContactInfo:       draft.ContactInfo,
		Comments:          draft.Comments,
	})
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) || errors.Is(err, service.ErrContactInfoRequired) {
			session.Step = StepRoot
			return []Reply{
				textReply(fmt.Sprintf("Error creating order: %v", err)),
				roleMenu(user),
			}, nil
		}
		return nil, err
	}
	session.Draft = nil
	session.Step = StepRoot
	return []Reply{
		textReply(fmt.Sprintf("Order %s created successfully and set to 'Waiting Delivery'!", order.OrderNo)),
		roleMenu(user),
	}, nil
}

func (e *Engine) listAgentOrders(user *models.User) ([]Reply, error) {
	orders, err := e.orders.ListByAgent(user.ID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []Reply{textReply("No orders found."), roleMenu(user)}, nil
	}
	var b strings.Builder
	b.WriteString("Your Orders:\n\n")
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(&b, "Order ID: %s\nProduct: %s\nPeriod: %s\nStatus: %s\nCreated At: %s\n---\n",
			o.OrderNo,
			o.Product.Name,
			o.Period.Duration,
			constants.StatusDisplay[o.Status],
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return []Reply{textReply(b.String()), roleMenu(user)}, nil
}

func (e *Engine) downloadAgentOrders(user *models.User) ([]Reply, error) {
	orders, err := e.orders.ListByAgent(user.ID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []Reply{textReply("No orders found to download."), roleMenu(user)}, nil
	}
	data, err := e.orders.ExportCSV(user.ID)
	if err != nil {
		return nil, err
	}
	return []Reply{
		{Attachment: &Attachment{Filename: "orders.csv", Caption: "Here is your orders file.", Data: data}},
		roleMenu(user),
	}, nil
}

func backChoice() Choice {
	return Choice{Label: "⬅️ Back", Payload: "back"}
}
