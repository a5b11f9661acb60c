package dialogue

import (
	"context"
	"sync"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/models"
	"github.com/orderdesk/internal/service"
)

// Engine advances per-user conversation state machines. Events for the same
// user are handled strictly sequentially (per-session lock); sessions for
// different users interleave freely.
type Engine struct {
	sessions SessionStore
	orders   *service.OrderService
	refs     *service.ReferenceService
	users    *service.UserService

	locks sync.Map // userID -> *sync.Mutex
}

// NewEngine creates a dialogue engine.
func NewEngine(sessions SessionStore, orders *service.OrderService, refs *service.ReferenceService, users *service.UserService) *Engine {
	return &Engine{
		sessions: sessions,
		orders:   orders,
		refs:     refs,
		users:    users,
	}
}

// Handle runs one inbound event through the state machine and returns the
// outbound replies. Internal failures (storage errors) are returned as
// errors; user-level failures become replies.
func (e *Engine) Handle(ctx context.Context, profile service.UserProfile, event Event) ([]Reply, error) {
	mu := e.lockFor(profile.ID)
	mu.Lock()
	defer mu.Unlock()

	user, err := e.users.GetOrCreate(profile)
	if err != nil {
		return nil, err
	}

	session, err := e.sessions.Get(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = &Session{UserID: profile.ID, Step: StepRoot}
	}

	var replies []Reply
	if !user.IsAuthenticated || user.Role == "" {
		replies, err = e.handleAuth(session, user, event)
	} else {
		switch user.Role {
		case constants.RoleAgent:
			replies, err = e.handleAgent(session, user, event)
		case constants.RoleDelivery:
			replies, err = e.handleDelivery(session, user, event)
		default:
			replies = []Reply{textReply("Your role is not set. Please contact an administrator.")}
		}
	}
	if err != nil {
		return nil, err
	}

	if err := e.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return replies, nil
}

func (e *Engine) lockFor(userID int64) *sync.Mutex {
	value, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

func agentMenuChoices() []Choice {
	return []Choice{
		{Label: "➕ New Order", Payload: "new_order"},
		{Label: "📋 See All Orders", Payload: "see_all_orders"},
		{Label: "⬇️ Download Orders File", Payload: "download_orders_file"},
	}
}

func deliveryMenuChoices() []Choice {
	return []Choice{
		{Label: "📦 Orders Waiting Delivery", Payload: "orders_waiting_delivery"},
	}
}

func roleMenu(user *models.User) Reply {
	switch user.Role {
	case constants.RoleAgent:
		return choiceReply("What else would you like to do?", agentMenuChoices())
	case constants.RoleDelivery:
		return choiceReply("What else would you like to do?", deliveryMenuChoices())
	}
	return textReply("Your role is not set. Please contact an administrator.")
}

func welcomeMenu(user *models.User) Reply {
	switch user.Role {
	case constants.RoleAgent:
		return choiceReply("Welcome, Agent! How can I help you today?", agentMenuChoices())
	case constants.RoleDelivery:
		return choiceReply("Welcome, Delivery Responsible! Here are your options:", deliveryMenuChoices())
	}
	return textReply("Your role is not set. Please contact an administrator.")
}
