package dialogue

import (
	"fmt"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/models"
)

// handleAuth runs the two-step access gate: password challenge, then a
// one-time role choice. Wrong passwords re-prompt indefinitely.
func (e *Engine) handleAuth(session *Session, user *models.User, event Event) ([]Reply, error) {
	// Password accepted earlier but role never chosen: only the role
	// selection is pending.
	if user.IsAuthenticated {
		if ev, ok := event.(SetRoleEvent); ok {
			return e.assignRole(session, user, ev.Role)
		}
		session.Step = StepAuthRole
		return []Reply{rolePrompt()}, nil
	}

	switch ev := event.(type) {
	case TextEvent:
		if session.Step != StepAuthPassword {
			break
		}
		ok, err := e.users.Authenticate(user.ID, ev.Text)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []Reply{textReply("Incorrect password. Please try again.")}, nil
		}
		session.Step = StepAuthRole
		return []Reply{rolePrompt()}, nil
	}

	session.Step = StepAuthPassword
	return []Reply{textReply("Welcome! Please enter the password to access the bot.")}, nil
}

func (e *Engine) assignRole(session *Session, user *models.User, role string) ([]Reply, error) {
	updated, err := e.users.SetRole(user.ID, role)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		session.Step = StepAuthPassword
		return []Reply{textReply("Welcome! Please enter the password to access the bot.")}, nil
	}
	*user = *updated
	session.Step = StepRoot
	return []Reply{
		textReply(fmt.Sprintf("Your role has been set to %s.", constants.RoleDisplay[updated.Role])),
		welcomeMenu(updated),
	}, nil
}

func rolePrompt() Reply {
	return choiceReply("Password correct! Please select your role:", []Choice{
		{Label: "Confirmation (Agent)", Payload: "set_role_" + constants.RoleAgent},
		{Label: "Delivery (Responsible)", Payload: "set_role_" + constants.RoleDelivery},
	})
}
