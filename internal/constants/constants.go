package constants

// Order status constants. These are the storage identities; user-facing
// wording lives in StatusDisplay.
const (
	OrderStatusWaitingDelivery = "waiting_delivery"
	OrderStatusInDelivery      = "in_delivery"
	OrderStatusCompleted       = "completed"
	OrderStatusCancelled       = "cancelled"
)

// StatusDisplay maps storage statuses to presentation text. CSV export and
// chat replies use these literal strings.
var StatusDisplay = map[string]string{
	OrderStatusWaitingDelivery: "Waiting Delivery",
	OrderStatusInDelivery:      "In Delivery",
	OrderStatusCompleted:       "Completed",
	OrderStatusCancelled:       "Cancelled",
}

// User role constants. Empty string means the role has not been chosen yet.
const (
	RoleAgent    = "agent"
	RoleDelivery = "delivery"
)

// RoleDisplay maps roles to presentation text.
var RoleDisplay = map[string]string{
	RoleAgent:    "Agent",
	RoleDelivery: "Delivery Responsible",
}

// CommentsNoneSentinel marks an intentionally empty free-text answer in the
// dialogue ("type 'no' if none"). Stored comments never contain it.
const CommentsNoneSentinel = "no"
