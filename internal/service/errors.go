package service

import "errors"

var (
	// ErrReferenceNotFound marks a creation attempt naming reference data
	// that does not exist. Surfaced verbatim to the initiating user.
	ErrReferenceNotFound = errors.New("reference data not found")
	// ErrContactInfoRequired marks a creation attempt without contact info.
	ErrContactInfoRequired = errors.New("contact info is required")
	// ErrInvalidTransition marks a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrDeliveryUserRequired marks an in-delivery transition without a
	// delivery user identity.
	ErrDeliveryUserRequired = errors.New("delivery user is required")
	// ErrUnknownStatus marks a status value outside the closed enum.
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrRoleInvalid marks a role value outside agent/delivery.
	ErrRoleInvalid = errors.New("invalid role")
	// ErrNotAuthenticated marks an operation by a user who has not passed
	// the password gate.
	ErrNotAuthenticated = errors.New("user is not authenticated")
)
