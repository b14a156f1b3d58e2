package service

import "errors"

// AssignmentRejectedMessage is the user-facing text for a refused assignment.
const AssignmentRejectedMessage = "Reach max weight capacity or no vehicle available."

var (
	// ErrInvalidWeight is returned when a negative weight is entered.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrInvalidDistance is returned when a negative distance is entered.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrAssignmentRejected is returned when no vehicle was supplied or the
	// package would push the vehicle over its maximum weight.
	ErrAssignmentRejected = errors.New(AssignmentRejectedMessage)

	// ErrNamesExhausted is returned when no unused package name could be generated.
	ErrNamesExhausted = errors.New("no unused package name available")

	// ErrEmptyFleet is returned when the dispatcher is built without vehicles.
	ErrEmptyFleet = errors.New("fleet must contain at least one vehicle")
)
