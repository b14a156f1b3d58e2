package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidOffer is returned when a stored offer has an unusable code or percent.
	ErrInvalidOffer = errors.New("invalid offer")
)
