package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyOrder         = errors.New("cannot create an empty order")
	ErrItemNotFound       = errors.New("product not found")
	ErrOrderNotDeletable  = errors.New("order can no longer be deleted")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrNameRequired       = errors.New("name is required")
	ErrLabelRequired      = errors.New("label is required")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrClientRequired     = errors.New("client is required")
	ErrNoConsignItems     = errors.New("no consign items")
	ErrExceedsOutstanding = errors.New("return exceeds outstanding consigns")
)
