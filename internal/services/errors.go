package services

import (
	"errors"

	"gorm.io/gorm"
)

// Business-rule failures surfaced by the services. Handlers translate them
// into HTTP status codes with errors.Is; none of them is fatal to the
// process, and any of them raised inside a unit of work rolls the whole
// unit back.
var (
	// ErrNotFound covers both absent entities and entities that exist but
	// belong to another user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAmount rejects non-positive money amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidQuantity rejects cart quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidTransition rejects a state-machine move from the current
	// status (cancelling a delivered order, refunding a pending payment).
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrAlreadyPaid       = errors.New("order is already paid")
	ErrEmptyCart         = errors.New("cart is empty")
	// ErrNotImplemented marks payment channels that are accepted as input
	// but have no gateway integration yet.
	ErrNotImplemented       = errors.New("not implemented")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

// notFound collapses the data layer's record-not-found into the service
// taxonomy and passes everything else through.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
