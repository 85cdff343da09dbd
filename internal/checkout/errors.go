package checkout

import "errors"

var (
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")
)

// MissingFieldError names the checkout form field that was blank.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return e.Field + " is required"
}

// PaymentDeclinedError carries the gateway's decline message. The cart
// is left untouched when this is returned.
type PaymentDeclinedError struct {
	Message string
}

func (e PaymentDeclinedError) Error() string {
	return "payment declined: " + e.Message
}
