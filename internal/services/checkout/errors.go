package checkout

import "errors"

// Session errors. Validation failures are not errors: they populate the
// status error map and block the transition instead.
var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrProcessing      = errors.New("payment is processing")
	ErrNotAtReview     = errors.New("not at the review step")
	ErrAtReview        = errors.New("already at the review step")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownField    = errors.New("unknown form field")
	ErrAbandoned       = errors.New("checkout session abandoned")
)
