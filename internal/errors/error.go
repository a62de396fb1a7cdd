package errors

import (
	"errors"
	"fmt"
)

// ErrValidation marks failures the caller can fix before resubmitting.
// Controllers map anything wrapping it to a client-error response; every
// other failure is a server error.
var ErrValidation = errors.New("validation failed")

var (
	ErrCartEmpty     = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrMissingFields = fmt.Errorf("%w: missing required fields", ErrValidation)

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
