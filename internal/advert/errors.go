package advert

import "errors"

var (
	// ErrMissingField is wrapped by errors for absent required keys.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidPrice is wrapped by errors for negative or non-numeric prices.
	ErrInvalidPrice = errors.New("invalid price")
)

// ValidationError reports a rejected input value.
type ValidationError struct {
	// Field is the attribute the error relates to.
	Field string
	// Message is the human-readable description.
	Message string

	kind error
}

// Error returns the message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the error kind (ErrMissingField or ErrInvalidPrice).
func (e *ValidationError) Unwrap() error {
	return e.kind
}

// IsValidation reports whether err was caused by rejected input.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func missingField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, kind: ErrMissingField}
}

func invalidPrice(message string) *ValidationError {
	return &ValidationError{Field: PriceField, Message: message, kind: ErrInvalidPrice}
}
