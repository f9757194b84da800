package user

import "errors"

// Registration validation errors. Messages are shown to the user as-is.
var (
	ErrMissingField = errors.New("All fields are required.")
	ErrInvalidDate  = errors.New("Please enter a valid date of birth.")
	ErrTooYoung     = errors.New("You must be at least 10 years old.")
	ErrTooOld       = errors.New("Please enter a realistic age (less than 100 years).")
)

// ErrNotRegistered is returned when no profile has been stored yet
var ErrNotRegistered = errors.New("no user registered")

// IsValidation reports whether err is one of the registration validation errors
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrTooYoung) ||
		errors.Is(err, ErrTooOld)
}
