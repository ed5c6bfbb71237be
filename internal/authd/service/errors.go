package service

import "errors"

// Client errors are expected, recoverable-by-the-caller conditions. The
// HTTP boundary maps exactly this set to 400 responses carrying the
// message verbatim; anything else propagates as a server fault.
var (
	ErrEmailExists      = errors.New("email already exist")
	ErrAccountNotFound  = errors.New("account not found")
	ErrInactiveAccount  = errors.New("inactive account")
	ErrAlreadyActivated = errors.New("account is already activated")
	ErrInvalidOTP       = errors.New("invalid OTP")
	ErrInvalidToken     = errors.New("invalid token")
)

var clientErrors = []error{
	ErrEmailExists,
	ErrAccountNotFound,
	ErrInactiveAccount,
	ErrAlreadyActivated,
	ErrInvalidOTP,
	ErrInvalidToken,
}

// IsClientError reports whether err belongs to the client-error kind.
func IsClientError(err error) bool {
	for _, ce := range clientErrors {
		if errors.Is(err, ce) {
			return true
		}
	}
	return false
}
