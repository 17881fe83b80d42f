package application

import (
	"errors"
	"strings"
)

// Service-level errors. Handlers map these to HTTP statuses; anything else
// is treated as an internal failure and reported generically to the client
// while the detail goes to the operator logs.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a login response never reveals which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is distinct from generic validation so the client can
	// suggest logging in instead.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports every failed input rule at once, as a list of
// human-readable reasons.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
