package registration

import "errors"

// ErrInvalidInput indicates the registration request failed validation
// before any collaborator was called.
var ErrInvalidInput = errors.New("invalid registration input")
