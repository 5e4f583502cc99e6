package domain

import "errors"

// Failure taxonomy shared by every workflow operation. Callers match with
// errors.Is; services wrap these with fmt.Errorf("...: %w", ...) so the
// sentinel survives while the message carries the entity involved.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrConflict          = errors.New("conflicting entity already exists")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrLocked            = errors.New("entity is locked against updates")
	ErrForbidden         = errors.New("action not permitted")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrGated             = errors.New("analytics not published")
)
