package moderation

import (
	"errors"
	"fmt"

	"helpbridge/pkg/types"
)

var (
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateRole       = errors.New("user already has this role")
	ErrRequestClosed       = errors.New("request is closed")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrInvalidRole         = errors.New("invalid role")
	ErrOperationInFlight   = errors.New("another operation on this request is still running")
)

// StoreError is any data store failure that is not one of the typed
// outcomes above, connectivity and timeouts included.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ReloadError reports that a mutation went through but the collection could
// not be fetched again afterwards.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("reload: %v", e.Err)
}

func (e *ReloadError) Unwrap() error {
	return e.Err
}

// classify maps an error returned by the data store into the moderation
// error taxonomy.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrRequestNotFound), errors.Is(err, types.ErrProfileNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, types.ErrDuplicateRole):
		return fmt.Errorf("%s: %w", op, ErrDuplicateRole)
	case errors.Is(err, types.ErrRequestClosed):
		return fmt.Errorf("%s: %w", op, ErrRequestClosed)
	default:
		return &StoreError{Op: op, Err: err}
	}
}
