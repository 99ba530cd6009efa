package types

import "errors"

var (
	ErrRequestNotFound  = errors.New("help request not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateRole    = errors.New("role already granted")
	ErrRequestClosed    = errors.New("help request is closed")
)
