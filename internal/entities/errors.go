// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrGroupNotFound signals missing group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrUserExists signals user id conflict on creation.
	ErrUserExists = errors.New("user exists")
	// ErrGroupExists signals group display name conflict on creation.
	ErrGroupExists = errors.New("group exists")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFilter signals a malformed filter expression from transport.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrAuthenticationFailed signals a rejected bind or registration.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
