// Package entities contains core business entities.
package entities

import "time"

// User is a directory identity record.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	FirstName    string
	LastName     string
	Avatar       []byte
	CreationDate time.Time
}

// CreateUserRequest carries the fields for a new user. Optional names default
// to empty strings; CreationDate is always server-assigned.
type CreateUserRequest struct {
	UserID      string
	Email       string
	DisplayName *string
	FirstName   *string
	LastName    *string
}

// UpdateUserRequest is a partial update: only non-nil fields are written.
// The user id itself is never updatable.
type UpdateUserRequest struct {
	UserID      string
	Email       *string
	DisplayName *string
	FirstName   *string
	LastName    *string
}

// Empty reports whether the request carries no fields to update.
func (r UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.DisplayName == nil && r.FirstName == nil && r.LastName == nil
}
