// Package api defines the transport DTOs of the directory HTTP surface.
package api

import "time"

// User is the transport representation of a directory user.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Avatar       []byte    `json:"avatar,omitempty"`
	CreationDate time.Time `json:"creation_date"`
}

// Group is a group with its member user ids.
type Group struct {
	GroupID     int32    `json:"group_id"`
	DisplayName string   `json:"display_name"`
	Users       []string `json:"users"`
}

// GroupSummary is the (id, display name) projection.
type GroupSummary struct {
	GroupID     int32  `json:"group_id"`
	DisplayName string `json:"display_name"`
}

// Filter is the JSON form of a filter expression tree. Op selects the
// variant; the other fields are read depending on it.
type Filter struct {
	Op      string   `json:"op"`
	Filters []Filter `json:"filters,omitempty"`
	Field   string   `json:"field,omitempty"`
	Value   string   `json:"value,omitempty"`
	Group   string   `json:"group,omitempty"`
	GroupID int32    `json:"group_id,omitempty"`
}

// Filter op values.
const (
	FilterOpAnd        = "and"
	FilterOpOr         = "or"
	FilterOpNot        = "not"
	FilterOpEquality   = "eq"
	FilterOpMemberOf   = "member_of"
	FilterOpMemberOfID = "member_of_id"
)

// ListUsersRequest optionally narrows the user listing.
type ListUsersRequest struct {
	Filter *Filter `json:"filter,omitempty"`
}

// CreateUserRequest creates a directory user.
type CreateUserRequest struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
}

// UpdateUserRequest carries only the fields to change.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
}

// CreateGroupRequest creates a group by display name.
type CreateGroupRequest struct {
	DisplayName string `json:"display_name"`
}

// UpdateGroupRequest carries only the fields to change.
type UpdateGroupRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
}

// MembershipRequest names a membership edge.
type MembershipRequest struct {
	UserID  string `json:"user_id"`
	GroupID int32  `json:"group_id"`
}

// BindRequest authenticates a user.
type BindRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// RegisterStartRequest opens a password registration handshake.
type RegisterStartRequest struct {
	UserID string `json:"user_id"`
}

// RegisterStartResponse returns the handshake token.
type RegisterStartResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// RegisterFinishRequest completes a password registration handshake.
type RegisterFinishRequest struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

// Error codes returned by the HTTP surface.
const (
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeInvalid      ErrorCode = "INVALID_ARGUMENT"
	CodeUserExists   ErrorCode = "USER_EXISTS"
	CodeGroupExists  ErrorCode = "GROUP_EXISTS"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeInternal     ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
