// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/draganczukp/lldap/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context, filter entities.Filter) ([]entities.User, error)
	GetUserDetails(ctx context.Context, userID string) (*entities.User, error)
	CreateUser(ctx context.Context, req entities.CreateUserRequest) error
	UpdateUser(ctx context.Context, req entities.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

// GroupInterface exposes group-related operations.
type GroupInterface interface {
	ListGroups(ctx context.Context) ([]entities.Group, error)
	GetGroupDetails(ctx context.Context, groupID int32) (*entities.GroupIDAndName, error)
	GetUserGroups(ctx context.Context, userID string) ([]entities.GroupIDAndName, error)
	CreateGroup(ctx context.Context, displayName string) (int32, error)
	UpdateGroup(ctx context.Context, req entities.UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, groupID int32) error
}

// MembershipInterface exposes membership edge operations.
type MembershipInterface interface {
	AddUserToGroup(ctx context.Context, userID string, groupID int32) error
	RemoveUserFromGroup(ctx context.Context, userID string, groupID int32) error
}

// CredentialInterface exposes password-record storage for the credential module.
type CredentialInterface interface {
	UpsertCredential(ctx context.Context, userID string, passwordHash []byte) error
	GetCredential(ctx context.Context, userID string) ([]byte, error)
}
