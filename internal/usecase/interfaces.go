package usecase

import (
	"context"

	"github.com/draganczukp/lldap/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context, filter entities.Filter) ([]entities.User, error)
	UserDetails(ctx context.Context, userID string) (*entities.User, error)
	CreateUser(ctx context.Context, req entities.CreateUserRequest) error
	UpdateUser(ctx context.Context, req entities.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

// GroupUsecaseInterface abstracts group and membership operations.
type GroupUsecaseInterface interface {
	Groups(ctx context.Context) ([]entities.Group, error)
	GroupDetails(ctx context.Context, groupID int32) (*entities.GroupIDAndName, error)
	UserGroups(ctx context.Context, userID string) ([]entities.GroupIDAndName, error)
	CreateGroup(ctx context.Context, displayName string) (int32, error)
	UpdateGroup(ctx context.Context, req entities.UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, groupID int32) error
	AddUserToGroup(ctx context.Context, userID string, groupID int32) error
	RemoveUserFromGroup(ctx context.Context, userID string, groupID int32) error
}

// AuthUsecaseInterface abstracts the credential lifecycle operations.
type AuthUsecaseInterface interface {
	Bind(ctx context.Context, userID, password string) error
	RegisterStart(ctx context.Context, userID string) (string, error)
	RegisterFinish(ctx context.Context, userID, token, password string) error
}
