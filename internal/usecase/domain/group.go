// Package domain contains application usecases orchestrating directory logic by group.
package domain

import (
	"context"
	"fmt"

	"github.com/draganczukp/lldap/internal/entities"
)

// Groups lists all groups with their member lists.
func (u *Usecase) Groups(ctx context.Context) ([]entities.Group, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListGroups(ctx)
}

// GroupDetails returns a group's id and display name.
func (u *Usecase) GroupDetails(ctx context.Context, groupID int32) (*entities.GroupIDAndName, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetGroupDetails(ctx, groupID)
}

// UserGroups returns the groups a user belongs to; empty for a user with no
// memberships.
func (u *Usecase) UserGroups(ctx context.Context, userID string) ([]entities.GroupIDAndName, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUserGroups(ctx, userID)
}

// CreateGroup creates a group and returns its server-assigned id.
func (u *Usecase) CreateGroup(ctx context.Context, displayName string) (int32, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if displayName == "" {
		u.log.Errorw("failed to create group: missing display_name")
		return 0, fmt.Errorf("%w: display_name is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateGroup(ctx, displayName)
}

// UpdateGroup applies a partial group update.
func (u *Usecase) UpdateGroup(ctx context.Context, req entities.UpdateGroupRequest) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateGroup(ctx, req)
}

// DeleteGroup removes a group and its membership edges.
func (u *Usecase) DeleteGroup(ctx context.Context, groupID int32) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteGroup(ctx, groupID)
}

// AddUserToGroup inserts a membership edge.
func (u *Usecase) AddUserToGroup(ctx context.Context, userID string, groupID int32) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.AddUserToGroup(ctx, userID, groupID)
}

// RemoveUserFromGroup deletes a membership edge.
func (u *Usecase) RemoveUserFromGroup(ctx context.Context, userID string, groupID int32) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.RemoveUserFromGroup(ctx, userID, groupID)
}
