// Package domain contains application usecases orchestrating directory logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/draganczukp/lldap/internal/entities"
)

// ListUsers returns users matching the optional filter, ordered by user id.
func (u *Usecase) ListUsers(ctx context.Context, filter entities.Filter) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx, filter)
}

// UserDetails returns a single user by id.
func (u *Usecase) UserDetails(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUserDetails(ctx, userID)
}

// CreateUser creates a directory user.
func (u *Usecase) CreateUser(ctx context.Context, req entities.CreateUserRequest) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.UserID == "" {
		u.log.Errorw("failed to create user: missing user_id")
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.CreateUser(ctx, req); err != nil {
		return err
	}
	u.log.Infow("user create", "user_id", req.UserID)
	return nil
}

// UpdateUser applies a partial user update. A request with no fields set
// succeeds without reaching storage.
func (u *Usecase) UpdateUser(ctx context.Context, req entities.UpdateUserRequest) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.UserID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateUser(ctx, req)
}

// DeleteUser removes a user and its membership edges.
func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteUser(ctx, userID)
}
