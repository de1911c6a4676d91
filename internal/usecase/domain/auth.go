// Package domain contains application usecases orchestrating directory logic by credential.
package domain

import (
	"context"
	"fmt"

	"github.com/draganczukp/lldap/internal/entities"
)

// Bind verifies a user's password via the credential module.
func (u *Usecase) Bind(ctx context.Context, userID, password string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.authn.Bind(ctx, userID, password)
}

// RegisterStart opens a password registration handshake.
func (u *Usecase) RegisterStart(ctx context.Context, userID string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return "", fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	return u.authn.RegistrationStart(ctx, userID)
}

// RegisterFinish completes a password registration handshake.
func (u *Usecase) RegisterFinish(ctx context.Context, userID, token, password string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || token == "" {
		return fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}

	return u.authn.RegistrationFinish(ctx, userID, token, password)
}
