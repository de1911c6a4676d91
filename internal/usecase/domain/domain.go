// Package domain contains application usecases orchestrating directory logic.
package domain

import (
	"context"
	"time"

	"github.com/draganczukp/lldap/internal/repository"

	"go.uber.org/zap"
)

// Authenticator is the credential module consumed by the facade: three
// opaque operations keyed by user id that can fail with an authentication
// error.
type Authenticator interface {
	Bind(ctx context.Context, userID, password string) error
	RegistrationStart(ctx context.Context, userID string) (string, error)
	RegistrationFinish(ctx context.Context, userID, token, password string) error
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	authn   Authenticator
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	authn Authenticator,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		authn:   authn,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
