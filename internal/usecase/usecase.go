package usecase

import (
	"context"
	"time"

	"github.com/draganczukp/lldap/internal/repository"
	"github.com/draganczukp/lldap/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	GroupUsecaseInterface
	AuthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, authn domain.Authenticator, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, authn, timeout)
}
