package usecase

import (
	"context"
	"time"

	"casa-do-pai/config"
	"casa-do-pai/internal/repository"
	"casa-do-pai/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	RecoveryUsecaseInterface
	MemberUsecaseInterface
	GroupUsecaseInterface
	LeaderUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, mailer domain.Mailer, cfg *config.Config, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, mailer, cfg, timeout)
}
