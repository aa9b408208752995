package domain

import (
	"context"
	"time"

	"casa-do-pai/config"
	"casa-do-pai/internal/repository"

	"go.uber.org/zap"
)

// Mailer abstracts the outgoing mail collaborator.
type Mailer interface {
	SendRecoveryEmail(ctx context.Context, to, link string) error
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	repo          repository.Repository
	mailer        Mailer
	adminLogin    string
	adminPassword string
	resetBaseURL  string
	timeout       time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	mailer Mailer,
	cfg *config.Config,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:           ctx,
		log:           log,
		repo:          repo,
		mailer:        mailer,
		adminLogin:    cfg.Admin.Login,
		adminPassword: cfg.Admin.Password,
		resetBaseURL:  cfg.SMTP.ResetBaseURL,
		timeout:       timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
