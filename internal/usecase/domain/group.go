// Package domain contains application Usecases orchestrating domain logic by group.
package domain

import (
	"context"

	"casa-do-pai/internal/entities"
)

// Groups returns all groups.
func (u *Usecase) Groups(ctx context.Context) ([]entities.Group, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Groups(ctx)
}
