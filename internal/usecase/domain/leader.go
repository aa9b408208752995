// Package domain contains application Usecases orchestrating domain logic by leadership.
package domain

import (
	"context"
	"fmt"

	"casa-do-pai/internal/entities"
)

// PromoteMember promotes a member to group leader. The existence, role and
// group-assignment guards run inside the repository transaction.
func (u *Usecase) PromoteMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.PromoteMember(ctx, id)
}

// DemoteMember resets a group leader back to a regular member.
func (u *Usecase) DemoteMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DemoteMember(ctx, id)
}
