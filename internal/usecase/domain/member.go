// Package domain contains application Usecases orchestrating domain logic by member.
package domain

import (
	"context"
	"errors"
	"fmt"

	"casa-do-pai/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// CreateMember validates registration input, hashes the password and persists the member.
func (u *Usecase) CreateMember(ctx context.Context, m entities.NewMember) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.FullName == "" || m.Email == "" || m.Password == "" {
		return 0, fmt.Errorf("%w: nomeCompleto, email and senha are required", entities.ErrInvalidArgument)
	}
	// The registration form submits 0 as its "choose a group" placeholder.
	if m.GroupID != nil && *m.GroupID == 0 {
		return 0, fmt.Errorf("%w: idCelula must reference a group", entities.ErrInvalidArgument)
	}

	// Friendly pre-check; the unique constraint on email remains the real guard.
	if _, err := u.repo.MemberByEmail(ctx, m.Email); err == nil {
		return 0, entities.ErrEmailExists
	} else if !errors.Is(err, entities.ErrMemberNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	m.Password = string(hash)

	if m.Role == "" {
		m.Role = entities.RoleCommon
	}

	return u.repo.CreateMember(ctx, m)
}

// Member returns one member with group and leader names joined in.
func (u *Usecase) Member(ctx context.Context, id int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.MemberByID(ctx, id)
}

// Members lists every member.
func (u *Usecase) Members(ctx context.Context) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Members(ctx)
}

// GroupMembers lists the non-leader members of one group.
func (u *Usecase) GroupMembers(ctx context.Context, groupID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if groupID <= 0 {
		return nil, fmt.Errorf("%w: idCelula is required", entities.ErrInvalidArgument)
	}
	return u.repo.GroupMembers(ctx, groupID)
}

// UpdateMember applies a partial update, hashing a new password and validating
// a new group reference when present.
func (u *Usecase) UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if upd.Empty() {
		return fmt.Errorf("%w: no fields to update", entities.ErrInvalidArgument)
	}

	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
		upd.Password = nil
	}

	if upd.GroupID != nil {
		exists, err := u.repo.GroupExists(ctx, *upd.GroupID)
		if err != nil {
			return err
		}
		if !exists {
			return entities.ErrGroupNotFound
		}
	}

	return u.repo.UpdateMember(ctx, id, upd)
}

// DeleteMember removes a member together with their dependent rows.
func (u *Usecase) DeleteMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteMember(ctx, id)
}
