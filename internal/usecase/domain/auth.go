// Package domain contains application Usecases orchestrating domain logic by authentication.
package domain

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"casa-do-pai/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and returns the normalized profile.
// The configured administrative identity bypasses the member lookup entirely
// and never touches a database row.
func (u *Usecase) Login(ctx context.Context, email, password string) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and senha are required", entities.ErrInvalidArgument)
	}

	if subtle.ConstantTimeCompare([]byte(email), []byte(u.adminLogin)) == 1 {
		if subtle.ConstantTimeCompare([]byte(password), []byte(u.adminPassword)) != 1 {
			return nil, entities.ErrInvalidCredentials
		}
		return &entities.Profile{Name: u.adminLogin, Role: entities.RoleAdmin}, nil
	}

	m, err := u.repo.MemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrMemberNotFound) {
			return nil, entities.ErrEmailNotRegistered
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, entities.ErrInvalidCredentials
	}

	id := m.ID
	return &entities.Profile{
		ID:      &id,
		Name:    m.FullName,
		Role:    m.Role,
		GroupID: m.GroupID,
	}, nil
}
