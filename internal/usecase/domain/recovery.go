// Package domain contains application Usecases orchestrating domain logic by password recovery.
package domain

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"casa-do-pai/internal/entities"
)

const recoveryTokenTTL = time.Hour

// RequestPasswordRecovery issues a recovery token and mails the reset link.
func (u *Usecase) RequestPasswordRecovery(ctx context.Context, email string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	m, err := u.repo.MemberByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := newRecoveryToken()
	if err != nil {
		return fmt.Errorf("generate recovery token: %w", err)
	}

	if err := u.repo.SetRecoveryToken(ctx, m.Email, token, time.Now().Add(recoveryTokenTTL)); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/redefinir-senha?token=%s", u.resetBaseURL, token)
	if err := u.mailer.SendRecoveryEmail(ctx, m.Email, link); err != nil {
		u.log.Errorw("failed to dispatch recovery mail", "error", err)
		return fmt.Errorf("%w: %v", entities.ErrMailDelivery, err)
	}

	return nil
}

// newRecoveryToken returns a 32-char random hex token.
func newRecoveryToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
