// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"casa-do-pai/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	CreateMember(ctx context.Context, m entities.NewMember) (int64, error)
	MemberByID(ctx context.Context, id int64) (*entities.Member, error)
	MemberByEmail(ctx context.Context, email string) (*entities.Member, error)
	Members(ctx context.Context) ([]entities.Member, error)
	GroupMembers(ctx context.Context, groupID int64) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) error
	DeleteMember(ctx context.Context, id int64) error
	SetRecoveryToken(ctx context.Context, email, token string, expiresAt time.Time) error
}

// GroupInterface exposes group-related operations.
type GroupInterface interface {
	Groups(ctx context.Context) ([]entities.Group, error)
	GroupExists(ctx context.Context, id int64) (bool, error)
}

// LeaderInterface exposes the promote/demote state transitions.
type LeaderInterface interface {
	PromoteMember(ctx context.Context, id int64) error
	DemoteMember(ctx context.Context, id int64) error
}
