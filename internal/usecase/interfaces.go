package usecase

import (
	"context"

	"casa-do-pai/internal/entities"
)

// AuthUsecaseInterface abstracts credential verification for the delivery layer.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, email, password string) (*entities.Profile, error)
}

// RecoveryUsecaseInterface abstracts the password-recovery request flow.
type RecoveryUsecaseInterface interface {
	RequestPasswordRecovery(ctx context.Context, email string) error
}

// MemberUsecaseInterface abstracts member CRUD operations.
type MemberUsecaseInterface interface {
	CreateMember(ctx context.Context, m entities.NewMember) (int64, error)
	Member(ctx context.Context, id int64) (*entities.Member, error)
	Members(ctx context.Context) ([]entities.Member, error)
	GroupMembers(ctx context.Context, groupID int64) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) error
	DeleteMember(ctx context.Context, id int64) error
}

// GroupUsecaseInterface abstracts group listing.
type GroupUsecaseInterface interface {
	Groups(ctx context.Context) ([]entities.Group, error)
}

// LeaderUsecaseInterface abstracts the promote/demote transitions.
type LeaderUsecaseInterface interface {
	PromoteMember(ctx context.Context, id int64) error
	DemoteMember(ctx context.Context, id int64) error
}
