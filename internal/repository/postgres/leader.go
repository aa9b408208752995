package postgres

import (
	"context"
	"errors"
	"fmt"

	"casa-do-pai/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectForPromoteQuery = `SELECT tipo_usuario, id_celula FROM usuarios WHERE id = $1 FOR UPDATE`
	selectForDemoteQuery  = `SELECT id FROM usuarios WHERE id = $1 AND tipo_usuario = 'LiderCelula' FOR UPDATE`
	setRoleQuery          = `UPDATE usuarios SET tipo_usuario = $1 WHERE id = $2`
	insertLeadershipQuery = `INSERT INTO lideres_celulas (id_lider, id_celula, data_inicio) VALUES ($1, $2, CURRENT_DATE)`
	deleteLeadershipQuery = `DELETE FROM lideres_celulas WHERE id_lider = $1`
)

// PromoteMember flips a member to leader and records the leadership, atomically.
// Guards: the member must exist, must not already lead, and must belong to a group.
func (p *Postgres) PromoteMember(ctx context.Context, id int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var role entities.Role
	var groupID *int64
	if err := tx.QueryRow(ctx, selectForPromoteQuery, id).Scan(&role, &groupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrMemberNotFound
		}
		return fmt.Errorf("promote lookup: %w", err)
	}

	if role == entities.RoleLeader {
		return entities.ErrAlreadyLeader
	}
	if groupID == nil {
		return entities.ErrNoGroupAssigned
	}

	if _, err := tx.Exec(ctx, setRoleQuery, entities.RoleLeader, id); err != nil {
		return fmt.Errorf("promote role update: %w", err)
	}
	if _, err := tx.Exec(ctx, insertLeadershipQuery, id, *groupID); err != nil {
		return fmt.Errorf("insert leadership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member promoted", "member_id", id, "group_id", *groupID)
	return nil
}

// DemoteMember resets a leader to a regular member and drops the leadership, atomically.
func (p *Postgres) DemoteMember(ctx context.Context, id int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var leaderID int64
	if err := tx.QueryRow(ctx, selectForDemoteQuery, id).Scan(&leaderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrLeaderNotFound
		}
		return fmt.Errorf("demote lookup: %w", err)
	}

	if _, err := tx.Exec(ctx, setRoleQuery, entities.RoleCommon, id); err != nil {
		return fmt.Errorf("demote role update: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteLeadershipQuery, id); err != nil {
		return fmt.Errorf("delete leadership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("leader demoted", "member_id", id)
	return nil
}
