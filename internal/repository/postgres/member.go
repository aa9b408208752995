package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"casa-do-pai/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertMemberQuery = `
INSERT INTO usuarios (
    nome_completo, data_nascimento, email, telefone, senha_cadastro, tipo_usuario,
    participa_celula, id_celula, concluiu_batismo, participou_cafe,
    participa_ministerio, nome_ministerio,
    curso_meu_novo_caminho, curso_vida_devocional, curso_familia_crista, curso_vida_prospera
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
RETURNING id`

	memberByEmailQuery = `
SELECT u.id, u.nome_completo, u.data_nascimento, u.email, u.telefone, u.senha_cadastro,
       u.tipo_usuario, u.participa_celula, u.id_celula, u.concluiu_batismo, u.participou_cafe,
       u.participa_ministerio, u.nome_ministerio,
       u.curso_meu_novo_caminho, u.curso_vida_devocional, u.curso_familia_crista, u.curso_vida_prospera
FROM usuarios u
WHERE u.email = $1`

	memberByIDQuery = `
SELECT u.id, u.nome_completo, u.data_nascimento, u.email, u.telefone, u.senha_cadastro,
       u.tipo_usuario, u.participa_celula, u.id_celula, u.concluiu_batismo, u.participou_cafe,
       u.participa_ministerio, u.nome_ministerio,
       u.curso_meu_novo_caminho, u.curso_vida_devocional, u.curso_familia_crista, u.curso_vida_prospera,
       c.nome_celula, l.nome_completo AS nome_lider
FROM usuarios u
LEFT JOIN celulas c ON c.id = u.id_celula
LEFT JOIN lideres_celulas lc ON lc.id_celula = u.id_celula
LEFT JOIN usuarios l ON l.id = lc.id_lider
WHERE u.id = $1`

	membersQuery = `
SELECT u.id, u.nome_completo, u.data_nascimento, u.email, u.telefone, u.senha_cadastro,
       u.tipo_usuario, u.participa_celula, u.id_celula, u.concluiu_batismo, u.participou_cafe,
       u.participa_ministerio, u.nome_ministerio,
       u.curso_meu_novo_caminho, u.curso_vida_devocional, u.curso_familia_crista, u.curso_vida_prospera,
       c.nome_celula
FROM usuarios u
LEFT JOIN celulas c ON c.id = u.id_celula
ORDER BY u.nome_completo`

	groupMembersQuery = `
SELECT u.id, u.nome_completo, u.data_nascimento, u.email, u.telefone, u.senha_cadastro,
       u.tipo_usuario, u.participa_celula, u.id_celula, u.concluiu_batismo, u.participou_cafe,
       u.participa_ministerio, u.nome_ministerio,
       u.curso_meu_novo_caminho, u.curso_vida_devocional, u.curso_familia_crista, u.curso_vida_prospera,
       c.nome_celula
FROM usuarios u
LEFT JOIN celulas c ON c.id = u.id_celula
WHERE u.id_celula = $1 AND u.tipo_usuario = 'UsuarioComum'
ORDER BY u.nome_completo`

	deleteMemberGroupsQuery     = `DELETE FROM usuarios_celulas WHERE id_usuario = $1`
	deleteMemberMinistriesQuery = `DELETE FROM usuarios_ministerios WHERE id_usuario = $1`
	deleteMemberLeadershipQuery = `DELETE FROM lideres_celulas WHERE id_lider = $1`
	deleteMemberQuery           = `DELETE FROM usuarios WHERE id = $1`

	setRecoveryTokenQuery = `UPDATE usuarios SET token_recuperacao = $1, expira_token = $2 WHERE email = $3`
)

// uniqueViolation is the postgres error code for constraint 23505.
const uniqueViolation = "23505"

// CreateMember inserts a registration row and returns the generated id.
func (p *Postgres) CreateMember(ctx context.Context, m entities.NewMember) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertMemberQuery,
		m.FullName, m.BirthDate, m.Email, m.Phone, m.Password, m.Role,
		m.InGroup, m.GroupID, m.Baptized, m.AttendedCoffee,
		m.InMinistry, m.MinistryName,
		m.Courses.MeuNovoCaminho, m.Courses.VidaDevocional, m.Courses.FamiliaCrista, m.Courses.VidaProspera,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, entities.ErrEmailExists
		}
		p.log.Errorw("failed to insert member", "error", err, "email", m.Email)
		return 0, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", id)
	return id, nil
}

// MemberByEmail fetches a single member row by unique email.
func (p *Postgres) MemberByEmail(ctx context.Context, email string) (*entities.Member, error) {
	var m entities.Member
	err := p.db.QueryRow(ctx, memberByEmailQuery, email).Scan(
		&m.ID, &m.FullName, &m.BirthDate, &m.Email, &m.Phone, &m.PasswordHash,
		&m.Role, &m.InGroup, &m.GroupID, &m.Baptized, &m.AttendedCoffee,
		&m.InMinistry, &m.MinistryName,
		&m.Courses.MeuNovoCaminho, &m.Courses.VidaDevocional, &m.Courses.FamiliaCrista, &m.Courses.VidaProspera,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("member by email: %w", err)
	}
	return &m, nil
}

// MemberByID fetches a member with group name and current leader name joined in.
func (p *Postgres) MemberByID(ctx context.Context, id int64) (*entities.Member, error) {
	var m entities.Member
	err := p.db.QueryRow(ctx, memberByIDQuery, id).Scan(
		&m.ID, &m.FullName, &m.BirthDate, &m.Email, &m.Phone, &m.PasswordHash,
		&m.Role, &m.InGroup, &m.GroupID, &m.Baptized, &m.AttendedCoffee,
		&m.InMinistry, &m.MinistryName,
		&m.Courses.MeuNovoCaminho, &m.Courses.VidaDevocional, &m.Courses.FamiliaCrista, &m.Courses.VidaProspera,
		&m.GroupName, &m.LeaderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("member by id: %w", err)
	}
	return &m, nil
}

// Members lists all members with their group names.
func (p *Postgres) Members(ctx context.Context) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, membersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	return p.collectMembers(rows)
}

// GroupMembers lists non-leader members of a single group.
func (p *Postgres) GroupMembers(ctx context.Context, groupID int64) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, groupMembersQuery, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()

	members, err := p.collectMembers(rows)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, entities.ErrMemberNotFound
	}
	return members, nil
}

func (p *Postgres) collectMembers(rows pgx.Rows) ([]entities.Member, error) {
	members := make([]entities.Member, 0)
	for rows.Next() {
		var m entities.Member
		if err := rows.Scan(
			&m.ID, &m.FullName, &m.BirthDate, &m.Email, &m.Phone, &m.PasswordHash,
			&m.Role, &m.InGroup, &m.GroupID, &m.Baptized, &m.AttendedCoffee,
			&m.InMinistry, &m.MinistryName,
			&m.Courses.MeuNovoCaminho, &m.Courses.VidaDevocional, &m.Courses.FamiliaCrista, &m.Courses.VidaProspera,
			&m.GroupName,
		); err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// UpdateMember applies a partial update built only from the supplied fields.
func (p *Postgres) UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) error {
	sets := make([]string, 0, 16)
	args := make([]any, 0, 16)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		add("nome_completo", *upd.FullName)
	}
	if upd.BirthDate != nil {
		add("data_nascimento", *upd.BirthDate)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("telefone", *upd.Phone)
	}
	if upd.PasswordHash != nil {
		add("senha_cadastro", *upd.PasswordHash)
	}
	if upd.InGroup != nil {
		add("participa_celula", *upd.InGroup)
	}
	if upd.GroupID != nil {
		add("id_celula", *upd.GroupID)
	}
	if upd.Baptized != nil {
		add("concluiu_batismo", *upd.Baptized)
	}
	if upd.AttendedCoffee != nil {
		add("participou_cafe", *upd.AttendedCoffee)
	}
	if upd.InMinistry != nil {
		add("participa_ministerio", *upd.InMinistry)
	}
	if upd.MinistryName != nil {
		add("nome_ministerio", *upd.MinistryName)
	}
	if upd.Courses.MeuNovoCaminho != nil {
		add("curso_meu_novo_caminho", *upd.Courses.MeuNovoCaminho)
	}
	if upd.Courses.VidaDevocional != nil {
		add("curso_vida_devocional", *upd.Courses.VidaDevocional)
	}
	if upd.Courses.FamiliaCrista != nil {
		add("curso_familia_crista", *upd.Courses.FamiliaCrista)
	}
	if upd.Courses.VidaProspera != nil {
		add("curso_vida_prospera", *upd.Courses.VidaProspera)
	}

	if len(sets) == 0 {
		return fmt.Errorf("%w: no fields to update", entities.ErrInvalidArgument)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE usuarios SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.ErrEmailExists
		}
		p.log.Errorw("failed to update member", "error", err, "member_id", id)
		return fmt.Errorf("update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member updated", "member_id", id, "fields", len(sets))
	return nil
}

// DeleteMember removes the member and every dependent row in one transaction.
func (p *Postgres) DeleteMember(ctx context.Context, id int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range []string{deleteMemberGroupsQuery, deleteMemberMinistriesQuery, deleteMemberLeadershipQuery} {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return fmt.Errorf("delete member references: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member deleted", "member_id", id)
	return nil
}

// SetRecoveryToken stores a recovery token with its expiry on the member row.
func (p *Postgres) SetRecoveryToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	tag, err := p.db.Exec(ctx, setRecoveryTokenQuery, token, expiresAt, email)
	if err != nil {
		p.log.Errorw("failed to set recovery token", "error", err)
		return fmt.Errorf("set recovery token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEmailNotRegistered
	}
	return nil
}
