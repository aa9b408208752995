package postgres

import (
	"context"
	"fmt"

	"casa-do-pai/internal/entities"
)

const (
	groupsQuery      = `SELECT id, nome_celula FROM celulas ORDER BY nome_celula`
	groupExistsQuery = `SELECT EXISTS(SELECT 1 FROM celulas WHERE id = $1)`
)

// Groups lists all groups; they are static reference data.
func (p *Postgres) Groups(ctx context.Context) ([]entities.Group, error) {
	rows, err := p.db.Query(ctx, groupsQuery)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]entities.Group, 0)
	for rows.Next() {
		var g entities.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			p.log.Errorw("failed to scan group", "error", err)
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

// GroupExists reports whether a group id references a real group.
func (p *Postgres) GroupExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, groupExistsQuery, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("group exists: %w", err)
	}
	return exists, nil
}
