// Package permissions provides the PostgreSQL-backed repository for grant
// audit records.
package permissions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/models"
)

// PostgresRepository implements permission storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a grant record under a fresh UUID.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Permission) (*models.Permission, error) {

	query :=
		`INSERT INTO permissions (id, name_to, permission_to, permission_from)
		 VALUES ($1, $2, $3, $4)
		 `

	p.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.NameTo, p.PermissionTo, p.PermissionFrom)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// SelectForUser returns the records where userID is grantor or grantee.
func (r *PostgresRepository) SelectForUser(ctx context.Context, userID string) ([]*models.Permission, error) {
	query :=
		`SELECT id, name_to, permission_to, permission_from
		 FROM permissions
		 WHERE permission_from = $1 OR permission_to = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select permissions: %w", err)
	}
	defer rows.Close()

	var result []*models.Permission
	for rows.Next() {
		p := &models.Permission{}
		if err := rows.Scan(&p.ID, &p.NameTo, &p.PermissionTo, &p.PermissionFrom); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the record unconditionally. Returns common.ErrorNotFound
// when no row matches.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM permissions
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
