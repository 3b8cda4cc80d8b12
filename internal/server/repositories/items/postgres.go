// Package items provides the PostgreSQL-backed repository for to-do items
// and their per-item authorized-user sets.
//
// The authorized set lives in the item_users table, one row per (item, user).
// Every mutation of the set is an INSERT ... ON CONFLICT DO NOTHING, so
// concurrent grants of the same membership cannot produce duplicates or lost
// updates; the row either exists afterwards or it does not.
package items

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/models"
)

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert creates the item row under a fresh UUID. The authorized set starts
// empty; callers are expected to AddUser the owner in the same transaction.
func (r *PostgresRepository) Insert(ctx context.Context, text string) (*models.Item, error) {

	query :=
		`INSERT INTO todo_items (id, text)
		 VALUES ($1, $2)
		 RETURNING created_at
		 `

	item := &models.Item{ID: uuid.NewString(), Text: text}
	err := r.db.QueryRowContext(ctx, query, item.ID, text).Scan(&item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// AddUser adds userID to the item's authorized set. Idempotent: adding an
// existing member is a no-op.
func (r *PostgresRepository) AddUser(ctx context.Context, itemID, userID string) error {

	query :=
		`INSERT INTO item_users (item_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, itemID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetByID returns the item with its full authorized set, or
// common.ErrorNotFound. An item without members is unreachable here: rows
// only exist in todo_items together with at least the creator's membership.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query :=
		`SELECT i.id, i.text, i.created_at, m.user_id
		 FROM todo_items i
		 JOIN item_users m ON m.item_id = i.id
		 WHERE i.id = $1
		 ORDER BY m.user_id
		 `

	items, err := r.selectItems(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, common.ErrorNotFound
	}
	return items[0], nil
}

// SelectForUser returns every item whose authorized set contains userID,
// oldest first, each with its full authorized set.
func (r *PostgresRepository) SelectForUser(ctx context.Context, userID string) ([]*models.Item, error) {
	query :=
		`SELECT i.id, i.text, i.created_at, m.user_id
		 FROM todo_items i
		 JOIN item_users m ON m.item_id = i.id
		 WHERE i.id IN (SELECT item_id FROM item_users WHERE user_id = $1)
		 ORDER BY i.created_at, i.id, m.user_id
		 `

	return r.selectItems(ctx, query, userID)
}

// UpdateText replaces the item's text. Returns common.ErrorNotFound when no
// row matches.
func (r *PostgresRepository) UpdateText(ctx context.Context, id, text string) error {
	query :=
		`UPDATE todo_items SET text = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, text)
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

// Delete removes the item; membership rows go with it (ON DELETE CASCADE).
// Permission records are untouched.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM todo_items
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

// AuthorizeAll adds targetUserID to the authorized set of every item that
// sourceUserID can see. A single statement, idempotent under retries and
// concurrent calls.
func (r *PostgresRepository) AuthorizeAll(ctx context.Context, sourceUserID, targetUserID string) error {
	query :=
		`INSERT INTO item_users (item_id, user_id)
		 SELECT item_id, $2 FROM item_users WHERE user_id = $1
		 ON CONFLICT DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, sourceUserID, targetUserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// selectItems runs an (item row × member row) query and folds the rows into
// items with populated AuthorizedUsers, preserving query order.
func (r *PostgresRepository) selectItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	byID := map[string]*models.Item{}

	for rows.Next() {
		var (
			id, text, userID string
			createdAt        time.Time
		)
		if err := rows.Scan(&id, &text, &createdAt, &userID); err != nil {
			return nil, err
		}

		item, ok := byID[id]
		if !ok {
			item = &models.Item{ID: id, Text: text, CreatedAt: createdAt}
			byID[id] = item
			result = append(result, item)
		}
		item.AuthorizedUsers = append(item.AuthorizedUsers, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
