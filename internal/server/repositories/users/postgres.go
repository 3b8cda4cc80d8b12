// Package users provides the PostgreSQL-backed repository for account
// records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user under a fresh UUID. The email is stored
// lowercased; a duplicate email (case-insensitive) yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, user_name, family_name, email, password_hash, sex, color, age)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	user.ID = uuid.NewString()
	user.Email = strings.ToLower(user.Email)

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.UserName, user.FamilyName, user.Email, user.PasswordHash,
		user.Sex, user.Color, user.Age).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByEmail looks a user up by email, case-insensitively.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, user_name, family_name, email, password_hash, sex, color, age, created_at
		 FROM users
		 WHERE email = lower($1)
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID looks a user up by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, user_name, family_name, email, password_hash, sex, color, age, created_at
		 FROM users
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// SelectAll returns every user, ordered by creation time.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, user_name, family_name, email, password_hash, sex, color, age, created_at
		 FROM users
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.UserName, &user.FamilyName, &user.Email,
			&user.PasswordHash, &user.Sex, &user.Color, &user.Age, &user.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.UserName, &user.FamilyName, &user.Email,
		&user.PasswordHash, &user.Sex, &user.Color, &user.Age, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
