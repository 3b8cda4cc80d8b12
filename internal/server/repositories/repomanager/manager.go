package repomanager

import (
	"context"
	"database/sql"

	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/repositories/items"
	"github.com/mlukash/todoshare/internal/server/repositories/permissions"
	"github.com/mlukash/todoshare/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	Permissions(db dbx.DBTX) permissions.Repository
}
