package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/models"
	itemsrepo "github.com/mlukash/todoshare/internal/server/repositories/items"
	permissionsrepo "github.com/mlukash/todoshare/internal/server/repositories/permissions"
	usersrepo "github.com/mlukash/todoshare/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- in-memory users repository ---

type memUsersRepo struct {
	seq   int
	users []*models.User

	createErr error
}

func (f *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("u-%d", f.seq)
	u.CreatedAt = time.Now()
	f.users = append(f.users, u)
	return u, nil
}

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) SelectAll(ctx context.Context) ([]*models.User, error) {
	return f.users, nil
}

// --- in-memory items repository ---

type memItemsRepo struct {
	seq   int
	items []*models.Item

	addUserCalls []string // "<itemID>/<userID>" per call
}

func (f *memItemsRepo) Insert(ctx context.Context, text string) (*models.Item, error) {
	f.seq++
	item := &models.Item{ID: fmt.Sprintf("i-%d", f.seq), Text: text, CreatedAt: time.Now()}
	f.items = append(f.items, item)
	return item, nil
}

func (f *memItemsRepo) AddUser(ctx context.Context, itemID, userID string) error {
	f.addUserCalls = append(f.addUserCalls, itemID+"/"+userID)
	for _, item := range f.items {
		if item.ID == itemID {
			if !item.HasUser(userID) {
				item.AuthorizedUsers = append(item.AuthorizedUsers, userID)
			}
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memItemsRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memItemsRepo) SelectForUser(ctx context.Context, userID string) ([]*models.Item, error) {
	var result []*models.Item
	for _, item := range f.items {
		if item.HasUser(userID) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *memItemsRepo) UpdateText(ctx context.Context, id, text string) error {
	for _, item := range f.items {
		if item.ID == id {
			item.Text = text
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memItemsRepo) Delete(ctx context.Context, id string) error {
	for n, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:n], f.items[n+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *memItemsRepo) AuthorizeAll(ctx context.Context, sourceUserID, targetUserID string) error {
	for _, item := range f.items {
		if item.HasUser(sourceUserID) && !item.HasUser(targetUserID) {
			item.AuthorizedUsers = append(item.AuthorizedUsers, targetUserID)
		}
	}
	return nil
}

// --- in-memory permissions repository ---

type memPermissionsRepo struct {
	seq   int
	perms []*models.Permission

	createErr error
}

func (f *memPermissionsRepo) Create(ctx context.Context, p *models.Permission) (*models.Permission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.seq++
	p.ID = fmt.Sprintf("p-%d", f.seq)
	f.perms = append(f.perms, p)
	return p, nil
}

func (f *memPermissionsRepo) SelectForUser(ctx context.Context, userID string) ([]*models.Permission, error) {
	var result []*models.Permission
	for _, p := range f.perms {
		if p.PermissionFrom == userID || p.PermissionTo == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *memPermissionsRepo) Delete(ctx context.Context, id string) error {
	for n, p := range f.perms {
		if p.ID == id {
			f.perms = append(f.perms[:n], f.perms[n+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// --- fake repository manager ---

type fakeRepoManager struct {
	u *memUsersRepo
	i *memItemsRepo
	p *memPermissionsRepo

	itemsOverride itemsrepo.Repository
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &memUsersRepo{},
		i: &memItemsRepo{},
		p: &memPermissionsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Items(db dbx.DBTX) itemsrepo.Repository {
	if m.itemsOverride != nil {
		return m.itemsOverride
	}
	return m.i
}
func (m *fakeRepoManager) Permissions(db dbx.DBTX) permissionsrepo.Repository { return m.p }
