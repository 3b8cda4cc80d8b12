// This file implements PermissionService, the append-only grant audit trail.
// Grants are a display/history side channel: creating one never changes any
// item's authorized set.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/server/models"
	"github.com/mlukash/todoshare/internal/server/repositories/repomanager"
)

// PermissionService records and lists grant audit entries.
type PermissionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewPermissionService constructs a PermissionService.
func NewPermissionService(db *sql.DB, m repomanager.RepositoryManager) *PermissionService {
	return &PermissionService{db: db, repomanager: m}
}

// Grant appends a record naming toUserID as nameTo, from fromUserID. The
// target must resolve to an existing user (common.ErrorNotFound otherwise);
// nothing is appended on failure.
func (s *PermissionService) Grant(ctx context.Context, fromUserID, toUserID, nameTo string) (*models.Permission, error) {

	if toUserID == "" || nameTo == "" {
		return nil, common.ErrorValidation
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, toUserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading target user: %w", err)
	}

	repo := s.repomanager.Permissions(s.db)

	p, err := repo.Create(ctx, &models.Permission{
		NameTo:         nameTo,
		PermissionTo:   toUserID,
		PermissionFrom: fromUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating permission: %w", err)
	}

	return p, nil
}

// ListForUser returns the records where userID is grantor or grantee.
func (s *PermissionService) ListForUser(ctx context.Context, userID string) ([]*models.Permission, error) {
	repo := s.repomanager.Permissions(s.db)

	result, err := repo.SelectForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error selecting permissions: %w", err)
	}
	return result, nil
}

// Delete removes a record unconditionally.
func (s *PermissionService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Permissions(s.db)

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting permission: %w", err)
	}
	return nil
}
