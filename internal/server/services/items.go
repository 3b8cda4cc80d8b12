// This file implements ItemService, the sharing engine over to-do items and
// their authorized-user sets.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlukash/todoshare/internal/common"
	"github.com/mlukash/todoshare/internal/dbx"
	"github.com/mlukash/todoshare/internal/server/models"
	"github.com/mlukash/todoshare/internal/server/repositories/repomanager"
)

// ItemService provides item CRUD plus the visibility-set operations.
// Everything that mutates an existing item checks that the caller is in the
// item's authorized set first.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewItemService constructs an ItemService.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// Create stores a new item whose authorized set is exactly {ownerID}. The
// item row and the owner membership are written in one transaction so the
// owner can list the item immediately.
func (s *ItemService) Create(ctx context.Context, text, ownerID string) (*models.Item, error) {

	if text == "" {
		return nil, common.ErrorValidation
	}

	var item *models.Item

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		created, err := repo.Insert(ctx, text)
		if err != nil {
			return fmt.Errorf("error inserting item: %w", err)
		}

		if err := repo.AddUser(ctx, created.ID, ownerID); err != nil {
			return fmt.Errorf("error adding owner: %w", err)
		}

		created.AuthorizedUsers = []string{ownerID}
		item = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListForUser returns every item whose authorized set contains userID.
//
// Self-heal: if a returned item somehow lacks the caller in its set, the
// membership is re-added with an idempotent set-add. The membership query
// itself cannot produce such a row, but the invariant "every listed item
// contains the lister" is cheap to assert and repair here.
func (s *ItemService) ListForUser(ctx context.Context, userID string) ([]*models.Item, error) {
	repo := s.repomanager.Items(s.db)

	result, err := repo.SelectForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error selecting items: %w", err)
	}

	for _, item := range result {
		if !item.HasUser(userID) {
			if err := repo.AddUser(ctx, item.ID, userID); err != nil {
				return nil, fmt.Errorf("error repairing membership: %w", err)
			}
			item.AuthorizedUsers = append(item.AuthorizedUsers, userID)
		}
	}

	return result, nil
}

// Update replaces the item's text. Fails with common.ErrorNotFound for an
// unknown id and common.ErrorForbidden when the caller is not in the item's
// authorized set.
func (s *ItemService) Update(ctx context.Context, itemID, callerID, text string) (*models.Item, error) {

	if text == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Items(s.db)

	item, err := repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading item: %w", err)
	}

	if !item.HasUser(callerID) {
		return nil, common.ErrorForbidden
	}

	if err := repo.UpdateText(ctx, itemID, text); err != nil {
		return nil, fmt.Errorf("error updating item: %w", err)
	}

	item.Text = text
	return item, nil
}

// Delete removes the item for every member. Same access rule as Update.
// Permission records referencing the participants are left alone.
func (s *ItemService) Delete(ctx context.Context, itemID, callerID string) error {

	repo := s.repomanager.Items(s.db)

	item, err := repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading item: %w", err)
	}

	if !item.HasUser(callerID) {
		return common.ErrorForbidden
	}

	if err := repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	return nil
}

// AuthorizeAll copies the caller's visibility set onto targetUserID: every
// item the caller can see gains targetUserID as a member. The source of the
// grant is always the authenticated caller. Returns the items now visible to
// the target. Idempotent.
func (s *ItemService) AuthorizeAll(ctx context.Context, callerID, targetUserID string) ([]*models.Item, error) {

	if targetUserID == "" {
		return nil, common.ErrorValidation
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, targetUserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading target user: %w", err)
	}

	repo := s.repomanager.Items(s.db)

	if err := repo.AuthorizeAll(ctx, callerID, targetUserID); err != nil {
		return nil, fmt.Errorf("error authorizing items: %w", err)
	}

	result, err := repo.SelectForUser(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("error selecting items: %w", err)
	}

	return result, nil
}
