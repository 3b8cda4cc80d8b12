package items

import (
	"context"

	"github.com/mlukash/todoshare/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, text string) (*models.Item, error)
	AddUser(ctx context.Context, itemID, userID string) error
	GetByID(ctx context.Context, id string) (*models.Item, error)
	SelectForUser(ctx context.Context, userID string) ([]*models.Item, error)
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	AuthorizeAll(ctx context.Context, sourceUserID, targetUserID string) error
}
