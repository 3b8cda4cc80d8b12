package permissions

import (
	"context"

	"github.com/mlukash/todoshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Permission) (*models.Permission, error)
	SelectForUser(ctx context.Context, userID string) ([]*models.Permission, error)
	Delete(ctx context.Context, id string) error
}
