package lists

import (
	"context"

	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, list *models.List) (*models.List, error)
	GetByID(ctx context.Context, id int64) (*models.List, error)
	// SelectByOwner returns the owner's lists in creation order, skipping
	// offset rows and returning at most limit rows.
	SelectByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.List, error)
	// SelectAllByOwner returns every list of the owner in creation order.
	SelectAllByOwner(ctx context.Context, ownerID int64) ([]*models.List, error)
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
