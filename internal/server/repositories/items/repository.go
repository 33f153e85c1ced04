package items

import (
	"context"

	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	// SelectByList returns the items of one list in creation order.
	SelectByList(ctx context.Context, listID int64) ([]*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error
	// DeleteByList removes every item of the list; used by the cascade on
	// list deletion.
	DeleteByList(ctx context.Context, listID int64) error
}
