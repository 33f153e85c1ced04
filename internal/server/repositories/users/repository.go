package users

import (
	"context"

	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	RotateTokenSecret(ctx context.Context, id int64, secret string) error
}
