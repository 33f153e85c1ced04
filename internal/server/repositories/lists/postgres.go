// Package lists provides the PostgreSQL-backed repository for bucketlists.
package lists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

// PostgresRepository implements list storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, list *models.List) (*models.List, error) {

	query :=
		`INSERT INTO bucketlists (name, owner_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, list.Name, list.OwnerID).Scan(&list.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.List, error) {
	query :=
		`SELECT id, name, owner_id FROM bucketlists
		 WHERE id = $1
		 `

	list := &models.List{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&list.ID, &list.Name, &list.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) SelectByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.List, error) {
	query :=
		`SELECT id, name, owner_id FROM bucketlists
		 WHERE owner_id = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3
		 `

	return r.selectLists(ctx, query, ownerID, limit, offset)
}

func (r *PostgresRepository) SelectAllByOwner(ctx context.Context, ownerID int64) ([]*models.List, error) {
	query :=
		`SELECT id, name, owner_id FROM bucketlists
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	return r.selectLists(ctx, query, ownerID)
}

func (r *PostgresRepository) selectLists(ctx context.Context, query string, args ...any) ([]*models.List, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select lists: %w", err)
	}
	defer rows.Close()

	var result []*models.List
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.Name, &list.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query :=
		`UPDATE bucketlists SET name = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM bucketlists
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
