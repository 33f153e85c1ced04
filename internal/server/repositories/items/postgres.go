// Package items provides the PostgreSQL-backed repository for bucketlist items.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {

	query :=
		`INSERT INTO bucketlist_items (list_id, name, done)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, item.ListID, item.Name, item.Done).Scan(&item.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query :=
		`SELECT id, list_id, name, done FROM bucketlist_items
		 WHERE id = $1
		 `

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.ListID, &item.Name, &item.Done)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) SelectByList(ctx context.Context, listID int64) ([]*models.Item, error) {
	query :=
		`SELECT id, list_id, name, done FROM bucketlist_items
		 WHERE list_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.Done); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) error {
	query :=
		`UPDATE bucketlist_items SET name = $1, done = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Done, item.ID)
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
		`DELETE FROM bucketlist_items
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

func (r *PostgresRepository) DeleteByList(ctx context.Context, listID int64) error {
	query :=
		`DELETE FROM bucketlist_items
		 WHERE list_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, listID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
