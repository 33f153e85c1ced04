// This file implements ItemService: creation, partial update, and deletion
// of items nested under an owned list.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/server/guard"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/repomanager"
)

// UpdateItemParams is a partial update: nil fields are left untouched.
type UpdateItemParams struct {
	Name *string
	Done *string
}

// ItemService implements item operations. Items have no owner field of their
// own; every operation first resolves the parent list and applies the
// ownership guard, and any failure is reported as ErrorNotFound.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewItemService constructs an ItemService bound to the given repositories.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// Create adds an item to an owned list, with done defaulted to "False", and
// returns the updated parent list including its items.
func (s *ItemService) Create(ctx context.Context, userID, listID int64, name string) (*models.List, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	list, err := s.getOwnedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{ListID: listID, Name: name, Done: models.DoneFalse}
	if _, err := s.repomanager.Items(s.db).Create(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}

	items, err := s.repomanager.Items(s.db).SelectByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("error selecting items: %w", err)
	}
	list.Items = items
	return list, nil
}

// Update applies the present fields of the patch to an item of an owned
// list and returns the updated item. A done value other than the literals
// "True"/"False" is stored as "False" rather than rejected.
func (s *ItemService) Update(ctx context.Context, userID, listID, itemID int64, patch UpdateItemParams) (*models.Item, error) {
	item, err := s.getOwnedItem(ctx, userID, listID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Done != nil {
		item.Done = coerceDone(*patch.Done)
	}

	if err := s.repomanager.Items(s.db).Update(ctx, item); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating item: %w", err)
	}
	return item, nil
}

// Delete removes an item of an owned list.
func (s *ItemService) Delete(ctx context.Context, userID, listID, itemID int64) error {
	item, err := s.getOwnedItem(ctx, userID, listID, itemID)
	if err != nil {
		return err
	}

	if err := s.repomanager.Items(s.db).Delete(ctx, item.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting item: %w", err)
	}
	return nil
}

func (s *ItemService) getOwnedList(ctx context.Context, userID, listID int64) (*models.List, error) {
	list, err := s.repomanager.Lists(s.db).GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error selecting list: %w", err)
	}
	if !guard.CanAccessList(userID, list) {
		return nil, common.ErrorNotFound
	}
	return list, nil
}

func (s *ItemService) getOwnedItem(ctx context.Context, userID, listID, itemID int64) (*models.Item, error) {
	list, err := s.getOwnedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	item, err := s.repomanager.Items(s.db).GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error selecting item: %w", err)
	}
	if !guard.CanAccessItem(userID, item, list) {
		return nil, common.ErrorNotFound
	}
	return item, nil
}

func coerceDone(v string) string {
	if v == models.DoneTrue || v == models.DoneFalse {
		return v
	}
	return models.DoneFalse
}
