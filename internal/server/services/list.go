// This file implements ListService: ownership-checked CRUD over bucketlists
// plus the pagination and search semantics of the listing endpoint.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	"github.com/dmitrijs2005/bucketlist/internal/server/guard"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/repomanager"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListQuery carries the normalized listing parameters.
type ListQuery struct {
	Limit     int
	Page      int
	Search    string
	HasSearch bool
}

// ParseListQuery normalizes the raw query values of the listing endpoint.
// A non-numeric or out-of-range limit silently falls back to the default or
// is clamped to [1,100]; a non-numeric or non-positive page falls back to 1.
// These fallbacks never produce an error.
func ParseListQuery(limitRaw, pageRaw, search string, hasSearch bool) ListQuery {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}

	return ListQuery{Limit: limit, Page: page, Search: search, HasSearch: hasSearch}
}

// ListService implements list CRUD, pagination, and search. All reads and
// mutations go through the ownership guard: a list that exists but belongs to
// someone else is reported exactly like a missing one.
type ListService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewListService constructs a ListService bound to the given repositories.
func NewListService(db *sql.DB, m repomanager.RepositoryManager) *ListService {
	return &ListService{db: db, repomanager: m}
}

// List returns the user's lists. When a search term is present it overrides
// pagination entirely: every owned list whose name contains the term as a
// case-sensitive substring is returned, regardless of limit and page. Without
// a search term the owned set is paginated in creation order.
func (s *ListService) List(ctx context.Context, userID int64, q ListQuery) ([]*models.List, error) {
	repo := s.repomanager.Lists(s.db)

	if q.HasSearch {
		all, err := repo.SelectAllByOwner(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error selecting lists: %w", err)
		}
		result := make([]*models.List, 0, len(all))
		for _, list := range all {
			if strings.Contains(list.Name, q.Search) {
				result = append(result, list)
			}
		}
		return result, nil
	}

	offset := (q.Page - 1) * q.Limit
	result, err := repo.SelectByOwner(ctx, userID, offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("error selecting lists: %w", err)
	}
	return result, nil
}

// Create makes a new list owned by userID and returns it. Names need not be
// unique. An empty name fails with ErrorValidation.
func (s *ListService) Create(ctx context.Context, userID int64, name string) (*models.List, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	list := &models.List{Name: name, OwnerID: userID}
	created, err := s.repomanager.Lists(s.db).Create(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}
	return created, nil
}

// Get returns the list with its items, or ErrorNotFound if it is absent or
// owned by someone else.
func (s *ListService) Get(ctx context.Context, userID, listID int64) (*models.List, error) {
	list, err := s.getOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Items(s.db).SelectByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("error selecting items: %w", err)
	}
	list.Items = items
	return list, nil
}

// Rename changes the list's name; only the name is mutable through this path.
func (s *ListService) Rename(ctx context.Context, userID, listID int64, name string) (*models.List, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	list, err := s.getOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if err := s.repomanager.Lists(s.db).UpdateName(ctx, listID, name); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error renaming list: %w", err)
	}
	list.Name = name
	return list, nil
}

// Delete removes the list and, in the same transaction, every item that
// belongs to it, so no orphaned items survive the cascade.
func (s *ListService) Delete(ctx context.Context, userID, listID int64) error {
	if _, err := s.getOwned(ctx, userID, listID); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Items(tx).DeleteByList(ctx, listID); err != nil {
			return err
		}
		return s.repomanager.Lists(tx).Delete(ctx, listID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting list: %w", err)
	}
	return nil
}

// getOwned fetches a list and applies the ownership guard. Absence and lack
// of permission are indistinguishable to the caller.
func (s *ListService) getOwned(ctx context.Context, userID, listID int64) (*models.List, error) {
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
