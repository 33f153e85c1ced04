package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	itemsrepo "github.com/dmitrijs2005/bucketlist/internal/server/repositories/items"
	listsrepo "github.com/dmitrijs2005/bucketlist/internal/server/repositories/lists"
	usersrepo "github.com/dmitrijs2005/bucketlist/internal/server/repositories/users"

	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

// --- in-memory fakes shared by the service tests ---

type fakeUsersRepo struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.users {
		if existing.UserName == u.UserName {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUserName(ctx context.Context, name string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.UserName == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) RotateTokenSecret(ctx context.Context, id int64, secret string) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.TokenSecret = secret
	return nil
}

type fakeListsRepo struct {
	lists  map[int64]*models.List
	nextID int64
	err    error
}

func newFakeListsRepo() *fakeListsRepo {
	return &fakeListsRepo{lists: make(map[int64]*models.List)}
}

func (f *fakeListsRepo) Create(ctx context.Context, l *models.List) (*models.List, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	l.ID = f.nextID
	f.lists[l.ID] = l
	return l, nil
}

func (f *fakeListsRepo) GetByID(ctx context.Context, id int64) (*models.List, error) {
	if f.err != nil {
		return nil, f.err
	}
	l, ok := f.lists[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListsRepo) owned(ownerID int64) []*models.List {
	var result []*models.List
	for _, l := range f.lists {
		if l.OwnerID == ownerID {
			cp := *l
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (f *fakeListsRepo) SelectByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.List, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.owned(ownerID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeListsRepo) SelectAllByOwner(ctx context.Context, ownerID int64) ([]*models.List, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owned(ownerID), nil
}

func (f *fakeListsRepo) UpdateName(ctx context.Context, id int64, name string) error {
	if f.err != nil {
		return f.err
	}
	l, ok := f.lists[id]
	if !ok {
		return common.ErrorNotFound
	}
	l.Name = name
	return nil
}

func (f *fakeListsRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.lists[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.lists, id)
	return nil
}

type fakeItemsRepo struct {
	items  map[int64]*models.Item
	nextID int64
	err    error
}

func newFakeItemsRepo() *fakeItemsRepo {
	return &fakeItemsRepo{items: make(map[int64]*models.Item)}
}

func (f *fakeItemsRepo) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeItemsRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemsRepo) SelectByList(ctx context.Context, listID int64) ([]*models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*models.Item
	for _, item := range f.items {
		if item.ListID == listID {
			cp := *item
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeItemsRepo) Update(ctx context.Context, item *models.Item) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[item.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemsRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemsRepo) DeleteByList(ctx context.Context, listID int64) error {
	if f.err != nil {
		return f.err
	}
	for id, item := range f.items {
		if item.ListID == listID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeItemsRepo) countByList(listID int64) int {
	n := 0
	for _, item := range f.items {
		if item.ListID == listID {
			n++
		}
	}
	return n
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	l *fakeListsRepo
	i *fakeItemsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), l: newFakeListsRepo(), i: newFakeItemsRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Lists(db dbx.DBTX) listsrepo.Repository       { return m.l }
func (m *fakeRepoManager) Items(db dbx.DBTX) itemsrepo.Repository       { return m.i }

func strPtr(s string) *string { return &s }
