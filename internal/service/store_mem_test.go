package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/repository"
)

// memStore is an in-memory implementation of UserStore, ListStore and
// ItemStore. It reports failures with the repository sentinels, the way
// the MySQL implementations do.
type memStore struct {
	users  map[int64]*model.User
	lists  map[int64]*model.ShoppingList
	items  map[int64]*model.ShoppingListItem
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[int64]*model.User),
		lists: make(map[int64]*model.ShoppingList),
		items: make(map[int64]*model.ShoppingListItem),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// UserStore

func (m *memStore) Create(ctx context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = m.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// listStore and itemStore wrap memStore so one fake can satisfy all
// three interfaces despite the overlapping method names.

type listStore struct{ *memStore }

func (m listStore) Create(ctx context.Context, list *model.ShoppingList) error {
	for _, l := range m.lists {
		if l.CreatedBy == list.CreatedBy && l.Name == list.Name {
			return repository.ErrDuplicateList
		}
	}
	list.ID = m.id()
	list.CreatedAt = time.Now()
	list.UpdatedAt = list.CreatedAt
	cp := *list
	m.lists[list.ID] = &cp
	return nil
}

func (m listStore) GetByID(ctx context.Context, id int64) (*model.ShoppingList, error) {
	l, ok := m.lists[id]
	if !ok {
		return nil, repository.ErrListNotFound
	}
	cp := *l
	return &cp, nil
}

func (m listStore) Search(ctx context.Context, ownerID int64, query string) ([]model.ShoppingList, error) {
	var out []model.ShoppingList
	for _, l := range m.lists {
		if l.CreatedBy == ownerID && strings.Contains(strings.ToLower(l.Name), strings.ToLower(query)) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m listStore) Page(ctx context.Context, ownerID int64, offset, limit int) ([]model.ShoppingList, error) {
	var all []model.ShoppingList
	for _, l := range m.lists {
		if l.CreatedBy == ownerID {
			all = append(all, *l)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m listStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	count := 0
	for _, l := range m.lists {
		if l.CreatedBy == ownerID {
			count++
		}
	}
	return count, nil
}

func (m listStore) Rename(ctx context.Context, list *model.ShoppingList) error {
	for _, l := range m.lists {
		if l.CreatedBy == list.CreatedBy && l.Name == list.Name && l.ID != list.ID {
			return repository.ErrDuplicateList
		}
	}
	stored, ok := m.lists[list.ID]
	if !ok {
		return repository.ErrListNotFound
	}
	stored.Name = list.Name
	stored.UpdatedAt = time.Now()
	list.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m listStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.lists[id]; !ok {
		return repository.ErrListNotFound
	}
	delete(m.lists, id)
	for itemID, it := range m.items {
		if it.ListID == id {
			delete(m.items, itemID)
		}
	}
	return nil
}

type itemStore struct{ *memStore }

func (m itemStore) Create(ctx context.Context, item *model.ShoppingListItem) error {
	for _, it := range m.items {
		if it.ListID == item.ListID && it.Name == item.Name {
			return repository.ErrDuplicateItem
		}
	}
	item.ID = m.id()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m itemStore) GetByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (m itemStore) ListByList(ctx context.Context, listID int64) ([]model.ShoppingListItem, error) {
	var out []model.ShoppingListItem
	for _, it := range m.items {
		if it.ListID == listID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m itemStore) Rename(ctx context.Context, item *model.ShoppingListItem) error {
	for _, it := range m.items {
		if it.ListID == item.ListID && it.Name == item.Name && it.ID != item.ID {
			return repository.ErrDuplicateItem
		}
	}
	stored, ok := m.items[item.ID]
	if !ok {
		return repository.ErrItemNotFound
	}
	stored.Name = item.Name
	stored.UpdatedAt = time.Now()
	item.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m itemStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}
