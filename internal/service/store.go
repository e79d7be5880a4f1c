package service

import (
	"context"

	"github.com/shoplist/shoplist-go/internal/model"
)

// The store interfaces are the persistence surface each service depends
// on. The repository package provides the MySQL implementations; tests
// substitute in-memory fakes. Implementations report missing rows and
// uniqueness violations with the repository package's sentinel errors.

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// ListStore persists shopping lists.
type ListStore interface {
	Create(ctx context.Context, list *model.ShoppingList) error
	GetByID(ctx context.Context, id int64) (*model.ShoppingList, error)
	Search(ctx context.Context, ownerID int64, query string) ([]model.ShoppingList, error)
	Page(ctx context.Context, ownerID int64, offset, limit int) ([]model.ShoppingList, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	Rename(ctx context.Context, list *model.ShoppingList) error
	Delete(ctx context.Context, id int64) error
}

// ItemStore persists shopping list items.
type ItemStore interface {
	Create(ctx context.Context, item *model.ShoppingListItem) error
	GetByID(ctx context.Context, id int64) (*model.ShoppingListItem, error)
	ListByList(ctx context.Context, listID int64) ([]model.ShoppingListItem, error)
	Rename(ctx context.Context, item *model.ShoppingListItem) error
	Delete(ctx context.Context, id int64) error
}
