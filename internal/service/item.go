package service

import (
	"context"
	"errors"

	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/repository"
)

var (
	ErrItemNotFound  = errors.New("item does not exist in this shopping list")
	ErrDuplicateItem = errors.New("item name already exists in this list")
)

// ItemService handles item business logic. Every operation is scoped
// through the parent list's owner.
type ItemService struct {
	items ItemStore
	lists ListStore
}

// NewItemService creates a new ItemService.
func NewItemService(items ItemStore, lists ListStore) *ItemService {
	return &ItemService{items: items, lists: lists}
}

// Create persists a new item after verifying the caller owns the parent list.
func (s *ItemService) Create(ctx context.Context, callerID, listID int64, name string) (model.ItemResponse, error) {
	if _, err := authorizeList(ctx, s.lists, callerID, listID); err != nil {
		return model.ItemResponse{}, err
	}

	if err := validateName(name); err != nil {
		return model.ItemResponse{}, err
	}

	item := &model.ShoppingListItem{
		Name:   name,
		ListID: listID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateItem) {
			return model.ItemResponse{}, ErrDuplicateItem
		}
		return model.ItemResponse{}, err
	}

	return model.ItemToResponse(item), nil
}

// List returns all items in a list the caller owns. An empty list is not
// an error; the handler reports it as an informational message.
func (s *ItemService) List(ctx context.Context, callerID, listID int64) ([]model.ItemResponse, error) {
	if _, err := authorizeList(ctx, s.lists, callerID, listID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	results := make([]model.ItemResponse, len(items))
	for i := range items {
		results[i] = model.ItemToResponse(&items[i])
	}
	return results, nil
}

// get resolves an item and verifies the caller owns its parent list.
func (s *ItemService) get(ctx context.Context, callerID, itemID int64) (*model.ShoppingListItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if _, err := authorizeList(ctx, s.lists, callerID, item.ListID); err != nil {
		return nil, err
	}

	return item, nil
}

// Get returns an item after checking ownership of its parent list.
func (s *ItemService) Get(ctx context.Context, callerID, itemID int64) (model.ItemResponse, error) {
	item, err := s.get(ctx, callerID, itemID)
	if err != nil {
		return model.ItemResponse{}, err
	}
	return model.ItemToResponse(item), nil
}

// Update renames an item. The duplicate check is scoped to the parent
// list and excludes the item itself.
func (s *ItemService) Update(ctx context.Context, callerID, itemID int64, name string) (model.ItemResponse, error) {
	item, err := s.get(ctx, callerID, itemID)
	if err != nil {
		return model.ItemResponse{}, err
	}

	if err := validateName(name); err != nil {
		return model.ItemResponse{}, err
	}

	item.Name = name
	if err := s.items.Rename(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateItem) {
			return model.ItemResponse{}, ErrDuplicateItem
		}
		return model.ItemResponse{}, err
	}

	return model.ItemToResponse(item), nil
}

// Delete removes an item after checking ownership of its parent list.
func (s *ItemService) Delete(ctx context.Context, callerID, itemID int64) error {
	item, err := s.get(ctx, callerID, itemID)
	if err != nil {
		return err
	}
	return s.items.Delete(ctx, item.ID)
}
