package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/repository"
)

var (
	ErrListNotFound   = errors.New("shopping list does not exist")
	ErrNoPermission   = errors.New("no permission")
	ErrDuplicateList  = errors.New("list name already exists")
	ErrNoMatchingList = errors.New("no matching list")
)

// Pagination defaults for GET /shoppinglists/.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListService handles shopping list business logic, scoped to the owner.
type ListService struct {
	store ListStore
}

// NewListService creates a new ListService.
func NewListService(store ListStore) *ListService {
	return &ListService{store: store}
}

// authorizeList resolves a list and verifies the caller owns it. This is
// the single ownership predicate both the list and item services use:
// a missing list is ErrListNotFound, someone else's is ErrNoPermission.
func authorizeList(ctx context.Context, store ListStore, callerID, listID int64) (*model.ShoppingList, error) {
	list, err := store.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	if list.CreatedBy != callerID {
		return nil, ErrNoPermission
	}
	return list, nil
}

// Create persists a new list owned by ownerID.
func (s *ListService) Create(ctx context.Context, ownerID int64, name string) (model.ListResponse, error) {
	if err := validateName(name); err != nil {
		return model.ListResponse{}, err
	}

	list := &model.ShoppingList{
		Name:      name,
		CreatedBy: ownerID,
	}

	if err := s.store.Create(ctx, list); err != nil {
		if errors.Is(err, repository.ErrDuplicateList) {
			return model.ListResponse{}, ErrDuplicateList
		}
		return model.ListResponse{}, err
	}

	return model.ListToResponse(list), nil
}

// Search returns the owner's lists whose names contain the query,
// case-insensitively. No pagination is applied to search results.
func (s *ListService) Search(ctx context.Context, ownerID int64, query string) ([]model.ListResponse, error) {
	lists, err := s.store.Search(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, ErrNoMatchingList
	}

	results := make([]model.ListResponse, len(lists))
	for i := range lists {
		results[i] = model.ListToResponse(&lists[i])
	}
	return results, nil
}

// Page returns one page of the owner's lists sorted by name ascending,
// with previous/next link tokens ("None" when no such page exists).
// Out-of-range page and limit values fall back to the defaults.
func (s *ListService) Page(ctx context.Context, ownerID int64, page, limit int) (model.ListPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := s.store.CountByOwner(ctx, ownerID)
	if err != nil {
		return model.ListPage{}, err
	}

	lists, err := s.store.Page(ctx, ownerID, (page-1)*limit, limit)
	if err != nil {
		return model.ListPage{}, err
	}

	results := make([]model.ListResponse, len(lists))
	for i := range lists {
		results[i] = model.ListToResponse(&lists[i])
	}

	prev, next := "None", "None"
	if page > 1 {
		prev = pageLink(limit, page-1)
	}
	if page*limit < total {
		next = pageLink(limit, page+1)
	}

	return model.ListPage{
		Lists:        results,
		PreviousPage: prev,
		NextPage:     next,
	}, nil
}

func pageLink(limit, page int) string {
	return fmt.Sprintf("/shoppinglists/?limit=%d&page=%d", limit, page)
}

// Get returns a list after checking the caller owns it.
func (s *ListService) Get(ctx context.Context, callerID, listID int64) (model.ListResponse, error) {
	list, err := authorizeList(ctx, s.store, callerID, listID)
	if err != nil {
		return model.ListResponse{}, err
	}
	return model.ListToResponse(list), nil
}

// Update renames a list. The duplicate check is scoped to the owner and
// excludes the list itself.
func (s *ListService) Update(ctx context.Context, callerID, listID int64, name string) (model.ListResponse, error) {
	list, err := authorizeList(ctx, s.store, callerID, listID)
	if err != nil {
		return model.ListResponse{}, err
	}

	if err := validateName(name); err != nil {
		return model.ListResponse{}, err
	}

	list.Name = name
	if err := s.store.Rename(ctx, list); err != nil {
		if errors.Is(err, repository.ErrDuplicateList) {
			return model.ListResponse{}, ErrDuplicateList
		}
		return model.ListResponse{}, err
	}

	return model.ListToResponse(list), nil
}

// Delete removes a list and, by cascade, all of its items.
func (s *ListService) Delete(ctx context.Context, callerID, listID int64) error {
	if _, err := authorizeList(ctx, s.store, callerID, listID); err != nil {
		return err
	}
	return s.store.Delete(ctx, listID)
}
