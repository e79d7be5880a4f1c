package model

import "time"

// ShoppingListItem represents an entry belonging to exactly one list.
// The name is unique within the scope of its parent list.
type ShoppingListItem struct {
	ID        int64
	Name      string
	ListID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRequest represents an item create or rename request.
type ItemRequest struct {
	Name string `json:"name"`
}

// ItemResponse represents a shopping list item in API responses.
type ItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
	ListID       int64     `json:"shoppinglistid"`
}

// ItemToResponse converts a ShoppingListItem to its API representation.
func ItemToResponse(it *ShoppingListItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		DateCreated:  it.CreatedAt,
		DateModified: it.UpdatedAt,
		ListID:       it.ListID,
	}
}
