package model

import "time"

// ShoppingList represents a named, user-owned list in the database.
// The name is unique within the scope of its owner, not globally.
type ShoppingList struct {
	ID        int64
	Name      string
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListRequest represents a list create or rename request.
type ListRequest struct {
	Name string `json:"name"`
}

// ListResponse represents a shopping list in API responses.
type ListResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
	CreatedBy    int64     `json:"created_by"`
}

// ListPage is one page of a user's lists ordered by name, with link
// tokens for the neighbouring pages ("None" when no such page exists).
type ListPage struct {
	Lists        []ListResponse `json:"lists"`
	PreviousPage string         `json:"previous_page"`
	NextPage     string         `json:"next_page"`
}

// ListToResponse converts a ShoppingList to its API representation.
func ListToResponse(l *ShoppingList) ListResponse {
	return ListResponse{
		ID:           l.ID,
		Name:         l.Name,
		DateCreated:  l.CreatedAt,
		DateModified: l.UpdatedAt,
		CreatedBy:    l.CreatedBy,
	}
}
