package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shoplist/shoplist-go/internal/model"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateItem = errors.New("item name already exists in this list")
)

// ItemRepository handles shopping list item persistence operations.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, shoppinglist_id, created_at, updated_at`

// Create inserts a new item into its parent list. The per-list duplicate
// check and the insert run in one transaction; the unique key on
// (shoppinglist_id, name) backstops racing writers.
func (r *ItemRepository) Create(ctx context.Context, item *model.ShoppingListItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM shoppinglist_items WHERE shoppinglist_id = ? AND name = ?)`,
		item.ListID, item.Name,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateItem
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO shoppinglist_items (name, shoppinglist_id) VALUES (?, ?)`,
		item.Name, item.ListID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateItem
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = id

	err = tx.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM shoppinglist_items WHERE id = ?`, id,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves an item by its ID. The parent list's ownership is
// checked by the caller.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*model.ShoppingListItem, error) {
	item := &model.ShoppingListItem{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM shoppinglist_items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.ListID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListByList retrieves all items in a list ordered by name.
func (r *ItemRepository) ListByList(ctx context.Context, listID int64) ([]model.ShoppingListItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM shoppinglist_items WHERE shoppinglist_id = ? ORDER BY name ASC`,
		listID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ShoppingListItem
	for rows.Next() {
		var it model.ShoppingListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.ListID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Rename updates an item's name. The duplicate check is scoped to the
// parent list, excludes the item itself, and runs in the same
// transaction as the write.
func (r *ItemRepository) Rename(ctx context.Context, item *model.ShoppingListItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM shoppinglist_items WHERE shoppinglist_id = ? AND name = ? AND id <> ?)`,
		item.ListID, item.Name, item.ID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateItem
	}

	// Existence was already established by the caller's ownership
	// check; MySQL's changed-rows count cannot distinguish a missing
	// row from a no-op rename, so it is not consulted here.
	_, err = tx.ExecContext(ctx,
		`UPDATE shoppinglist_items SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		item.Name, item.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateItem
		}
		return err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT updated_at FROM shoppinglist_items WHERE id = ?`, item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes an item.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shoppinglist_items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrItemNotFound
	}

	return nil
}
