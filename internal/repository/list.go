package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shoplist/shoplist-go/internal/model"
)

var (
	ErrListNotFound  = errors.New("shopping list not found")
	ErrDuplicateList = errors.New("list name already exists")
)

// ListRepository handles shopping list persistence operations.
type ListRepository struct {
	db *sql.DB
}

// NewListRepository creates a new ListRepository.
func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{db: db}
}

const listColumns = `id, name, created_by, created_at, updated_at`

func scanList(row interface{ Scan(...any) error }) (*model.ShoppingList, error) {
	list := &model.ShoppingList{}
	err := row.Scan(&list.ID, &list.Name, &list.CreatedBy, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

// Create inserts a new list for its owner. The per-owner duplicate check
// and the insert run in one transaction; the unique key on
// (created_by, name) backstops racing writers.
func (r *ListRepository) Create(ctx context.Context, list *model.ShoppingList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM shoppinglists WHERE created_by = ? AND name = ?)`,
		list.CreatedBy, list.Name,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateList
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO shoppinglists (name, created_by) VALUES (?, ?)`,
		list.Name, list.CreatedBy,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateList
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	list.ID = id

	err = tx.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM shoppinglists WHERE id = ?`, id,
	).Scan(&list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves a list by its ID regardless of owner. Ownership is
// checked by the caller so that not-found and no-permission outcomes can
// be told apart.
func (r *ListRepository) GetByID(ctx context.Context, id int64) (*model.ShoppingList, error) {
	return scanList(r.db.QueryRowContext(ctx,
		`SELECT `+listColumns+` FROM shoppinglists WHERE id = ?`, id,
	))
}

// Search retrieves an owner's lists whose names contain the query,
// case-insensitively, ordered by name.
func (r *ListRepository) Search(ctx context.Context, ownerID int64, query string) ([]model.ShoppingList, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+listColumns+` FROM shoppinglists
			WHERE created_by = ? AND LOWER(name) LIKE LOWER(CONCAT('%', ?, '%'))
			ORDER BY name ASC`,
		ownerID, query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLists(rows)
}

// Page retrieves one page of an owner's lists ordered by name ascending.
func (r *ListRepository) Page(ctx context.Context, ownerID int64, offset, limit int) ([]model.ShoppingList, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+listColumns+` FROM shoppinglists
			WHERE created_by = ? ORDER BY name ASC LIMIT ? OFFSET ?`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLists(rows)
}

// CountByOwner returns how many lists an owner has.
func (r *ListRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shoppinglists WHERE created_by = ?`, ownerID,
	).Scan(&count)
	return count, err
}

// Rename updates a list's name. The duplicate check excludes the list
// itself and runs in the same transaction as the write.
func (r *ListRepository) Rename(ctx context.Context, list *model.ShoppingList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM shoppinglists WHERE created_by = ? AND name = ? AND id <> ?)`,
		list.CreatedBy, list.Name, list.ID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateList
	}

	// Existence was already established by the caller's ownership
	// check; MySQL's changed-rows count cannot distinguish a missing
	// row from a no-op rename, so it is not consulted here.
	_, err = tx.ExecContext(ctx,
		`UPDATE shoppinglists SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		list.Name, list.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateList
		}
		return err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT updated_at FROM shoppinglists WHERE id = ?`, list.ID,
	).Scan(&list.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a list and its items. The foreign key cascades as well;
// the explicit item delete keeps the contract independent of the schema.
func (r *ListRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM shoppinglist_items WHERE shoppinglist_id = ?`, id,
	); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM shoppinglists WHERE id = ?`, id)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrListNotFound
	}

	return tx.Commit()
}

func collectLists(rows *sql.Rows) ([]model.ShoppingList, error) {
	var lists []model.ShoppingList
	for rows.Next() {
		var l model.ShoppingList
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}
