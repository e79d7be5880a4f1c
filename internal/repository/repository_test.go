package repository

import (
	"errors"
	"testing"
)

func TestConstructorsAcceptNilDB(t *testing.T) {
	if NewUserRepository(nil) == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if NewListRepository(nil) == nil {
		t.Fatal("expected non-nil ListRepository")
	}
	if NewItemRepository(nil) == nil {
		t.Fatal("expected non-nil ItemRepository")
	}
}

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrUserNotFound, "user not found"},
		{ErrDuplicateEmail, "email already exists"},
		{ErrListNotFound, "shopping list not found"},
		{ErrDuplicateList, "list name already exists"},
		{ErrItemNotFound, "item not found"},
		{ErrDuplicateItem, "item name already exists in this list"},
	}

	for _, c := range cases {
		if c.err == nil {
			t.Fatalf("sentinel for %q is nil", c.want)
		}
		if c.err.Error() != c.want {
			t.Errorf("sentinel message = %q, want %q", c.err.Error(), c.want)
		}
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062: Duplicate entry 'x' for key 'uq_lists_owner_name'")) {
		t.Error("MySQL 1062 text should be a duplicate entry error")
	}
}
