package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

func TestCreateAccount_UniqueEmail(t *testing.T) {
	db := newRepoDB(t, &domain.Account{})
	ctx := context.Background()

	a, err := CreateAccount(ctx, db, domain.Account{Email: "a@example.com", Password: "hash"})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("id not assigned: %+v", a)
	}

	if _, err := CreateAccount(ctx, db, domain.Account{Email: "a@example.com", Password: "hash2"}); err == nil {
		t.Fatalf("duplicate email should violate the unique index")
	}
}

func TestGetAccountByEmail(t *testing.T) {
	db := newRepoDB(t, &domain.Account{})
	ctx := context.Background()

	if _, err := CreateAccount(ctx, db, domain.Account{Email: "b@example.com", Password: "h"}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	got, err := GetAccountByEmail(ctx, db, "b@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail: %v", err)
	}
	if got.Email != "b@example.com" || got.Password != "h" {
		t.Fatalf("unexpected account: %+v", got)
	}

	if _, err := GetAccountByEmail(ctx, db, "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
