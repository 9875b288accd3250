package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash encoding: %q", hash)
	}

	okMatch, err := VerifyPassword("s3cret", hash)
	if err != nil || !okMatch {
		t.Fatalf("correct password should verify: match=%v err=%v", okMatch, err)
	}
	badMatch, err := VerifyPassword("wrong", hash)
	if err != nil || badMatch {
		t.Fatalf("wrong password should not verify: match=%v err=%v", badMatch, err)
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must use different salts")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, enc := range []string{"", "plaintext", "$bcrypt$x$y$z$w$v", "$argon2id$v=19$bad"} {
		if _, err := VerifyPassword("p", enc); err == nil {
			t.Fatalf("encoding %q should be rejected", enc)
		}
	}
}

func TestAccountService_Register_NormalizesAndHashes(t *testing.T) {
	var stored domain.Account
	st := &fakeStore{
		addAccountFn: func(_ context.Context, a domain.Account) (*domain.Account, error) {
			stored = a
			a.ID = 1
			return &a, nil
		},
	}
	svc := NewAccountService(st)

	acc, err := svc.Register(context.Background(), "  User@Example.COM ", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if acc.Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", acc.Email)
	}
	if stored.Password == "pw" || !strings.HasPrefix(stored.Password, "$argon2id$") {
		t.Fatalf("password stored without hashing: %q", stored.Password)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	st := &fakeStore{
		getAccountFn: func(_ context.Context, email string) (*domain.Account, error) {
			return &domain.Account{ID: 1, Email: email}, nil
		},
	}
	svc := NewAccountService(st)

	if _, err := svc.Register(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Register_BlankInput(t *testing.T) {
	svc := NewAccountService(&fakeStore{})
	if _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank email: got %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.c", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank password: got %v", err)
	}
}

func TestAccountService_Login(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	st := &fakeStore{
		getAccountFn: func(_ context.Context, email string) (*domain.Account, error) {
			if email == "a@b.c" {
				return &domain.Account{ID: 1, Email: email, Password: hash}, nil
			}
			return nil, nil
		},
	}
	svc := NewAccountService(st)
	ctx := context.Background()

	acc, err := svc.Login(ctx, "A@B.C", "pw")
	if err != nil || acc.ID != 1 {
		t.Fatalf("expected login success, got acc=%v err=%v", acc, err)
	}

	if _, err := svc.Login(ctx, "a@b.c", "nope"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@b.c", "pw"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
