// Package services – AccountService
//
// Accounts are peripheral to the Q&A core: registration and login only.
// Passwords are hashed with argon2id using a fresh random salt per password
// and stored in the standard $argon2id$ encoded form. No token is issued on
// login; session/token management belongs to an external collaborator with
// its own key handling.
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// argon2id parameters. These follow the RFC 9106 low-memory recommendation;
// they are fixed here and recorded in every encoded hash, so they can change
// without invalidating stored credentials.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// AccountService implements registration and credential verification.
type AccountService struct {
	Store AccountStore
}

// NewAccountService constructs an AccountService.
func NewAccountService(st AccountStore) *AccountService {
	return &AccountService{Store: st}
}

// Register creates an account for email with a hashed password.
// Duplicate emails yield ErrEmailTaken; blank input yields ErrMissingFields.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.Store.GetAccount(ctx, email)
	if err != nil {
		return nil, storeFail(err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	acc, err := s.Store.AddAccount(ctx, domain.Account{Email: email, Password: hash})
	if err != nil {
		return nil, storeFail(err)
	}
	return acc, nil
}

// Login verifies email/password. It returns the account on success,
// ErrAccountNotFound for an unknown email, and ErrWrongPassword on mismatch.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := s.Store.GetAccount(ctx, email)
	if err != nil {
		return nil, storeFail(err)
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	match, err := VerifyPassword(password, acc.Password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrWrongPassword
	}
	return acc, nil
}

// HashPassword derives an argon2id hash with a random salt and encodes it as
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash> (both parts base64, no padding).
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword re-derives the key from password using the parameters and
// salt recorded in encoded, and compares in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("malformed password hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
	var memory uint32
	var timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
