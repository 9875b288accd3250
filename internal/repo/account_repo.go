// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Account
// model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// CreateAccount inserts a new account row; the database assigns the id.
func CreateAccount(ctx context.Context, db *gorm.DB, a domain.Account) (*domain.Account, error) {
	if err := db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail fetches an account by email, or ErrNotFound if missing.
func GetAccountByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Account, error) {
	var a domain.Account
	if err := db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
