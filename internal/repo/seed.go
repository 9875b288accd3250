// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds an empty questions table from a JSON file,
// so a fresh deployment has content to list.
package repo

import (
	"context"
	"encoding/json"
	"os"

	"gorm.io/gorm"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// SeedQuestions loads a JSON array of question payloads from path and inserts
// them when the questions table is empty. A non-empty table is left alone.
// It returns the number of rows inserted.
func SeedQuestions(ctx context.Context, db *gorm.DB, path string) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var seeds []domain.NewQuestion
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, err
	}

	inserted := 0
	for _, n := range seeds {
		if _, err := CreateQuestion(ctx, db, n); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
