// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a question is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. Translating those into the collapsed
//     user-facing store failure happens above this layer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the store adapter and services.
var ErrNotFound = gorm.ErrRecordNotFound

// ListQuestions returns questions ordered by id ascending. A nil limit means
// no limit. The pagination parser never produces a nil limit together with a
// nonzero offset, so OFFSET is only emitted alongside LIMIT.
func ListQuestions(ctx context.Context, db *gorm.DB, limit *int, offset int) ([]domain.Question, error) {
	var out []domain.Question
	q := db.WithContext(ctx).Order("id ASC")
	if limit != nil {
		q = q.Limit(*limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetQuestion fetches a question by id, or ErrNotFound if missing.
func GetQuestion(ctx context.Context, db *gorm.DB, id int) (*domain.Question, error) {
	var q domain.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuestion inserts a new question row; the database assigns the id.
func CreateQuestion(ctx context.Context, db *gorm.DB, n domain.NewQuestion) (*domain.Question, error) {
	q := &domain.Question{
		Title:   n.Title,
		Content: n.Content,
		Tags:    n.Tags,
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuestion replaces title, content, and tags of the row with the given
// id and returns the stored result. Returns ErrNotFound when no row matched.
func UpdateQuestion(ctx context.Context, db *gorm.DB, id int, q domain.Question) (*domain.Question, error) {
	res := db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", id).
		Select("Title", "Content", "Tags").
		Updates(domain.Question{Title: q.Title, Content: q.Content, Tags: q.Tags})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetQuestion(ctx, db, id)
}

// DeleteQuestion removes a question row. Returns ErrNotFound when no row
// matched.
func DeleteQuestion(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
