// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Answer
// model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// ListAnswers returns answers ordered by id ascending. A nil limit means no
// limit.
func ListAnswers(ctx context.Context, db *gorm.DB, limit *int, offset int) ([]domain.Answer, error) {
	var out []domain.Answer
	q := db.WithContext(ctx).Order("id ASC")
	if limit != nil {
		q = q.Limit(*limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

// CreateAnswer inserts a new answer row; the database assigns the id.
func CreateAnswer(ctx context.Context, db *gorm.DB, n domain.NewAnswer) (*domain.Answer, error) {
	a := &domain.Answer{
		Content:    n.Content,
		QuestionID: n.QuestionID,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAnswersByQuestion removes every answer referencing questionID.
// Deleting zero rows is not an error: a question may have no answers.
func DeleteAnswersByQuestion(ctx context.Context, db *gorm.DB, questionID int) error {
	return db.WithContext(ctx).
		Where("corresponding_question = ?", questionID).
		Delete(&domain.Answer{}).Error
}
