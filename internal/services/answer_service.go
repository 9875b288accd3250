// Package services – AnswerService
package services

import (
	"context"
	"strings"

	"github.com/kpapad/go-qa-backend/internal/domain"
	"github.com/kpapad/go-qa-backend/internal/pagination"
)

// AnswerService provides answer-level operations on top of a Store.
type AnswerService struct {
	Store Store
}

// NewAnswerService constructs an AnswerService.
func NewAnswerService(st Store) *AnswerService {
	return &AnswerService{Store: st}
}

// Add inserts an answer after confirming the referenced question exists.
// A missing question id yields ErrQuestionNotFound; an empty content body
// yields ErrMissingFields.
func (s *AnswerService) Add(ctx context.Context, n domain.NewAnswer) (*domain.Answer, error) {
	if strings.TrimSpace(n.Content) == "" {
		return nil, ErrMissingFields
	}
	q, err := s.Store.GetQuestion(ctx, n.QuestionID)
	if err != nil {
		return nil, storeFail(err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	a, err := s.Store.AddAnswer(ctx, n)
	if err != nil {
		return nil, storeFail(err)
	}
	return a, nil
}

// List returns the answers inside the pagination window, in store order.
func (s *AnswerService) List(ctx context.Context, p pagination.Pagination) ([]domain.Answer, error) {
	out, err := s.Store.ListAnswers(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, storeFail(err)
	}
	return out, nil
}
