// Package services – QuestionService
//
// This file implements the QuestionService, which manages the lifecycle of
// questions. It applies the (configurable) input validation policy, maps
// store misses to ErrQuestionNotFound, and coordinates the non-atomic
// answer-then-question delete ordering. Store failures are wrapped so that
// handlers can translate them into the uniform error envelope without ever
// leaking driver detail.
package services

import (
	"context"
	"strings"

	"github.com/kpapad/go-qa-backend/internal/domain"
	"github.com/kpapad/go-qa-backend/internal/pagination"
)

// QuestionService provides question-level operations on top of a Store.
type QuestionService struct {
	// Store is the persistence façade used for every operation.
	Store Store

	// ValidateInput enforces non-empty title/content on create and update.
	// The early iterations of this service were inconsistent about it, so
	// it is a policy switch rather than a hard guarantee.
	ValidateInput bool
}

// NewQuestionService constructs a QuestionService with strict validation on.
func NewQuestionService(st Store) *QuestionService {
	return &QuestionService{Store: st, ValidateInput: true}
}

// List returns the questions inside the pagination window, in store order
// (primary key ascending).
func (s *QuestionService) List(ctx context.Context, p pagination.Pagination) ([]domain.Question, error) {
	out, err := s.Store.ListQuestions(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, storeFail(err)
	}
	return out, nil
}

// ListJoined returns (question, optional answer) pairs for the window. Both
// questions and answers are fetched with the same window; the first answer
// matching a question wins, with no ordering guarantee among its siblings.
func (s *QuestionService) ListJoined(ctx context.Context, p pagination.Pagination) ([]domain.QuestionWithAnswer, error) {
	questions, err := s.Store.ListQuestions(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, storeFail(err)
	}
	answers, err := s.Store.ListAnswers(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, storeFail(err)
	}

	firstByQuestion := make(map[int]*domain.Answer, len(answers))
	for i := range answers {
		a := &answers[i]
		if _, seen := firstByQuestion[a.QuestionID]; !seen {
			firstByQuestion[a.QuestionID] = a
		}
	}

	pairs := make([]domain.QuestionWithAnswer, 0, len(questions))
	for _, q := range questions {
		pairs = append(pairs, domain.QuestionWithAnswer{
			Question: q,
			Answer:   firstByQuestion[q.ID],
		})
	}
	return pairs, nil
}

// Get fetches a question by id, returning ErrQuestionNotFound on a miss.
func (s *QuestionService) Get(ctx context.Context, id int) (*domain.Question, error) {
	q, err := s.Store.GetQuestion(ctx, id)
	if err != nil {
		return nil, storeFail(err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// Create validates the payload per policy and inserts it. The store assigns
// the id.
func (s *QuestionService) Create(ctx context.Context, n domain.NewQuestion) (*domain.Question, error) {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	if s.ValidateInput && (n.Title == "" || n.Content == "") {
		return nil, ErrMissingFields
	}
	q, err := s.Store.AddQuestion(ctx, n)
	if err != nil {
		return nil, storeFail(err)
	}
	return q, nil
}

// Update replaces title/content/tags of an existing question. A missing id
// yields ErrQuestionNotFound; the id itself is immutable.
func (s *QuestionService) Update(ctx context.Context, id int, q domain.Question) (*domain.Question, error) {
	q.Title = strings.TrimSpace(q.Title)
	q.Content = strings.TrimSpace(q.Content)
	if s.ValidateInput && (q.Title == "" || q.Content == "") {
		return nil, ErrMissingFields
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	updated, err := s.Store.UpdateQuestion(ctx, id, q)
	if err != nil {
		return nil, storeFail(err)
	}
	return updated, nil
}

// Delete removes a question and its answers. Answers go first so a failed
// question delete cannot leave an answer pointing at a missing question; the
// two calls are deliberately not atomic.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	if err := s.Store.DeleteAnswers(ctx, id); err != nil {
		return storeFail(err)
	}
	if err := s.Store.DeleteQuestion(ctx, id); err != nil {
		return storeFail(err)
	}
	return nil
}

// ensureExists maps a lookup miss to ErrQuestionNotFound.
func (s *QuestionService) ensureExists(ctx context.Context, id int) error {
	q, err := s.Store.GetQuestion(ctx, id)
	if err != nil {
		return storeFail(err)
	}
	if q == nil {
		return ErrQuestionNotFound
	}
	return nil
}
