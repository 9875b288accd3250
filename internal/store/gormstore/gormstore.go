// Package gormstore adapts the GORM repository functions to the store façade
// consumed by the service layer. It owns the translation from gorm's
// record-not-found sentinel into the façade's (nil, nil) miss convention, so
// services never import a database driver.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kpapad/go-qa-backend/internal/domain"
	"github.com/kpapad/go-qa-backend/internal/repo"
)

// Store is a services.Store and services.AccountStore backed by a relational
// database. It holds no state beyond the connection handle.
type Store struct {
	db *gorm.DB
}

// New wraps a GORM handle.
func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for stats queries and migrations.
func (s *Store) DB() *gorm.DB { return s.db }

// ListQuestions proxies repo.ListQuestions.
func (s *Store) ListQuestions(ctx context.Context, limit *int, offset int) ([]domain.Question, error) {
	return repo.ListQuestions(ctx, s.db, limit, offset)
}

// GetQuestion proxies repo.GetQuestion, mapping a miss to (nil, nil).
func (s *Store) GetQuestion(ctx context.Context, id int) (*domain.Question, error) {
	q, err := repo.GetQuestion(ctx, s.db, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return q, err
}

// AddQuestion proxies repo.CreateQuestion.
func (s *Store) AddQuestion(ctx context.Context, n domain.NewQuestion) (*domain.Question, error) {
	return repo.CreateQuestion(ctx, s.db, n)
}

// UpdateQuestion proxies repo.UpdateQuestion.
func (s *Store) UpdateQuestion(ctx context.Context, id int, q domain.Question) (*domain.Question, error) {
	return repo.UpdateQuestion(ctx, s.db, id, q)
}

// DeleteQuestion proxies repo.DeleteQuestion.
func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	return repo.DeleteQuestion(ctx, s.db, id)
}

// ListAnswers proxies repo.ListAnswers.
func (s *Store) ListAnswers(ctx context.Context, limit *int, offset int) ([]domain.Answer, error) {
	return repo.ListAnswers(ctx, s.db, limit, offset)
}

// AddAnswer proxies repo.CreateAnswer.
func (s *Store) AddAnswer(ctx context.Context, n domain.NewAnswer) (*domain.Answer, error) {
	return repo.CreateAnswer(ctx, s.db, n)
}

// DeleteAnswers proxies repo.DeleteAnswersByQuestion.
func (s *Store) DeleteAnswers(ctx context.Context, questionID int) error {
	return repo.DeleteAnswersByQuestion(ctx, s.db, questionID)
}

// AddAccount proxies repo.CreateAccount.
func (s *Store) AddAccount(ctx context.Context, a domain.Account) (*domain.Account, error) {
	return repo.CreateAccount(ctx, s.db, a)
}

// GetAccount proxies repo.GetAccountByEmail, mapping a miss to (nil, nil).
func (s *Store) GetAccount(ctx context.Context, email string) (*domain.Account, error) {
	a, err := repo.GetAccountByEmail(ctx, s.db, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return a, err
}
