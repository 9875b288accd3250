// Package memstore is the in-process store façade: process-lifetime maps
// behind a read/write lock. It backs tests and database-free deployments with
// the same semantics the relational store provides: ids assigned on insert,
// listing ordered by id ascending, last write wins between concurrent
// writers.
//
// Readers (list/get) share the lock; every mutation takes it exclusively for
// the duration of the change. Nothing here survives process restart.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// Store is a services.Store and services.AccountStore backed by guarded maps.
type Store struct {
	mu        sync.RWMutex
	questions map[int]domain.Question
	answers   map[int]domain.Answer
	accounts  map[string]domain.Account
	nextQID   int
	nextAID   int
	nextAccID int
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		questions: make(map[int]domain.Question),
		answers:   make(map[int]domain.Answer),
		accounts:  make(map[string]domain.Account),
		nextQID:   1,
		nextAID:   1,
		nextAccID: 1,
	}
}

// ListQuestions returns the window of questions ordered by id ascending.
func (s *Store) ListQuestions(_ context.Context, limit *int, offset int) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.questions))
	for id := range s.questions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ids = window(ids, limit, offset)

	out := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.questions[id])
	}
	return out, nil
}

// GetQuestion returns the question with id, or (nil, nil) when absent.
func (s *Store) GetQuestion(_ context.Context, id int) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

// AddQuestion assigns the next id and stores the question.
func (s *Store) AddQuestion(_ context.Context, n domain.NewQuestion) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	q := domain.Question{
		ID:        s.nextQID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      n.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextQID++
	s.questions[q.ID] = q
	return &q, nil
}

// UpdateQuestion replaces title/content/tags of an existing question.
// The id is immutable; a miss is reported as (nil, nil) like GetQuestion.
func (s *Store) UpdateQuestion(_ context.Context, id int, q domain.Question) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	cur.Title = q.Title
	cur.Content = q.Content
	cur.Tags = q.Tags
	cur.UpdatedAt = time.Now().UTC()
	s.questions[id] = cur
	return &cur, nil
}

// DeleteQuestion removes the question with id. Deleting an absent id is a
// no-op; existence checks live in the service layer.
func (s *Store) DeleteQuestion(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.questions, id)
	return nil
}

// ListAnswers returns the window of answers ordered by id ascending.
func (s *Store) ListAnswers(_ context.Context, limit *int, offset int) ([]domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.answers))
	for id := range s.answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ids = window(ids, limit, offset)

	out := make([]domain.Answer, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.answers[id])
	}
	return out, nil
}

// AddAnswer assigns the next id and stores the answer.
func (s *Store) AddAnswer(_ context.Context, n domain.NewAnswer) (*domain.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Answer{
		ID:         s.nextAID,
		Content:    n.Content,
		QuestionID: n.QuestionID,
		CreatedAt:  time.Now().UTC(),
	}
	s.nextAID++
	s.answers[a.ID] = a
	return &a, nil
}

// DeleteAnswers removes every answer referencing questionID.
func (s *Store) DeleteAnswers(_ context.Context, questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.answers {
		if a.QuestionID == questionID {
			delete(s.answers, id)
		}
	}
	return nil
}

// AddAccount stores a new account keyed by email.
func (s *Store) AddAccount(_ context.Context, a domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAccID
	a.CreatedAt = time.Now().UTC()
	s.nextAccID++
	s.accounts[a.Email] = a
	return &a, nil
}

// GetAccount returns the account for email, or (nil, nil) when absent.
func (s *Store) GetAccount(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[email]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// window applies the (limit, offset) pair to a sorted id slice.
func window(ids []int, limit *int, offset int) []int {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit != nil && *limit >= 0 && *limit < len(ids) {
		ids = ids[:*limit]
	}
	return ids
}
