// Package services – store façade contracts.
//
// The Store interface is the narrow seam between the HTTP-facing services and
// whatever owns the records: a relational database in production, or a
// process-wide guarded map in tests and early deployments. Services hold no
// state of their own; every call here is a single remote round trip with no
// caching and no retry.
package services

import (
	"context"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// Store is the question/answer persistence contract.
//
// Listing order is store-native but both shipped implementations order by
// primary key ascending, and tests pin that down. A nil limit means "no
// limit". GetQuestion returns (nil, nil) when the id is absent, so callers
// can distinguish a miss from a store failure.
type Store interface {
	// ListQuestions returns at most *limit questions starting at offset.
	ListQuestions(ctx context.Context, limit *int, offset int) ([]domain.Question, error)

	// GetQuestion fetches a question by id, or (nil, nil) when absent.
	GetQuestion(ctx context.Context, id int) (*domain.Question, error)

	// AddQuestion inserts a question and returns it with the assigned id.
	AddQuestion(ctx context.Context, n domain.NewQuestion) (*domain.Question, error)

	// UpdateQuestion replaces title/content/tags of the question with the
	// given id and returns the stored row.
	UpdateQuestion(ctx context.Context, id int, q domain.Question) (*domain.Question, error)

	// DeleteQuestion removes a question row.
	DeleteQuestion(ctx context.Context, id int) error

	// ListAnswers returns at most *limit answers starting at offset.
	ListAnswers(ctx context.Context, limit *int, offset int) ([]domain.Answer, error)

	// AddAnswer inserts an answer and returns it with the assigned id.
	AddAnswer(ctx context.Context, n domain.NewAnswer) (*domain.Answer, error)

	// DeleteAnswers removes every answer referencing questionID.
	DeleteAnswers(ctx context.Context, questionID int) error
}

// AccountStore is the peripheral account persistence contract.
type AccountStore interface {
	// AddAccount inserts a new account row.
	AddAccount(ctx context.Context, a domain.Account) (*domain.Account, error)

	// GetAccount fetches an account by email, or (nil, nil) when absent.
	GetAccount(ctx context.Context, email string) (*domain.Account, error)
}
