// Package domain defines the persistence models for questions, answers, and
// accounts. These types are mapped with GORM and form the core data layer
// of the Q&A application.
package domain

import (
	"time"
)

// Question is a user-submitted question. The store assigns the numeric id on
// creation; it is immutable afterwards. Tags are optional and unordered.
//
// Fields:
//   - ID: auto-increment primary key, assigned by the store.
//   - Title / Content: free text; required non-empty when strict validation
//     is enabled (see services.QuestionService).
//   - Tags: optional set of strings, persisted as a JSON array.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Question struct {
	ID        int       `json:"id"             gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title"          gorm:"type:varchar(255);not null"`
	Content   string    `json:"content"        gorm:"type:text;not null"`
	Tags      []string  `json:"tags,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// NewQuestion is the creation payload for a question; the store assigns the id.
type NewQuestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// Answer is a reply to a question. The question reference is an index, not an
// enforced foreign key: an answer may reference an id that no longer exists
// between the two halves of a non-atomic cascade delete.
type Answer struct {
	ID         int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	QuestionID int       `json:"question_id" gorm:"column:corresponding_question;not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for Answer.
func (Answer) TableName() string { return "answers" }

// NewAnswer is the creation payload for an answer.
type NewAnswer struct {
	Content    string `json:"content"`
	QuestionID int    `json:"question_id"`
}

// Account is a registered user. Password holds an argon2id hash with an
// embedded random salt, never plaintext (see services.AccountService).
type Account struct {
	ID        int       `json:"id"    gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string    `json:"-"     gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Account.
func (Account) TableName() string { return "accounts" }

// QuestionWithAnswer pairs a question with the first matching answer, if any.
// It is the unit produced by the joined listing used in HTML views.
type QuestionWithAnswer struct {
	Question Question
	Answer   *Answer
}
