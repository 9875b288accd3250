package gormstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("gormstore_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.Question{}, &domain.Answer{}, &domain.Account{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db)
}

func TestGetQuestion_MissIsNilNil(t *testing.T) {
	s := newStore(t)
	q, err := s.GetQuestion(context.Background(), 12345)
	if q != nil || err != nil {
		t.Fatalf("miss must be (nil, nil), got (%v, %v)", q, err)
	}
}

func TestAddThenGet_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	created, err := s.AddQuestion(ctx, domain.NewQuestion{
		Title: "t", Content: "c", Tags: []string{"go"},
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	got, err := s.GetQuestion(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetQuestion: q=%v err=%v", got, err)
	}
	if got.Title != "t" || got.Content != "c" || len(got.Tags) != 1 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListQuestions_WindowMatchesMemstore(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := s.AddQuestion(ctx, domain.NewQuestion{
			Title: fmt.Sprintf("q%d", i), Content: "c",
		}); err != nil {
			t.Fatalf("AddQuestion %d: %v", i, err)
		}
	}

	limit := 2
	page, err := s.ListQuestions(ctx, &limit, 1)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(page) != 2 || page[0].Title != "q2" || page[1].Title != "q3" {
		t.Fatalf("unexpected window: %+v", page)
	}
}

func TestGetAccount_MissIsNilNil(t *testing.T) {
	s := newStore(t)
	a, err := s.GetAccount(context.Background(), "nobody@example.com")
	if a != nil || err != nil {
		t.Fatalf("miss must be (nil, nil), got (%v, %v)", a, err)
	}
}

func TestAnswers_AddListDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	q, err := s.AddQuestion(ctx, domain.NewQuestion{Title: "q", Content: "c"})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if _, err := s.AddAnswer(ctx, domain.NewAnswer{Content: "a1", QuestionID: q.ID}); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}

	answers, err := s.ListAnswers(ctx, nil, 0)
	if err != nil || len(answers) != 1 || answers[0].QuestionID != q.ID {
		t.Fatalf("ListAnswers: %v (err=%v)", answers, err)
	}

	if err := s.DeleteAnswers(ctx, q.ID); err != nil {
		t.Fatalf("DeleteAnswers: %v", err)
	}
	answers, err = s.ListAnswers(ctx, nil, 0)
	if err != nil || len(answers) != 0 {
		t.Fatalf("answers should be gone: %v (err=%v)", answers, err)
	}
}
