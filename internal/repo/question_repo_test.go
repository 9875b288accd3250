package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func mustCreateQuestion(t *testing.T, db *gorm.DB, title, content string, tags ...string) *domain.Question {
	t.Helper()
	q, err := CreateQuestion(context.Background(), db, domain.NewQuestion{
		Title: title, Content: content, Tags: tags,
	})
	if err != nil {
		t.Fatalf("CreateQuestion(%q): %v", title, err)
	}
	return q
}

func TestCreateQuestion_AssignsSequentialIDs(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})

	q1 := mustCreateQuestion(t, db, "first", "c1", "go")
	q2 := mustCreateQuestion(t, db, "second", "c2")
	if q1.ID == 0 || q2.ID != q1.ID+1 {
		t.Fatalf("expected sequential ids, got %d then %d", q1.ID, q2.ID)
	}
	if q1.CreatedAt.IsZero() || q1.UpdatedAt.IsZero() {
		t.Fatalf("timestamps unset: %+v", q1)
	}
}

func TestGetQuestion_RoundTripAndMiss(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})
	ctx := context.Background()

	created := mustCreateQuestion(t, db, "slices", "how do they grow", "go", "slices")

	got, err := GetQuestion(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if got.Title != "slices" || got.Content != "how do they grow" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "slices" {
		t.Fatalf("tags did not survive JSON serialization: %v", got.Tags)
	}

	if _, err := GetQuestion(ctx, db, created.ID+999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestListQuestions_OrderAndWindow(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		mustCreateQuestion(t, db, fmt.Sprintf("q%d", i), "c")
	}

	// No limit: everything, id ascending.
	all, err := ListQuestions(ctx, db, nil, 0)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("not ascending at %d: %v", i, all)
		}
	}

	// limit=2 offset=1 over ids 1..5 yields ids 2 and 3.
	limit := 2
	page, err := ListQuestions(ctx, db, &limit, 1)
	if err != nil {
		t.Fatalf("ListQuestions paged: %v", err)
	}
	if len(page) != 2 || page[0].ID != all[1].ID || page[1].ID != all[2].ID {
		t.Fatalf("unexpected window: %+v", page)
	}

	// Offset past the end is empty, not an error.
	tail, err := ListQuestions(ctx, db, &limit, 50)
	if err != nil || len(tail) != 0 {
		t.Fatalf("expected empty tail, got %v (err=%v)", tail, err)
	}
}

func TestUpdateQuestion_ReplacesFieldsKeepsID(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})
	ctx := context.Background()

	created := mustCreateQuestion(t, db, "old", "old content", "a")

	updated, err := UpdateQuestion(ctx, db, created.ID, domain.Question{
		Title: "new", Content: "new content", Tags: []string{"b", "c"},
	})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if updated.Title != "new" || updated.Content != "new content" || len(updated.Tags) != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestUpdateQuestion_MissingID(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})
	_, err := UpdateQuestion(context.Background(), db, 42, domain.Question{Title: "t", Content: "c"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuestion_RemovesRow(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})
	ctx := context.Background()

	created := mustCreateQuestion(t, db, "doomed", "c")
	if err := DeleteQuestion(ctx, db, created.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if _, err := GetQuestion(ctx, db, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("row still present after delete: %v", err)
	}
	if err := DeleteQuestion(ctx, db, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestCreateQuestion_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)
	q, err := CreateQuestion(context.Background(), db, domain.NewQuestion{Title: "t", Content: "c"})
	if err == nil || q != nil {
		t.Fatalf("expected error creating without table, got q=%v err=%v", q, err)
	}
}
