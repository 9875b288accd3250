package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

func TestCreateAnswer_PersistsReference(t *testing.T) {
	db := newRepoDB(t, &domain.Question{}, &domain.Answer{})
	ctx := context.Background()

	q := mustCreateQuestion(t, db, "q", "c")
	a, err := CreateAnswer(ctx, db, domain.NewAnswer{Content: "because", QuestionID: q.ID})
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	if a.ID == 0 || a.QuestionID != q.ID || a.Content != "because" {
		t.Fatalf("unexpected answer: %+v", a)
	}

	// The reference is persisted in the corresponding_question column.
	var n int64
	if err := db.Model(&domain.Answer{}).
		Where("corresponding_question = ?", q.ID).Count(&n).Error; err != nil {
		t.Fatalf("count by column: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row under corresponding_question=%d, got %d", q.ID, n)
	}
}

func TestListAnswers_WindowAscending(t *testing.T) {
	db := newRepoDB(t, &domain.Question{}, &domain.Answer{})
	ctx := context.Background()

	q := mustCreateQuestion(t, db, "q", "c")
	for i := 1; i <= 4; i++ {
		if _, err := CreateAnswer(ctx, db, domain.NewAnswer{
			Content: fmt.Sprintf("a%d", i), QuestionID: q.ID,
		}); err != nil {
			t.Fatalf("CreateAnswer %d: %v", i, err)
		}
	}

	limit := 2
	page, err := ListAnswers(ctx, db, &limit, 1)
	if err != nil {
		t.Fatalf("ListAnswers: %v", err)
	}
	if len(page) != 2 || page[0].Content != "a2" || page[1].Content != "a3" {
		t.Fatalf("unexpected window: %+v", page)
	}
}

func TestDeleteAnswersByQuestion(t *testing.T) {
	db := newRepoDB(t, &domain.Question{}, &domain.Answer{})
	ctx := context.Background()

	q1 := mustCreateQuestion(t, db, "q1", "c")
	q2 := mustCreateQuestion(t, db, "q2", "c")
	for _, qid := range []int{q1.ID, q1.ID, q2.ID} {
		if _, err := CreateAnswer(ctx, db, domain.NewAnswer{Content: "x", QuestionID: qid}); err != nil {
			t.Fatalf("CreateAnswer: %v", err)
		}
	}

	if err := DeleteAnswersByQuestion(ctx, db, q1.ID); err != nil {
		t.Fatalf("DeleteAnswersByQuestion: %v", err)
	}

	rest, err := ListAnswers(ctx, db, nil, 0)
	if err != nil {
		t.Fatalf("ListAnswers: %v", err)
	}
	if len(rest) != 1 || rest[0].QuestionID != q2.ID {
		t.Fatalf("expected only q2 answers to survive, got %+v", rest)
	}

	// Deleting answers for a question with none is not an error.
	if err := DeleteAnswersByQuestion(ctx, db, q1.ID); err != nil {
		t.Fatalf("empty delete should succeed: %v", err)
	}
}
