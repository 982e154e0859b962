package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
)

func TestAnswerCreateWritesOutboxEvent(t *testing.T) {
	db := newTestDB(t)
	repo := &AnswerRepository{DB: db}
	ann := mustCreateUser(t, db, "ann")
	bart := mustCreateUser(t, db, "bart")
	q := mustCreateQuestion(t, db, ann, "q", "x", time.Now())

	a := &model.Answer{QuestionID: q.ID, AuthorID: bart.ID, Content: "hi"}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("id not assigned")
	}

	var events int64
	db.Model(&model.ContentOutbox{}).Where("event_type = ? AND entity_id = ?", "answer_created", a.ID).Count(&events)
	if events != 1 {
		t.Fatalf("want 1 answer_created event, got %d", events)
	}
}

func TestAnswerFindByIDNotFound(t *testing.T) {
	repo := &AnswerRepository{DB: newTestDB(t)}

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAnswerDeleteRemovesVoterRows(t *testing.T) {
	db := newTestDB(t)
	answers := &AnswerRepository{DB: db}
	votes := &VoteRepository{DB: db}
	ann := mustCreateUser(t, db, "ann")
	bart := mustCreateUser(t, db, "bart")
	q := mustCreateQuestion(t, db, ann, "q", "x", time.Now())
	a := mustCreateAnswer(t, db, ann, q.ID, "bye")

	ctx := context.Background()
	if err := votes.AddAnswerVote(ctx, a.ID, bart.ID); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if err := answers.Delete(ctx, a.ID, ann.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := answers.FindByID(ctx, a.ID); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("answer still readable after delete: %v", err)
	}
	var voters int64
	db.Model(&model.AnswerVoter{}).Where("answer_id = ?", a.ID).Count(&voters)
	if voters != 0 {
		t.Fatalf("voter rows left behind: %d", voters)
	}
}

func TestAnswerUpdateSetsModifiedAt(t *testing.T) {
	db := newTestDB(t)
	repo := &AnswerRepository{DB: db}
	ann := mustCreateUser(t, db, "ann")
	q := mustCreateQuestion(t, db, ann, "q", "x", time.Now())
	a := mustCreateAnswer(t, db, ann, q.ID, "before")

	now := time.Now().Add(time.Minute)
	a.Content = "after"
	a.ModifiedAt = &now
	if err := repo.Update(context.Background(), a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Content != "after" {
		t.Fatalf("content not updated: %q", got.Content)
	}
	if got.ModifiedAt == nil {
		t.Fatal("modified_at not set")
	}
	if got.QuestionID != q.ID {
		t.Fatalf("question reference changed: %d", got.QuestionID)
	}
}
