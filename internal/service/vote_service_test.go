package service

import (
	"context"
	"errors"
	"testing"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
)

func TestVoteQuestionByAuthorIsRejected(t *testing.T) {
	votes := &mockVoteStore{}
	svc := &VoteService{
		votes: votes,
		questions: &mockQuestionStore{
			findByIDFn: func(ctx context.Context, id uint64) (*model.Question, error) {
				return &model.Question{ID: id, AuthorID: 1}, nil
			},
		},
		answers: &mockAnswerStore{},
	}

	// However many times the author tries, nothing is recorded.
	for i := 0; i < 3; i++ {
		if err := svc.VoteQuestion(context.Background(), 1, 10); !errors.Is(err, pkg.ErrSelfVote) {
			t.Fatalf("attempt %d: want ErrSelfVote, got %v", i, err)
		}
	}
	if votes.questionVoteCalls != 0 {
		t.Fatalf("self vote must not touch the voter set, got %d writes", votes.questionVoteCalls)
	}
}

func TestVoteQuestionByOtherUser(t *testing.T) {
	votes := &mockVoteStore{}
	svc := &VoteService{
		votes: votes,
		questions: &mockQuestionStore{
			findByIDFn: func(ctx context.Context, id uint64) (*model.Question, error) {
				return &model.Question{ID: id, AuthorID: 1}, nil
			},
		},
		answers: &mockAnswerStore{},
	}

	if err := svc.VoteQuestion(context.Background(), 2, 10); err != nil {
		t.Fatalf("VoteQuestion: %v", err)
	}
	if votes.questionVoteCalls != 1 {
		t.Fatalf("vote calls = %d, want 1", votes.questionVoteCalls)
	}
}

func TestVoteQuestionMissing(t *testing.T) {
	svc := &VoteService{
		votes: &mockVoteStore{},
		questions: &mockQuestionStore{
			findByIDFn: func(ctx context.Context, id uint64) (*model.Question, error) {
				return nil, pkg.ErrNotFound
			},
		},
		answers: &mockAnswerStore{},
	}

	if err := svc.VoteQuestion(context.Background(), 2, 99); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestVoteAnswerSelfVoteReturnsAnswer(t *testing.T) {
	votes := &mockVoteStore{}
	svc := &VoteService{
		votes:     votes,
		questions: &mockQuestionStore{},
		answers: &mockAnswerStore{
			findByIDFn: func(ctx context.Context, id uint64) (*model.Answer, error) {
				return &model.Answer{ID: id, QuestionID: 5, AuthorID: 2}, nil
			},
		},
	}

	a, err := svc.VoteAnswer(context.Background(), 2, 8)
	if !errors.Is(err, pkg.ErrSelfVote) {
		t.Fatalf("want ErrSelfVote, got %v", err)
	}
	// The rejected caller is still sent back to the answer's anchor.
	if a == nil || a.QuestionID != 5 {
		t.Fatalf("rejected vote must still expose the answer, got %+v", a)
	}
	if votes.answerVoteCalls != 0 {
		t.Fatal("self vote must not touch the voter set")
	}
}

func TestVoteAnswerByOtherUser(t *testing.T) {
	votes := &mockVoteStore{}
	svc := &VoteService{
		votes:     votes,
		questions: &mockQuestionStore{},
		answers: &mockAnswerStore{
			findByIDFn: func(ctx context.Context, id uint64) (*model.Answer, error) {
				return &model.Answer{ID: id, QuestionID: 5, AuthorID: 2}, nil
			},
		},
	}

	a, err := svc.VoteAnswer(context.Background(), 3, 8)
	if err != nil {
		t.Fatalf("VoteAnswer: %v", err)
	}
	if a.QuestionID != 5 {
		t.Fatalf("parent question lost: %d", a.QuestionID)
	}
	if votes.answerVoteCalls != 1 {
		t.Fatalf("vote calls = %d, want 1", votes.answerVoteCalls)
	}
}
