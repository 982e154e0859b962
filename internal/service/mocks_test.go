package service

import (
	"context"

	"SiteExer/internal/model"
)

// Hand-rolled store mocks: each method delegates to the matching fn when
// set and is a recorded no-op otherwise.

type mockQuestionStore struct {
	createFn        func(ctx context.Context, q *model.Question) error
	findByIDFn      func(ctx context.Context, id uint64) (*model.Question, error)
	updateFn        func(ctx context.Context, q *model.Question) error
	deleteFn        func(ctx context.Context, questionID, actorID uint64) error
	countMatchingFn func(ctx context.Context, keyword string) (int64, error)
	listPageFn      func(ctx context.Context, keyword string, offset, limit int) ([]model.QuestionSummary, error)

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockQuestionStore) Create(ctx context.Context, q *model.Question) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, q)
	}
	return nil
}

func (m *mockQuestionStore) FindByID(ctx context.Context, id uint64) (*model.Question, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockQuestionStore) Update(ctx context.Context, q *model.Question) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, q)
	}
	return nil
}

func (m *mockQuestionStore) Delete(ctx context.Context, questionID, actorID uint64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, questionID, actorID)
	}
	return nil
}

func (m *mockQuestionStore) CountMatching(ctx context.Context, keyword string) (int64, error) {
	if m.countMatchingFn != nil {
		return m.countMatchingFn(ctx, keyword)
	}
	return 0, nil
}

func (m *mockQuestionStore) ListPage(ctx context.Context, keyword string, offset, limit int) ([]model.QuestionSummary, error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, keyword, offset, limit)
	}
	return nil, nil
}

type mockAnswerStore struct {
	createFn   func(ctx context.Context, a *model.Answer) error
	findByIDFn func(ctx context.Context, id uint64) (*model.Answer, error)
	updateFn   func(ctx context.Context, a *model.Answer) error
	deleteFn   func(ctx context.Context, answerID, actorID uint64) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockAnswerStore) Create(ctx context.Context, a *model.Answer) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAnswerStore) FindByID(ctx context.Context, id uint64) (*model.Answer, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAnswerStore) Update(ctx context.Context, a *model.Answer) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAnswerStore) Delete(ctx context.Context, answerID, actorID uint64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, answerID, actorID)
	}
	return nil
}

type mockVoteStore struct {
	addQuestionVoteFn func(ctx context.Context, questionID, userID uint64) error
	addAnswerVoteFn   func(ctx context.Context, answerID, userID uint64) error

	questionVoteCalls int
	answerVoteCalls   int
}

func (m *mockVoteStore) AddQuestionVote(ctx context.Context, questionID, userID uint64) error {
	m.questionVoteCalls++
	if m.addQuestionVoteFn != nil {
		return m.addQuestionVoteFn(ctx, questionID, userID)
	}
	return nil
}

func (m *mockVoteStore) AddAnswerVote(ctx context.Context, answerID, userID uint64) error {
	m.answerVoteCalls++
	if m.addAnswerVoteFn != nil {
		return m.addAnswerVoteFn(ctx, answerID, userID)
	}
	return nil
}

func (m *mockVoteStore) CountQuestionVotes(ctx context.Context, questionID uint64) (int64, error) {
	return 0, nil
}

func (m *mockVoteStore) CountAnswerVotes(ctx context.Context, answerIDs []uint64) (map[uint64]int64, error) {
	return map[uint64]int64{}, nil
}
