package service

import (
	"context"
	"time"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
)

type answerStore interface {
	Create(ctx context.Context, a *model.Answer) error
	FindByID(ctx context.Context, id uint64) (*model.Answer, error)
	Update(ctx context.Context, a *model.Answer) error
	Delete(ctx context.Context, answerID, actorID uint64) error
}

type AnswerService struct {
	repo      answerStore
	questions questionStore
}

func NewAnswerService() *AnswerService {
	return &AnswerService{
		repo:      &mysql.AnswerRepository{DB: mysql.DB},
		questions: &mysql.QuestionRepository{DB: mysql.DB},
	}
}

func (s *AnswerService) Create(ctx context.Context, userID, questionID uint64, content string) (*model.Answer, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}
	if err := pkg.RequireNonEmpty("content", content); err != nil {
		return nil, err
	}

	a := &model.Answer{
		QuestionID: questionID,
		AuthorID:   userID,
		Content:    content,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Modify returns the answer alongside ErrForbidden so the caller can still
// redirect to the parent question.
func (s *AnswerService) Modify(ctx context.Context, userID, answerID uint64, content string) (*model.Answer, error) {
	a, err := s.repo.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if err := requireAuthor(userID, a.AuthorID); err != nil {
		return a, err
	}
	if err := pkg.RequireNonEmpty("content", content); err != nil {
		return a, err
	}

	now := time.Now()
	a.Content = content
	a.ModifiedAt = &now
	if err := s.repo.Update(ctx, a); err != nil {
		return a, err
	}
	return a, nil
}

// Delete by a non-author degrades to a no-op: the answer is returned with
// ErrForbidden, the caller warns and redirects to the parent question.
func (s *AnswerService) Delete(ctx context.Context, userID, answerID uint64) (*model.Answer, error) {
	a, err := s.repo.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if err := requireAuthor(userID, a.AuthorID); err != nil {
		return a, err
	}
	if err := s.repo.Delete(ctx, answerID, userID); err != nil {
		return a, err
	}
	return a, nil
}
