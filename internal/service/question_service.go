package service

import (
	"context"
	"time"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
)

// PageSize is the fixed listing window.
const PageSize = 10

type questionStore interface {
	Create(ctx context.Context, q *model.Question) error
	FindByID(ctx context.Context, id uint64) (*model.Question, error)
	Update(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, questionID, actorID uint64) error
	CountMatching(ctx context.Context, keyword string) (int64, error)
	ListPage(ctx context.Context, keyword string, offset, limit int) ([]model.QuestionSummary, error)
}

type QuestionPage struct {
	Items   []model.QuestionSummary `json:"items"`
	Page    int                     `json:"page"`
	Pages   int                     `json:"pages"`
	Total   int64                   `json:"total"`
	Keyword string                  `json:"keyword,omitempty"`
}

type QuestionDetail struct {
	Question    *model.Question  `json:"question"`
	VoteCount   int64            `json:"vote_count"`
	AnswerVotes map[uint64]int64 `json:"answer_votes"`
}

type QuestionService struct {
	repo  questionStore
	votes voteStore
}

func NewQuestionService() *QuestionService {
	return &QuestionService{
		repo:  &mysql.QuestionRepository{DB: mysql.DB},
		votes: &mysql.VoteRepository{DB: mysql.DB},
	}
}

// List returns one page of summaries, newest first. An out-of-range page
// clamps to the nearest valid one so navigation never hard-fails.
func (s *QuestionService) List(ctx context.Context, keyword string, page int) (*QuestionPage, error) {
	total, err := s.repo.CountMatching(ctx, keyword)
	if err != nil {
		return nil, err
	}

	pages := int((total + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	items, err := s.repo.ListPage(ctx, keyword, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Items:   items,
		Page:    page,
		Pages:   pages,
		Total:   total,
		Keyword: keyword,
	}, nil
}

func (s *QuestionService) Detail(ctx context.Context, id uint64) (*QuestionDetail, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	voteCount, err := s.votes.CountQuestionVotes(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	answerIDs := make([]uint64, 0, len(q.Answers))
	for _, a := range q.Answers {
		answerIDs = append(answerIDs, a.ID)
	}
	answerVotes, err := s.votes.CountAnswerVotes(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	return &QuestionDetail{Question: q, VoteCount: voteCount, AnswerVotes: answerVotes}, nil
}

func (s *QuestionService) Create(ctx context.Context, userID uint64, subject, content string) (*model.Question, error) {
	if err := pkg.RequireNonEmpty("subject", subject); err != nil {
		return nil, err
	}
	if err := pkg.RequireNonEmpty("content", content); err != nil {
		return nil, err
	}

	q := &model.Question{
		AuthorID: userID,
		Subject:  subject,
		Content:  content,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Modify(ctx context.Context, userID, id uint64, subject, content string) (*model.Question, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireAuthor(userID, q.AuthorID); err != nil {
		return nil, err
	}
	if err := pkg.RequireNonEmpty("subject", subject); err != nil {
		return nil, err
	}
	if err := pkg.RequireNonEmpty("content", content); err != nil {
		return nil, err
	}

	now := time.Now()
	q.Subject = subject
	q.Content = content
	q.ModifiedAt = &now
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(ctx context.Context, userID, id uint64) error {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireAuthor(userID, q.AuthorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}
