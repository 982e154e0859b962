package service

import (
	"context"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
)

type voteStore interface {
	AddQuestionVote(ctx context.Context, questionID, userID uint64) error
	AddAnswerVote(ctx context.Context, answerID, userID uint64) error
	CountQuestionVotes(ctx context.Context, questionID uint64) (int64, error)
	CountAnswerVotes(ctx context.Context, answerIDs []uint64) (map[uint64]int64, error)
}

type VoteService struct {
	votes     voteStore
	questions questionStore
	answers   answerStore
}

func NewVoteService() *VoteService {
	return &VoteService{
		votes:     &mysql.VoteRepository{DB: mysql.DB},
		questions: &mysql.QuestionRepository{DB: mysql.DB},
		answers:   &mysql.AnswerRepository{DB: mysql.DB},
	}
}

// VoteQuestion adds the caller to the voter set. Voting twice equals voting
// once; voting on your own question is rejected without any mutation.
func (s *VoteService) VoteQuestion(ctx context.Context, userID, questionID uint64) error {
	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if q.AuthorID == userID {
		return pkg.ErrSelfVote
	}
	return s.votes.AddQuestionVote(ctx, questionID, userID)
}

// VoteAnswer returns the answer in every non-NotFound outcome so the caller
// can build the anchored redirect to the parent question.
func (s *VoteService) VoteAnswer(ctx context.Context, userID, answerID uint64) (*model.Answer, error) {
	a, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if a.AuthorID == userID {
		return a, pkg.ErrSelfVote
	}
	return a, s.votes.AddAnswerVote(ctx, answerID, userID)
}
