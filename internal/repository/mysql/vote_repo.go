package mysql

import (
	"context"

	"SiteExer/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	DB *gorm.DB
}

// AddQuestionVote inserts the voter row; the unique (question_id, user_id)
// key plus DoNothing makes a repeat vote a no-op instead of an error.
func (r *VoteRepository) AddQuestionVote(ctx context.Context, questionID, userID uint64) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.QuestionVoter{QuestionID: questionID, UserID: userID}).Error
}

func (r *VoteRepository) AddAnswerVote(ctx context.Context, answerID, userID uint64) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "answer_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.AnswerVoter{AnswerID: answerID, UserID: userID}).Error
}

func (r *VoteRepository) CountQuestionVotes(ctx context.Context, questionID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.QuestionVoter{}).
		Where("question_id = ?", questionID).
		Count(&n).Error
	return n, err
}

// CountAnswerVotes returns vote counts keyed by answer id; answers without
// votes are simply absent from the map.
func (r *VoteRepository) CountAnswerVotes(ctx context.Context, answerIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(answerIDs))
	if len(answerIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		AnswerID uint64
		N        int64
	}
	err := r.DB.WithContext(ctx).Model(&model.AnswerVoter{}).
		Select("answer_id, COUNT(*) AS n").
		Where("answer_id IN ?", answerIDs).
		Group("answer_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AnswerID] = row.N
	}
	return counts, nil
}
