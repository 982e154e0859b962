package model

import "time"

// Voter rows are grow-only: there is no unvote, and the unique
// (post_id, user_id) key makes insertion idempotent.

type QuestionVoter struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	QuestionID uint64 `gorm:"not null;index;uniqueIndex:uk_question_voter"`
	UserID     uint64 `gorm:"not null;uniqueIndex:uk_question_voter"`
	CreatedAt  time.Time
}

func (QuestionVoter) TableName() string { return "question_voters" }

type AnswerVoter struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	AnswerID  uint64 `gorm:"not null;index;uniqueIndex:uk_answer_voter"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_answer_voter"`
	CreatedAt time.Time
}

func (AnswerVoter) TableName() string { return "answer_voters" }
