package model

import "time"

type Question struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	AuthorID uint64 `gorm:"not null;index:idx_question_author" json:"author_id"`
	Subject  string `gorm:"size:200;not null" json:"subject"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// ModifiedAt stays NULL until the first successful edit.
	CreatedAt  time.Time  `gorm:"index:idx_question_created" json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// QuestionSummary is the listing row: one question plus the aggregates the
// board page shows. Filled by a raw select, never persisted.
type QuestionSummary struct {
	ID          uint64    `json:"id"`
	Subject     string    `json:"subject"`
	AuthorName  string    `json:"author_name"`
	CreatedAt   time.Time `json:"created_at"`
	AnswerCount int64     `json:"answer_count"`
	VoteCount   int64     `json:"vote_count"`
}
