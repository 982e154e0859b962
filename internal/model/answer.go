package model

import "time"

type Answer struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	QuestionID uint64     `gorm:"not null;index:idx_answer_question" json:"question_id"`
	AuthorID   uint64     `gorm:"not null;index:idx_answer_author" json:"author_id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}
