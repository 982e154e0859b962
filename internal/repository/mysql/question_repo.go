package mysql

import (
	"context"
	"errors"
	"strings"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "question_created", q.ID, q.AuthorID)
	})
}

// FindByID loads the question with its answers in creation order.
func (r *QuestionRepository) FindByID(ctx context.Context, id uint64) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", q.ID).
		Updates(map[string]any{
			"subject":     q.Subject,
			"content":     q.Content,
			"modified_at": q.ModifiedAt,
		}).Error
}

// Delete removes the question and cascades to its answers and every voter
// row, all in one transaction.
func (r *QuestionRepository) Delete(ctx context.Context, questionID, actorID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answerIDs := tx.Model(&model.Answer{}).Select("id").Where("question_id = ?", questionID)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&model.AnswerVoter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&model.QuestionVoter{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, questionID).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "question_deleted", questionID, actorID)
	})
}

// likeEscaper quotes the LIKE metacharacters so a keyword matches literally.
// '!' is the escape character; unlike backslash it reads the same in MySQL
// and sqlite string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// searchQuery builds the keyword filter: a case-insensitive substring match
// against subject, content, question author name, answer content and answer
// author name. The EXISTS subquery keeps the result set deduplicated even
// when several answers match.
func (r *QuestionRepository) searchQuery(ctx context.Context, keyword string) *gorm.DB {
	q := r.DB.WithContext(ctx).Table("questions").
		Joins("JOIN users ON users.id = questions.author_id")
	if keyword == "" {
		return q
	}
	like := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
	return q.Where(`LOWER(questions.subject) LIKE ? ESCAPE '!'
		OR LOWER(questions.content) LIKE ? ESCAPE '!'
		OR LOWER(users.username) LIKE ? ESCAPE '!'
		OR EXISTS (
			SELECT 1 FROM answers
			JOIN users au ON au.id = answers.author_id
			WHERE answers.question_id = questions.id
			  AND (LOWER(answers.content) LIKE ? ESCAPE '!' OR LOWER(au.username) LIKE ? ESCAPE '!'))`,
		like, like, like, like, like)
}

func (r *QuestionRepository) CountMatching(ctx context.Context, keyword string) (int64, error) {
	var total int64
	err := r.searchQuery(ctx, keyword).Count(&total).Error
	return total, err
}

// ListPage returns one offset/limit window of summaries, newest first.
func (r *QuestionRepository) ListPage(ctx context.Context, keyword string, offset, limit int) ([]model.QuestionSummary, error) {
	var rows []model.QuestionSummary
	err := r.searchQuery(ctx, keyword).
		Select(`questions.id, questions.subject, users.username AS author_name, questions.created_at,
			(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id) AS answer_count,
			(SELECT COUNT(*) FROM question_voters WHERE question_voters.question_id = questions.id) AS vote_count`).
		Order("questions.created_at DESC, questions.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
