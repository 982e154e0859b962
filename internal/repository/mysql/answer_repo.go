package mysql

import (
	"context"
	"errors"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func (r *AnswerRepository) Create(ctx context.Context, a *model.Answer) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "answer_created", a.ID, a.AuthorID)
	})
}

func (r *AnswerRepository) FindByID(ctx context.Context, id uint64) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepository) Update(ctx context.Context, a *model.Answer) error {
	return r.DB.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"content":     a.Content,
			"modified_at": a.ModifiedAt,
		}).Error
}

// Delete removes the answer and its voter rows in one transaction.
func (r *AnswerRepository) Delete(ctx context.Context, answerID, actorID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", answerID).Delete(&model.AnswerVoter{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Answer{}, answerID).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "answer_deleted", answerID, actorID)
	})
}
