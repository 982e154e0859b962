package mysql

import (
	"context"
	"encoding/json"
	"time"

	"SiteExer/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// insertOutbox writes a content event inside the caller's transaction so the
// event is recorded iff the mutation commits.
func insertOutbox(tx *gorm.DB, event string, entityID, actorID uint64) error {
	payload, err := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"entity_id":  entityID,
		"actor_id":   actorID,
	})
	if err != nil {
		return err
	}
	ob := &model.ContentOutbox{
		EventType: event,
		EntityID:  entityID,
		ActorID:   actorID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.ContentOutbox, error) {
	var list []model.ContentOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0 OR (status = 2 AND retry < 5)").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ContentOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ContentOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
