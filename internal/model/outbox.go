package model

import "time"

// ContentOutbox records content lifecycle events in the same transaction as
// the write that caused them; a relayer ships pending rows to Kafka.
type ContentOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // question_created / question_deleted / answer_created / answer_deleted
	EntityID  uint64 `gorm:"not null"`
	ActorID   uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContentOutbox) TableName() string { return "content_outbox" }
