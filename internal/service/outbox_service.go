package service

import (
	"context"
	"log"
	"time"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
)

type outboxStore interface {
	ListPending(ctx context.Context, batchSize int) ([]model.ContentOutbox, error)
	MarkFailed(ctx context.Context, id uint64) error
	MarkSent(ctx context.Context, id uint64) error
}

type Sender func(ctx context.Context, ob *model.ContentOutbox) error

// OutboxRelayer periodically drains pending content events and hands them
// to the sender. Failed rows are marked for retry and picked up again.
type OutboxRelayer struct {
	repo      outboxStore
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender publishes events keyed by entity id so events for one entity
// stay ordered within a partition.
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ContentOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.EntityID), []byte(ob.Payload))
	}
}

// LogSender is the fallback when no brokers are configured.
func LogSender(ctx context.Context, ob *model.ContentOutbox) error {
	log.Printf("OUTBOX SEND type=%s entity=%d actor=%d payload=%s", ob.EventType, ob.EntityID, ob.ActorID, ob.Payload)
	return nil
}
