package outboxrepo

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add writes messages in one statement. It is used by the unit of work at commit.
func (r *GormOutboxRepository) Add(ctx context.Context, messages []OutboxMessageDTO) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&messages).Error
}

// GetUnprocessed locks the oldest pending rows with SKIP LOCKED so that
// concurrent relays split the backlog instead of publishing twice.
func (r *GormOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("occurred_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, convErr := toPort(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("processed_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}
	return nil
}
