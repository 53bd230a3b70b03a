package outboxrepo

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxAttempts is how many failed publishes a message gets before the relay stops picking it up.
const MaxAttempts = 10

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append inserts new messages. Called by the unit of work just before commit.
func (r *GormOutboxRepository) Append(ctx context.Context, messages ...MessageDTO) error {
	if len(messages) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&messages).Error; err != nil {
		return errs.WrapPersistence("append outbox", err)
	}

	return nil
}

// GetPending locks up to limit unpublished rows with FOR UPDATE SKIP LOCKED,
// so parallel relays never pick the same message.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL AND attempts < ?", MaxAttempts).
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, errs.WrapPersistence("get pending outbox", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.update(ctx, id, map[string]any{"published_at": at.UTC()})
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}

	return r.update(ctx, id, map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	})
}

func (r *GormOutboxRepository) update(ctx context.Context, id kernel.UUID, values map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(values)
	if result.Error != nil {
		return errs.WrapPersistence("update outbox", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}
