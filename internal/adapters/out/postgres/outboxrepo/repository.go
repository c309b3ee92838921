package outboxrepo

import (
	"context"

	"careplan/internal/core/domain/model/outbox"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts a pending entry. Entries are inserted in the same transaction
// as the state change they announce and are never deleted afterwards.
func (r *GormOutboxRepository) Add(ctx context.Context, entry *outbox.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit pending entries, oldest first, so the
// relay delivers events for one aggregate in the order they were recorded.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos, "status = ?", string(outbox.StatusPending)).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*outbox.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Update saves the delivery outcome of an entry.
func (r *GormOutboxRepository) Update(ctx context.Context, entry *outbox.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Attempts", "ProcessedAt", "LastError").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
