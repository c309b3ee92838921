// Package outboxrepo provides data transfer objects and mapping functions
// for the transactional outbox.
package outboxrepo

import (
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting outbox entries.
// The status index serves the relay's pending scan.
type EntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateType string    `gorm:"type:varchar(64);not null"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EventName     string    `gorm:"type:varchar(64);not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	Attempts      int       `gorm:"type:int;not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	ProcessedAt   *time.Time
	LastError     *string `gorm:"type:text"`
}

// TableName specifies the database table name for outbox entries.
func (EntryDTO) TableName() string {
	return "outbox_entries"
}

// fromDomain converts an outbox entry to its database representation.
func fromDomain(entry *outbox.Entry) EntryDTO {
	return EntryDTO{
		ID:            entry.ID().Bytes(),
		AggregateType: entry.AggregateType(),
		AggregateID:   entry.AggregateID().Bytes(),
		EventName:     string(entry.EventName()),
		Payload:       entry.Payload(),
		Status:        string(entry.Status()),
		Attempts:      entry.Attempts(),
		CreatedAt:     entry.CreatedAt(),
		ProcessedAt:   entry.ProcessedAt(),
		LastError:     entry.LastError(),
	}
}

// toDomain converts a database DTO to an outbox entry using RestoreEntry.
func toDomain(dto EntryDTO) (*outbox.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreEntry(
		id, dto.AggregateType, aggregateID,
		outbox.EventName(dto.EventName), dto.Payload,
		outbox.Status(dto.Status), dto.Attempts,
		dto.CreatedAt, dto.ProcessedAt, dto.LastError,
	)
}
