// Package revisionrepo provides data transfer objects and mapping functions
// for the append-only route revision history.
package revisionrepo

import (
	"encoding/json"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"

	"github.com/google/uuid"
)

// RevisionDTO represents the database structure for persisting revision records.
// The (route_id, version) unique index is the storage-level guarantee that no
// two revisions of one route ever share a version number.
type RevisionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_revisions_route_version,priority:1"`
	Version   int       `gorm:"type:int;not null;uniqueIndex:idx_route_revisions_route_version,priority:2"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Reason    string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for revision entities.
func (RevisionDTO) TableName() string {
	return "route_revisions"
}

// fromDomain converts a revision record to its database representation.
func fromDomain(record *revision.Record) (RevisionDTO, error) {
	payload, err := json.Marshal(record.Payload())
	if err != nil {
		return RevisionDTO{}, err
	}

	return RevisionDTO{
		ID:        record.ID().Bytes(),
		RouteID:   record.RouteID().Bytes(),
		Version:   record.Version(),
		Payload:   payload,
		ActorID:   record.ActorID().Bytes(),
		Reason:    record.Reason(),
		CreatedAt: record.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a revision record using RestoreRecord.
func toDomain(dto RevisionDTO) (*revision.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var payload revision.Payload
	if err = json.Unmarshal(dto.Payload, &payload); err != nil {
		return nil, err
	}

	return revision.RestoreRecord(id, routeID, dto.Version, payload, actorID, dto.Reason, dto.CreatedAt)
}
