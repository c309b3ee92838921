package revisionrepo

import (
	"context"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"

	"gorm.io/gorm"
)

// GormRevisionRepository implements RevisionRepository using GORM.
// Records are append-only: there is no update or delete here on purpose.
type GormRevisionRepository struct {
	db *gorm.DB
}

// NewGormRevisionRepository creates a new GORM revision repository.
func NewGormRevisionRepository(db *gorm.DB) *GormRevisionRepository {
	return &GormRevisionRepository{db: db}
}

// Add appends a revision record.
func (r *GormRevisionRepository) Add(ctx context.Context, record *revision.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// NextVersion computes the next version number for a route, starting at 1.
// Must run inside the same transaction as the subsequent Add, under the
// route's row lock, so two writers can never compute the same number.
func (r *GormRevisionRepository) NextVersion(ctx context.Context, routeID kernel.UUID) (int, error) {
	if err := routeID.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(MAX(version), 0) + 1 FROM route_revisions WHERE route_id = ?",
		routeID.Bytes(),
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// GetByRoute retrieves all revisions of a route ordered by version descending.
func (r *GormRevisionRepository) GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*revision.Record, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RevisionDTO
	err := r.db.WithContext(ctx).
		Order("version DESC").
		Find(&dtos, "route_id = ?", routeID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*revision.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
