package routerepo

import (
	"context"
	"errors"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing route to the database. Owned goals and phases
// are upserted; goals and phases are append-only so nothing is removed.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Select("ChildID", "LeadSpecialistID", "TemplateID", "Title", "Summary",
			"Status", "PlanHorizonWeeks", "StartDate", "EndDate", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Goals) > 0 {
		if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Goals).Error; err != nil {
			return err
		}
	}
	if len(dto.Phases) > 0 {
		if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Phases).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a route by ID, locking its row for the duration of
// the current transaction. Serializes concurrent mutations of one route.
func (r *GormRouteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	return r.get(ctx, id, true)
}

func (r *GormRouteRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Preload("Goals").Preload("Phases")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "routes"}})
	}

	var dto RouteDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LockChild takes a transaction-scoped advisory lock on the child's route
// set. A plain row lock cannot guard the "no active route exists" check
// because there may be no row to lock yet; the advisory lock serializes
// every writer that touches the same child.
func (r *GormRouteRepository) LockChild(ctx context.Context, childID kernel.UUID) error {
	if err := childID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", childID.String()).Error
}

// FindActiveByChild returns the child's active route, or nil when the child
// has none. At most one can exist, which the partial unique index enforces.
func (r *GormRouteRepository) FindActiveByChild(ctx context.Context, childID kernel.UUID) (*route.Route, error) {
	if err := childID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).Preload("Goals").Preload("Phases").
		Limit(1).
		Find(&dtos, "child_id = ? AND status = ?", childID.Bytes(), route.Active.String()).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}
