package assignmentrepo

import (
	"context"

	"careplan/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentCounter using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// CountOpen returns the number of assignments for the route that are still
// scheduled or in progress. Open assignments block route completion.
func (r *GormAssignmentRepository) CountOpen(ctx context.Context, routeID kernel.UUID) (int, error) {
	if err := routeID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("route_id = ? AND status IN ?", routeID.Bytes(), []string{StatusScheduled, StatusInProgress}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
