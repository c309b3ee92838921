// Package assignmentrepo provides read access to the assignments an external
// scheduler records against routes. The lifecycle engine only counts them;
// it never creates or mutates assignments.
package assignmentrepo

import (
	"time"

	"github.com/google/uuid"
)

// Assignment statuses that block route completion.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
)

// AssignmentDTO represents the database structure of scheduler assignments.
type AssignmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}
