// Package routerepo provides data transfer objects and mapping functions for route persistence.
// This package implements the repository pattern for the route domain aggregate, handling
// the conversion between domain entities and database representations.
package routerepo

import (
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
// The partial unique index on child_id backs the single-active-route rule at
// the storage level, in addition to the advisory-lock check in the handlers.
type RouteDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChildID          uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_routes_one_active_per_child,where:status = 'active'"`
	LeadSpecialistID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TemplateID       *uuid.UUID `gorm:"type:uuid"`
	Title            string     `gorm:"type:varchar(255);not null"`
	Summary          string     `gorm:"type:text"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	PlanHorizonWeeks int        `gorm:"type:int;not null"`
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
	Goals            []GoalDTO  `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	Phases           []PhaseDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for route entities.
// Overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// GoalDTO represents the database structure for persisting route goals.
type GoalDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Position int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for goal entities.
func (GoalDTO) TableName() string {
	return "route_goals"
}

// PhaseDTO represents the database structure for persisting route phases.
type PhaseDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Position int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for phase entities.
func (PhaseDTO) TableName() string {
	return "route_phases"
}

// fromDomain converts a route domain aggregate to its database representation.
// Maps all aggregate entities including goals and phases.
func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()

	var templateID *uuid.UUID
	if aggregate.TemplateID() != nil {
		raw := aggregate.TemplateID().Bytes()
		templateID = &raw
	}

	goals := make([]GoalDTO, 0, len(aggregate.Goals()))
	for _, goal := range aggregate.Goals() {
		goals = append(goals, GoalDTO{
			ID:       goal.ID().Bytes(),
			RouteID:  routeID,
			Title:    goal.Title(),
			Position: goal.Position(),
		})
	}

	phases := make([]PhaseDTO, 0, len(aggregate.Phases()))
	for _, phase := range aggregate.Phases() {
		phases = append(phases, PhaseDTO{
			ID:       phase.ID().Bytes(),
			RouteID:  routeID,
			Title:    phase.Title(),
			Position: phase.Position(),
		})
	}

	return RouteDTO{
		ID:               routeID,
		ChildID:          aggregate.ChildID().Bytes(),
		LeadSpecialistID: aggregate.LeadSpecialistID().Bytes(),
		TemplateID:       templateID,
		Title:            aggregate.Title(),
		Summary:          aggregate.Summary(),
		Status:           aggregate.Status().String(),
		PlanHorizonWeeks: aggregate.PlanHorizonWeeks(),
		StartDate:        aggregate.StartDate(),
		EndDate:          aggregate.EndDate(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Goals:            goals,
		Phases:           phases,
	}
}

// toDomain converts a database DTO to a route domain aggregate.
// Reconstructs the complete aggregate including owned goals and phases using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	childID, err := kernel.UUIDFromBytes(dto.ChildID[:])
	if err != nil {
		return nil, err
	}

	leadSpecialistID, err := kernel.UUIDFromBytes(dto.LeadSpecialistID[:])
	if err != nil {
		return nil, err
	}

	var templateID *kernel.UUID
	if dto.TemplateID != nil {
		tID, templateErr := kernel.UUIDFromBytes((*dto.TemplateID)[:])
		if templateErr != nil {
			return nil, templateErr
		}

		templateID = &tID
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	goals := make([]route.Goal, 0, len(dto.Goals))
	for _, goalDTO := range dto.Goals {
		goalID, goalErr := kernel.UUIDFromBytes(goalDTO.ID[:])
		if goalErr != nil {
			return nil, goalErr
		}

		goal, goalErr := route.RestoreGoal(goalID, goalDTO.Title, goalDTO.Position)
		if goalErr != nil {
			return nil, goalErr
		}
		goals = append(goals, goal)
	}

	phases := make([]route.Phase, 0, len(dto.Phases))
	for _, phaseDTO := range dto.Phases {
		phaseID, phaseErr := kernel.UUIDFromBytes(phaseDTO.ID[:])
		if phaseErr != nil {
			return nil, phaseErr
		}

		phase, phaseErr := route.RestorePhase(phaseID, phaseDTO.Title, phaseDTO.Position)
		if phaseErr != nil {
			return nil, phaseErr
		}
		phases = append(phases, phase)
	}

	return route.RestoreRoute(
		id, childID, leadSpecialistID, templateID,
		dto.Title, dto.Summary, status, dto.PlanHorizonWeeks,
		dto.StartDate, dto.EndDate, dto.CreatedAt, dto.UpdatedAt,
		goals, phases,
	)
}
