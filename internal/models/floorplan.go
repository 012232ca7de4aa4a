package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
)

// FloorPlan represents a floor plan under planning
type FloorPlan struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	TotalArea *float64  `json:"total_area" db:"total_area"` // nil until the usable area is known
	ImagePath *string   `json:"image_path,omitempty" db:"image_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Requirement is a stored space program for a floor plan. Records are
// insert-only; the newest one is the plan's current program.
type Requirement struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FloorPlanID uuid.UUID `json:"floor_plan_id" db:"floor_plan_id"`

	allocation.SpaceRequirement

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Solution is a stored layout proposal derived from one requirement and the
// plan's area at generation time. Solutions are never updated or deleted.
type Solution struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FloorPlanID   uuid.UUID `json:"floor_plan_id" db:"floor_plan_id"`
	RequirementID uuid.UUID `json:"requirement_id" db:"requirement_id"`

	FeasibilityScore float64 `json:"feasibility_score" db:"feasibility_score"`
	IsFeasible       bool    `json:"is_feasible" db:"is_feasible"`

	allocation.PlacementPlan

	Suggestions string    `json:"suggestions" db:"suggestions"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
