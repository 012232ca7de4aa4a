package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// FloorPlansRepository manages floor plan records
type FloorPlansRepository interface {
	// CreateFloorPlan stores a new plan with an unknown area.
	CreateFloorPlan(ctx context.Context, name string, imagePath *string) (*models.FloorPlan, error)

	// GetFloorPlan returns the plan or ErrNotFound.
	GetFloorPlan(ctx context.Context, id uuid.UUID) (*models.FloorPlan, error)

	// SetTotalArea updates the usable area; nil clears it back to unknown.
	SetTotalArea(ctx context.Context, id uuid.UUID, area *float64) (*models.FloorPlan, error)
}

// RequirementsRepository manages the insert-only space programs of a plan
type RequirementsRepository interface {
	// SaveRequirement appends a new program version for the plan.
	SaveRequirement(ctx context.Context, floorPlanID uuid.UUID, req allocation.SpaceRequirement) (*models.Requirement, error)

	// GetRequirement returns the record or ErrNotFound.
	GetRequirement(ctx context.Context, id uuid.UUID) (*models.Requirement, error)

	// LatestRequirement returns the newest program for the plan, or
	// ErrNotFound when none has been saved yet.
	LatestRequirement(ctx context.Context, floorPlanID uuid.UUID) (*models.Requirement, error)
}

// SolutionsRepository manages the append-only solution history
type SolutionsRepository interface {
	// AppendSolution stores a generated solution and returns the stored
	// record with its assigned id and timestamp.
	AppendSolution(ctx context.Context, sol models.Solution) (*models.Solution, error)

	// SolutionsForFloorPlan lists a plan's solutions, newest first.
	SolutionsForFloorPlan(ctx context.Context, floorPlanID uuid.UUID) ([]*models.Solution, error)

	// SolutionsForRequirement lists the solutions generated from one
	// requirement version, newest first.
	SolutionsForRequirement(ctx context.Context, requirementID uuid.UUID) ([]*models.Solution, error)
}

// Store bundles the repositories behind one storage driver
type Store struct {
	FloorPlans   FloorPlansRepository
	Requirements RequirementsRepository
	Solutions    SolutionsRepository
}

// NewPostgresStore wires all repositories to the given pool
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		FloorPlans:   NewPostgresFloorPlansRepository(pool),
		Requirements: NewPostgresRequirementsRepository(pool),
		Solutions:    NewPostgresSolutionsRepository(pool),
	}
}

// NewMemoryStore wires all repositories to a single in-process store
func NewMemoryStore() *Store {
	m := NewMemory()
	return &Store{
		FloorPlans:   m,
		Requirements: m,
		Solutions:    m,
	}
}
