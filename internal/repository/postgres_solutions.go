package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officeflow/space-planner/planning-api/internal/models"
)

const solutionColumns = `id, floor_plan_id, requirement_id, feasibility_score,
	is_feasible, workstations_placed, meeting_rooms_placed, amenities_placed,
	utilization_rate, constraints_met, suggestions, created_at`

// PostgresSolutionsRepository persists generated solutions in PostgreSQL.
// The nested placement structures are stored as JSONB.
type PostgresSolutionsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSolutionsRepository creates a solutions repository
func NewPostgresSolutionsRepository(pool *pgxpool.Pool) *PostgresSolutionsRepository {
	return &PostgresSolutionsRepository{pool: pool}
}

var _ SolutionsRepository = (*PostgresSolutionsRepository)(nil)

func scanSolution(row pgx.Row) (*models.Solution, error) {
	var sol models.Solution
	err := row.Scan(
		&sol.ID,
		&sol.FloorPlanID,
		&sol.RequirementID,
		&sol.FeasibilityScore,
		&sol.IsFeasible,
		&sol.Workstations,
		&sol.MeetingRooms,
		&sol.Amenities,
		&sol.UtilizationRate,
		&sol.ConstraintsMet,
		&sol.Suggestions,
		&sol.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sol, nil
}

// AppendSolution stores a generated solution
func (r *PostgresSolutionsRepository) AppendSolution(ctx context.Context, sol models.Solution) (*models.Solution, error) {
	stored, err := scanSolution(r.pool.QueryRow(ctx,
		`INSERT INTO solutions (floor_plan_id, requirement_id, feasibility_score,
			is_feasible, workstations_placed, meeting_rooms_placed, amenities_placed,
			utilization_rate, constraints_met, suggestions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+solutionColumns,
		sol.FloorPlanID,
		sol.RequirementID,
		sol.FeasibilityScore,
		sol.IsFeasible,
		sol.Workstations,
		sol.MeetingRooms,
		sol.Amenities,
		sol.UtilizationRate,
		sol.ConstraintsMet,
		sol.Suggestions,
	))

	if err != nil {
		return nil, fmt.Errorf("failed to append solution: %w", err)
	}

	return stored, nil
}

func (r *PostgresSolutionsRepository) listSolutions(ctx context.Context, column string, id uuid.UUID) ([]*models.Solution, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+solutionColumns+`
		 FROM solutions
		 WHERE `+column+` = $1
		 ORDER BY created_at DESC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()

	var solutions []*models.Solution
	for rows.Next() {
		sol, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, sol)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solutions: %w", err)
	}

	return solutions, nil
}

// SolutionsForFloorPlan lists a plan's solutions, newest first
func (r *PostgresSolutionsRepository) SolutionsForFloorPlan(ctx context.Context, floorPlanID uuid.UUID) ([]*models.Solution, error) {
	return r.listSolutions(ctx, "floor_plan_id", floorPlanID)
}

// SolutionsForRequirement lists one requirement's solutions, newest first
func (r *PostgresSolutionsRepository) SolutionsForRequirement(ctx context.Context, requirementID uuid.UUID) ([]*models.Solution, error) {
	return r.listSolutions(ctx, "requirement_id", requirementID)
}
