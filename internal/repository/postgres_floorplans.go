package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officeflow/space-planner/planning-api/internal/models"
)

// PostgresFloorPlansRepository persists floor plans in PostgreSQL
type PostgresFloorPlansRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFloorPlansRepository creates a floor plans repository
func NewPostgresFloorPlansRepository(pool *pgxpool.Pool) *PostgresFloorPlansRepository {
	return &PostgresFloorPlansRepository{pool: pool}
}

var _ FloorPlansRepository = (*PostgresFloorPlansRepository)(nil)

// CreateFloorPlan stores a new plan with an unknown area
func (r *PostgresFloorPlansRepository) CreateFloorPlan(ctx context.Context, name string, imagePath *string) (*models.FloorPlan, error) {
	var plan models.FloorPlan

	err := r.pool.QueryRow(ctx,
		`INSERT INTO floor_plans (name, image_path)
		 VALUES ($1, $2)
		 RETURNING id, name, total_area, image_path, created_at, updated_at`,
		name, imagePath,
	).Scan(&plan.ID, &plan.Name, &plan.TotalArea, &plan.ImagePath, &plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create floor plan: %w", err)
	}

	return &plan, nil
}

// GetFloorPlan returns the plan or ErrNotFound
func (r *PostgresFloorPlansRepository) GetFloorPlan(ctx context.Context, id uuid.UUID) (*models.FloorPlan, error) {
	var plan models.FloorPlan

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, total_area, image_path, created_at, updated_at
		 FROM floor_plans
		 WHERE id = $1`,
		id,
	).Scan(&plan.ID, &plan.Name, &plan.TotalArea, &plan.ImagePath, &plan.CreatedAt, &plan.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	return &plan, nil
}

// SetTotalArea updates the usable area; nil clears it back to unknown
func (r *PostgresFloorPlansRepository) SetTotalArea(ctx context.Context, id uuid.UUID, area *float64) (*models.FloorPlan, error) {
	var plan models.FloorPlan

	err := r.pool.QueryRow(ctx,
		`UPDATE floor_plans
		 SET total_area = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, total_area, image_path, created_at, updated_at`,
		id, area,
	).Scan(&plan.ID, &plan.Name, &plan.TotalArea, &plan.ImagePath, &plan.CreatedAt, &plan.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update floor plan area: %w", err)
	}

	return &plan, nil
}
