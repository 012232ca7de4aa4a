package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so the API can apply them on startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS floor_plans (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		total_area double precision,
		image_path text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS requirements (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		floor_plan_id uuid NOT NULL REFERENCES floor_plans(id) ON DELETE CASCADE,
		workstations integer NOT NULL DEFAULT 0,
		meeting_rooms_small integer NOT NULL DEFAULT 0,
		meeting_rooms_medium integer NOT NULL DEFAULT 0,
		meeting_rooms_large integer NOT NULL DEFAULT 0,
		phone_booths integer NOT NULL DEFAULT 0,
		breakout_areas integer NOT NULL DEFAULT 0,
		kitchen_pantry boolean NOT NULL DEFAULT false,
		reception_area boolean NOT NULL DEFAULT false,
		server_room boolean NOT NULL DEFAULT false,
		storage_rooms integer NOT NULL DEFAULT 0,
		additional_notes text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requirements_plan_created
		ON requirements (floor_plan_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS solutions (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		floor_plan_id uuid NOT NULL REFERENCES floor_plans(id) ON DELETE CASCADE,
		requirement_id uuid NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		feasibility_score double precision NOT NULL,
		is_feasible boolean NOT NULL,
		workstations_placed integer NOT NULL,
		meeting_rooms_placed jsonb NOT NULL,
		amenities_placed jsonb NOT NULL,
		utilization_rate double precision NOT NULL,
		constraints_met jsonb NOT NULL,
		suggestions text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_solutions_plan_created
		ON solutions (floor_plan_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_solutions_requirement_created
		ON solutions (requirement_id, created_at DESC)`,
}

// EnsureSchema creates the planning tables and indexes if they do not exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
