package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/models"
)

const requirementColumns = `id, floor_plan_id, workstations, meeting_rooms_small,
	meeting_rooms_medium, meeting_rooms_large, phone_booths, breakout_areas,
	kitchen_pantry, reception_area, server_room, storage_rooms,
	additional_notes, created_at`

// PostgresRequirementsRepository persists space programs in PostgreSQL
type PostgresRequirementsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRequirementsRepository creates a requirements repository
func NewPostgresRequirementsRepository(pool *pgxpool.Pool) *PostgresRequirementsRepository {
	return &PostgresRequirementsRepository{pool: pool}
}

var _ RequirementsRepository = (*PostgresRequirementsRepository)(nil)

func scanRequirement(row pgx.Row) (*models.Requirement, error) {
	var rec models.Requirement
	err := row.Scan(
		&rec.ID,
		&rec.FloorPlanID,
		&rec.Workstations,
		&rec.MeetingRoomsSmall,
		&rec.MeetingRoomsMedium,
		&rec.MeetingRoomsLarge,
		&rec.PhoneBooths,
		&rec.BreakoutAreas,
		&rec.KitchenPantry,
		&rec.ReceptionArea,
		&rec.ServerRoom,
		&rec.StorageRooms,
		&rec.AdditionalNotes,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// SaveRequirement appends a new program version for the plan
func (r *PostgresRequirementsRepository) SaveRequirement(ctx context.Context, floorPlanID uuid.UUID, req allocation.SpaceRequirement) (*models.Requirement, error) {
	rec, err := scanRequirement(r.pool.QueryRow(ctx,
		`INSERT INTO requirements (floor_plan_id, workstations, meeting_rooms_small,
			meeting_rooms_medium, meeting_rooms_large, phone_booths, breakout_areas,
			kitchen_pantry, reception_area, server_room, storage_rooms, additional_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+requirementColumns,
		floorPlanID,
		req.Workstations,
		req.MeetingRoomsSmall,
		req.MeetingRoomsMedium,
		req.MeetingRoomsLarge,
		req.PhoneBooths,
		req.BreakoutAreas,
		req.KitchenPantry,
		req.ReceptionArea,
		req.ServerRoom,
		req.StorageRooms,
		req.AdditionalNotes,
	))

	if err != nil {
		return nil, fmt.Errorf("failed to save requirement: %w", err)
	}

	return rec, nil
}

// GetRequirement returns the record or ErrNotFound
func (r *PostgresRequirementsRepository) GetRequirement(ctx context.Context, id uuid.UUID) (*models.Requirement, error) {
	rec, err := scanRequirement(r.pool.QueryRow(ctx,
		`SELECT `+requirementColumns+`
		 FROM requirements
		 WHERE id = $1`,
		id,
	))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	return rec, nil
}

// LatestRequirement returns the newest program for the plan
func (r *PostgresRequirementsRepository) LatestRequirement(ctx context.Context, floorPlanID uuid.UUID) (*models.Requirement, error) {
	rec, err := scanRequirement(r.pool.QueryRow(ctx,
		`SELECT `+requirementColumns+`
		 FROM requirements
		 WHERE floor_plan_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		floorPlanID,
	))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest requirement: %w", err)
	}

	return rec, nil
}
