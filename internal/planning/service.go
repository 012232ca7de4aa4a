// Package planning is the service layer of the planning API. It owns the
// repositories and the allocation estimator and implements every operation
// the HTTP gateway exposes.
package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/metrics"
	"github.com/officeflow/space-planner/planning-api/internal/models"
	"github.com/officeflow/space-planner/planning-api/internal/repository"
)

// SolutionBroadcaster pushes a freshly stored solution to live viewers.
// The gateway's solution feed implements it; a nil broadcaster is allowed.
type SolutionBroadcaster interface {
	BroadcastSolution(sol *models.Solution)
}

// Service handles floor plan, requirement and solution operations
type Service struct {
	store       *repository.Store
	estimator   *allocation.Estimator
	metrics     *metrics.PlanningMetrics
	broadcaster SolutionBroadcaster
	logger      *zap.Logger
	tracer      trace.Tracer
}

// NewService creates a new planning service
func NewService(store *repository.Store, estimator *allocation.Estimator, pm *metrics.PlanningMetrics, broadcaster SolutionBroadcaster, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		estimator:   estimator,
		metrics:     pm,
		broadcaster: broadcaster,
		logger:      logger,
		tracer:      otel.Tracer("planning-service"),
	}
}

// CreateFloorPlan registers a new floor plan with an unknown usable area
func (s *Service) CreateFloorPlan(ctx context.Context, name string, imagePath *string) (*models.FloorPlan, error) {
	ctx, span := s.tracer.Start(ctx, "planning.create_floor_plan")
	defer span.End()

	plan, err := s.store.FloorPlans.CreateFloorPlan(ctx, name, imagePath)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to create floor plan: %w", err)
	}

	span.SetAttributes(attribute.String("floor_plan.id", plan.ID.String()))
	s.logger.Info("floor plan created",
		zap.String("floor_plan_id", plan.ID.String()),
		zap.String("name", plan.Name),
	)
	return plan, nil
}

// GetFloorPlan returns a floor plan by id
func (s *Service) GetFloorPlan(ctx context.Context, id uuid.UUID) (*models.FloorPlan, error) {
	ctx, span := s.tracer.Start(ctx, "planning.get_floor_plan")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", id.String()))

	plan, err := s.store.FloorPlans.GetFloorPlan(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}
	return plan, nil
}

// SetFloorPlanArea updates a plan's usable area. Nil, negative and
// non-finite values all normalize to unknown before storage.
func (s *Service) SetFloorPlanArea(ctx context.Context, id uuid.UUID, area *float64) (*models.FloorPlan, error) {
	ctx, span := s.tracer.Start(ctx, "planning.set_floor_plan_area")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", id.String()))

	area = allocation.SanitizeArea(area)
	span.SetAttributes(attribute.Bool("floor_plan.area_known", area != nil))

	plan, err := s.store.FloorPlans.SetTotalArea(ctx, id, area)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to set floor plan area: %w", err)
	}

	s.logger.Info("floor plan area updated",
		zap.String("floor_plan_id", id.String()),
		zap.Bool("area_known", area != nil),
	)
	return plan, nil
}

// SaveRequirement appends a new space program for a plan. Negative counts
// are clamped to zero at this boundary; records are insert-only and the
// newest one becomes the plan's current program.
func (s *Service) SaveRequirement(ctx context.Context, floorPlanID uuid.UUID, req allocation.SpaceRequirement) (*models.Requirement, error) {
	ctx, span := s.tracer.Start(ctx, "planning.save_requirement")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", floorPlanID.String()))

	rec, err := s.store.Requirements.SaveRequirement(ctx, floorPlanID, req.Clamped())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to save requirement: %w", err)
	}

	span.SetAttributes(attribute.String("requirement.id", rec.ID.String()))
	s.logger.Info("requirement saved",
		zap.String("floor_plan_id", floorPlanID.String()),
		zap.String("requirement_id", rec.ID.String()),
		zap.Int("workstations", rec.Workstations),
	)
	return rec, nil
}

// LatestRequirement returns the plan's current space program
func (s *Service) LatestRequirement(ctx context.Context, floorPlanID uuid.UUID) (*models.Requirement, error) {
	ctx, span := s.tracer.Start(ctx, "planning.latest_requirement")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", floorPlanID.String()))

	rec, err := s.store.Requirements.LatestRequirement(ctx, floorPlanID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get latest requirement: %w", err)
	}
	return rec, nil
}

// EstimatePreview is the result of a stateless estimate preview.
type EstimatePreview struct {
	Estimate         allocation.AreaEstimate `json:"estimate"`
	FeasibilityScore int                     `json:"feasibility_score"`
	IsFeasible       bool                    `json:"is_feasible"`
}

// PreviewEstimate runs the estimator without persisting anything. The
// available area is the explicit override when given, otherwise the plan's
// stored area when a plan id is given, otherwise unknown.
func (s *Service) PreviewEstimate(ctx context.Context, floorPlanID *uuid.UUID, req allocation.SpaceRequirement, areaOverride *float64) (*EstimatePreview, error) {
	ctx, span := s.tracer.Start(ctx, "planning.preview_estimate")
	defer span.End()

	area := allocation.SanitizeArea(areaOverride)
	if area == nil && floorPlanID != nil {
		plan, err := s.store.FloorPlans.GetFloorPlan(ctx, *floorPlanID)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to get floor plan: %w", err)
		}
		area = allocation.SanitizeArea(plan.TotalArea)
	}
	span.SetAttributes(attribute.Bool("estimate.area_known", area != nil))

	req = req.Clamped()
	score := s.estimator.ScoreFeasibility(req, area)
	preview := &EstimatePreview{
		Estimate:         s.estimator.Estimate(req, area),
		FeasibilityScore: score,
		IsFeasible:       s.estimator.IsFeasible(score),
	}

	if s.metrics != nil {
		s.metrics.RecordEstimatePreviewed(ctx, area != nil)
	}
	return preview, nil
}

// GenerateSolution produces and stores a layout solution for a plan. The
// plan's current requirement is used unless requirementID selects an older
// snapshot. The stored record is returned directly, so the caller always
// reads its own write.
func (s *Service) GenerateSolution(ctx context.Context, floorPlanID uuid.UUID, requirementID *uuid.UUID) (*models.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "planning.generate_solution")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", floorPlanID.String()))

	start := time.Now()

	plan, err := s.store.FloorPlans.GetFloorPlan(ctx, floorPlanID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	var rec *models.Requirement
	if requirementID != nil {
		rec, err = s.store.Requirements.GetRequirement(ctx, *requirementID)
		if err == nil && rec.FloorPlanID != floorPlanID {
			err = repository.ErrNotFound
		}
	} else {
		rec, err = s.store.Requirements.LatestRequirement(ctx, floorPlanID)
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to resolve requirement: %w", err)
	}
	span.SetAttributes(attribute.String("requirement.id", rec.ID.String()))

	area := allocation.SanitizeArea(plan.TotalArea)
	req := rec.SpaceRequirement.Clamped()

	score := s.estimator.ScoreFeasibility(req, area)
	feasible := s.estimator.IsFeasible(score)
	placement := s.estimator.GeneratePlacement(req, area)
	suggestions := s.estimator.BuildSuggestions(req, area, feasible)

	stored, err := s.store.Solutions.AppendSolution(ctx, models.Solution{
		FloorPlanID:      floorPlanID,
		RequirementID:    rec.ID,
		FeasibilityScore: float64(score),
		IsFeasible:       feasible,
		PlacementPlan:    placement,
		Suggestions:      suggestions,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to append solution: %w", err)
	}

	span.SetAttributes(
		attribute.String("solution.id", stored.ID.String()),
		attribute.Int("solution.score", score),
		attribute.Bool("solution.feasible", feasible),
	)
	s.logger.Info("solution generated",
		zap.String("floor_plan_id", floorPlanID.String()),
		zap.String("requirement_id", rec.ID.String()),
		zap.String("solution_id", stored.ID.String()),
		zap.Int("score", score),
		zap.Bool("feasible", feasible),
	)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSolution(stored)
	}
	if s.metrics != nil {
		s.metrics.RecordSolutionGenerated(ctx, feasible, score, time.Since(start))
	}

	return stored, nil
}

// SolutionsForFloorPlan lists a plan's solution history, newest first
func (s *Service) SolutionsForFloorPlan(ctx context.Context, floorPlanID uuid.UUID) ([]*models.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "planning.solutions_for_floor_plan")
	defer span.End()
	span.SetAttributes(attribute.String("floor_plan.id", floorPlanID.String()))

	// The list endpoint is reachable for unknown plan ids too; distinguish
	// an empty history from a missing plan.
	if _, err := s.store.FloorPlans.GetFloorPlan(ctx, floorPlanID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	solutions, err := s.store.Solutions.SolutionsForFloorPlan(ctx, floorPlanID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	return solutions, nil
}

// SolutionsForRequirement lists one requirement's solutions, newest first
func (s *Service) SolutionsForRequirement(ctx context.Context, requirementID uuid.UUID) ([]*models.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "planning.solutions_for_requirement")
	defer span.End()
	span.SetAttributes(attribute.String("requirement.id", requirementID.String()))

	if _, err := s.store.Requirements.GetRequirement(ctx, requirementID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	solutions, err := s.store.Solutions.SolutionsForRequirement(ctx, requirementID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	return solutions, nil
}

// IsNotFound reports whether an error chain ends at a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
