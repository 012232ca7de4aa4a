package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/models"
)

// Memory implements every repository on in-process maps. It backs the
// memory storage driver and the unit tests; each method hands out copies
// so callers can never mutate stored state through a returned pointer.
type Memory struct {
	mu           sync.RWMutex
	plans        map[uuid.UUID]models.FloorPlan
	requirements []models.Requirement
	solutions    []models.Solution
}

// NewMemory creates an empty in-process store
func NewMemory() *Memory {
	return &Memory{
		plans: make(map[uuid.UUID]models.FloorPlan),
	}
}

var (
	_ FloorPlansRepository   = (*Memory)(nil)
	_ RequirementsRepository = (*Memory)(nil)
	_ SolutionsRepository    = (*Memory)(nil)
)

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func clonePlan(p models.FloorPlan) models.FloorPlan {
	p.TotalArea = cloneFloat(p.TotalArea)
	p.ImagePath = cloneString(p.ImagePath)
	return p
}

// CreateFloorPlan stores a new plan with an unknown area
func (m *Memory) CreateFloorPlan(_ context.Context, name string, imagePath *string) (*models.FloorPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	plan := models.FloorPlan{
		ID:        uuid.New(),
		Name:      name,
		ImagePath: cloneString(imagePath),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.plans[plan.ID] = plan

	out := clonePlan(plan)
	return &out, nil
}

// GetFloorPlan returns the plan or ErrNotFound
func (m *Memory) GetFloorPlan(_ context.Context, id uuid.UUID) (*models.FloorPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plan, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := clonePlan(plan)
	return &out, nil
}

// SetTotalArea updates the usable area; nil clears it back to unknown
func (m *Memory) SetTotalArea(_ context.Context, id uuid.UUID, area *float64) (*models.FloorPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	plan, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}

	plan.TotalArea = cloneFloat(area)
	plan.UpdatedAt = time.Now().UTC()
	m.plans[id] = plan

	out := clonePlan(plan)
	return &out, nil
}

// SaveRequirement appends a new program version for the plan
func (m *Memory) SaveRequirement(_ context.Context, floorPlanID uuid.UUID, req allocation.SpaceRequirement) (*models.Requirement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.plans[floorPlanID]; !ok {
		return nil, ErrNotFound
	}

	rec := models.Requirement{
		ID:               uuid.New(),
		FloorPlanID:      floorPlanID,
		SpaceRequirement: req,
		CreatedAt:        time.Now().UTC(),
	}
	m.requirements = append(m.requirements, rec)

	out := rec
	return &out, nil
}

// GetRequirement returns the record or ErrNotFound
func (m *Memory) GetRequirement(_ context.Context, id uuid.UUID) (*models.Requirement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.requirements {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// LatestRequirement returns the newest program for the plan. Records are
// appended in order, so the last match wins.
func (m *Memory) LatestRequirement(_ context.Context, floorPlanID uuid.UUID) (*models.Requirement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.requirements) - 1; i >= 0; i-- {
		if m.requirements[i].FloorPlanID == floorPlanID {
			out := m.requirements[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// AppendSolution stores a generated solution
func (m *Memory) AppendSolution(_ context.Context, sol models.Solution) (*models.Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.plans[sol.FloorPlanID]; !ok {
		return nil, ErrNotFound
	}
	if !m.requirementExists(sol.RequirementID) {
		return nil, ErrNotFound
	}

	sol.ID = uuid.New()
	sol.CreatedAt = time.Now().UTC()
	m.solutions = append(m.solutions, sol)

	out := sol
	return &out, nil
}

func (m *Memory) requirementExists(id uuid.UUID) bool {
	for _, rec := range m.requirements {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// SolutionsForFloorPlan lists a plan's solutions, newest first
func (m *Memory) SolutionsForFloorPlan(_ context.Context, floorPlanID uuid.UUID) ([]*models.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterSolutions(func(s models.Solution) bool {
		return s.FloorPlanID == floorPlanID
	}), nil
}

// SolutionsForRequirement lists one requirement's solutions, newest first
func (m *Memory) SolutionsForRequirement(_ context.Context, requirementID uuid.UUID) ([]*models.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterSolutions(func(s models.Solution) bool {
		return s.RequirementID == requirementID
	}), nil
}

func (m *Memory) filterSolutions(match func(models.Solution) bool) []*models.Solution {
	var out []*models.Solution
	for i := len(m.solutions) - 1; i >= 0; i-- {
		if match(m.solutions[i]) {
			sol := m.solutions[i]
			out = append(out, &sol)
		}
	}
	return out
}
