package planning

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/models"
	"github.com/officeflow/space-planner/planning-api/internal/repository"
)

// recordingBroadcaster captures broadcast solutions for assertions.
type recordingBroadcaster struct {
	mu        sync.Mutex
	solutions []*models.Solution
}

func (b *recordingBroadcaster) BroadcastSolution(sol *models.Solution) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.solutions = append(b.solutions, sol)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.solutions)
}

func newTestService(t *testing.T) (*Service, *recordingBroadcaster) {
	t.Helper()
	broadcaster := &recordingBroadcaster{}
	svc := NewService(repository.NewMemoryStore(), allocation.NewDefaultEstimator(), nil, broadcaster, zap.NewNop())
	return svc, broadcaster
}

func referenceRequirement() allocation.SpaceRequirement {
	return allocation.SpaceRequirement{
		Workstations:       10,
		MeetingRoomsSmall:  1,
		MeetingRoomsMedium: 1,
		PhoneBooths:        2,
		BreakoutAreas:      1,
		KitchenPantry:      true,
		ReceptionArea:      true,
		StorageRooms:       1,
	}
}

func areaPtr(v float64) *float64 {
	return &v
}

func TestService_FloorPlanLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "HQ 3rd floor", nil)
	require.NoError(t, err)
	assert.Nil(t, plan.TotalArea)

	t.Run("get returns the created plan", func(t *testing.T) {
		got, err := svc.GetFloorPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, got.ID)
		assert.Equal(t, "HQ 3rd floor", got.Name)
	})

	t.Run("set and clear the usable area", func(t *testing.T) {
		updated, err := svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(300))
		require.NoError(t, err)
		require.NotNil(t, updated.TotalArea)
		assert.Equal(t, 300.0, *updated.TotalArea)

		cleared, err := svc.SetFloorPlanArea(ctx, plan.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, cleared.TotalArea)
	})

	t.Run("negative and non-finite areas normalize to unknown", func(t *testing.T) {
		updated, err := svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(-50))
		require.NoError(t, err)
		assert.Nil(t, updated.TotalArea)

		updated, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(math.NaN()))
		require.NoError(t, err)
		assert.Nil(t, updated.TotalArea)
	})

	t.Run("unknown plan id reports not found", func(t *testing.T) {
		_, err := svc.GetFloorPlan(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestService_SaveRequirement(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "Annex", nil)
	require.NoError(t, err)

	t.Run("negative counts clamp to zero", func(t *testing.T) {
		req := referenceRequirement()
		req.Workstations = -4
		req.PhoneBooths = -1

		rec, err := svc.SaveRequirement(ctx, plan.ID, req)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Workstations)
		assert.Equal(t, 0, rec.PhoneBooths)
		assert.Equal(t, 1, rec.MeetingRoomsSmall)
	})

	t.Run("newest record wins as the current program", func(t *testing.T) {
		first, err := svc.SaveRequirement(ctx, plan.ID, referenceRequirement())
		require.NoError(t, err)

		updated := referenceRequirement()
		updated.Workstations = 25
		second, err := svc.SaveRequirement(ctx, plan.ID, updated)
		require.NoError(t, err)

		latest, err := svc.LatestRequirement(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, latest.ID)
		assert.Equal(t, 25, latest.Workstations)
		assert.NotEqual(t, first.ID, latest.ID)
	})

	t.Run("latest requirement for an empty plan is not found", func(t *testing.T) {
		empty, err := svc.CreateFloorPlan(ctx, "Empty", nil)
		require.NoError(t, err)

		_, err = svc.LatestRequirement(ctx, empty.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestService_PreviewEstimate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("without any area the score is the unknown sentinel", func(t *testing.T) {
		preview, err := svc.PreviewEstimate(ctx, nil, referenceRequirement(), nil)
		require.NoError(t, err)
		assert.Equal(t, 237.0, preview.Estimate.TotalArea)
		assert.True(t, preview.Estimate.Sufficient)
		assert.Equal(t, 50, preview.FeasibilityScore)
		assert.False(t, preview.IsFeasible)
	})

	t.Run("explicit override wins over the stored plan area", func(t *testing.T) {
		plan, err := svc.CreateFloorPlan(ctx, "Override", nil)
		require.NoError(t, err)
		_, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(150))
		require.NoError(t, err)

		preview, err := svc.PreviewEstimate(ctx, &plan.ID, referenceRequirement(), areaPtr(300))
		require.NoError(t, err)
		assert.Equal(t, 95, preview.FeasibilityScore)
		assert.True(t, preview.IsFeasible)
	})

	t.Run("plan area is used when no override is given", func(t *testing.T) {
		plan, err := svc.CreateFloorPlan(ctx, "Stored", nil)
		require.NoError(t, err)
		_, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(150))
		require.NoError(t, err)

		preview, err := svc.PreviewEstimate(ctx, &plan.ID, referenceRequirement(), nil)
		require.NoError(t, err)
		assert.Equal(t, 40, preview.FeasibilityScore)
		assert.False(t, preview.IsFeasible)
	})
}

func TestService_GenerateSolution(t *testing.T) {
	svc, broadcaster := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "HQ", nil)
	require.NoError(t, err)
	_, err = svc.SaveRequirement(ctx, plan.ID, referenceRequirement())
	require.NoError(t, err)

	t.Run("unknown area yields the neutral solution", func(t *testing.T) {
		sol, err := svc.GenerateSolution(ctx, plan.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 50.0, sol.FeasibilityScore)
		assert.False(t, sol.IsFeasible)
		assert.Equal(t, 8, sol.Workstations) // floor(10 * 0.85)
	})

	t.Run("generous area yields a feasible solution", func(t *testing.T) {
		_, err := svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(300))
		require.NoError(t, err)

		sol, err := svc.GenerateSolution(ctx, plan.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 95.0, sol.FeasibilityScore)
		assert.True(t, sol.IsFeasible)
		assert.Equal(t, 1, sol.MeetingRooms.Small)  // min(1, floor(300/100))
		assert.Equal(t, 1, sol.MeetingRooms.Medium) // min(1, floor(300/150))
		assert.True(t, sol.ConstraintsMet.MeetingRooms)
	})

	t.Run("generated solutions are broadcast", func(t *testing.T) {
		assert.Equal(t, 2, broadcaster.count())
	})
}

func TestService_GenerateSolution_MeetingRooms(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "Rooms", nil)
	require.NoError(t, err)
	_, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(300))
	require.NoError(t, err)

	req := referenceRequirement()
	req.MeetingRoomsSmall = 5
	req.MeetingRoomsMedium = 4
	req.MeetingRoomsLarge = 3
	_, err = svc.SaveRequirement(ctx, plan.ID, req)
	require.NoError(t, err)

	sol, err := svc.GenerateSolution(ctx, plan.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, sol.MeetingRooms.Small)  // floor(300/100)
	assert.Equal(t, 2, sol.MeetingRooms.Medium) // floor(300/150)
	assert.Equal(t, 1, sol.MeetingRooms.Large)  // capped regardless of demand
}

func TestService_GenerateSolution_HistoricalRequirement(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "History", nil)
	require.NoError(t, err)
	_, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(300))
	require.NoError(t, err)

	old, err := svc.SaveRequirement(ctx, plan.ID, referenceRequirement())
	require.NoError(t, err)

	bigger := referenceRequirement()
	bigger.Workstations = 60
	_, err = svc.SaveRequirement(ctx, plan.ID, bigger)
	require.NoError(t, err)

	t.Run("explicit requirement id selects the older snapshot", func(t *testing.T) {
		sol, err := svc.GenerateSolution(ctx, plan.ID, &old.ID)
		require.NoError(t, err)
		assert.Equal(t, old.ID, sol.RequirementID)
		assert.Equal(t, 8, sol.Workstations)
	})

	t.Run("requirement of another plan is rejected", func(t *testing.T) {
		other, err := svc.CreateFloorPlan(ctx, "Other", nil)
		require.NoError(t, err)
		foreign, err := svc.SaveRequirement(ctx, other.ID, referenceRequirement())
		require.NoError(t, err)

		_, err = svc.GenerateSolution(ctx, plan.ID, &foreign.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestService_SolutionHistory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.CreateFloorPlan(ctx, "Timeline", nil)
	require.NoError(t, err)
	rec, err := svc.SaveRequirement(ctx, plan.ID, referenceRequirement())
	require.NoError(t, err)

	first, err := svc.GenerateSolution(ctx, plan.ID, nil)
	require.NoError(t, err)
	_, err = svc.SetFloorPlanArea(ctx, plan.ID, areaPtr(300))
	require.NoError(t, err)
	second, err := svc.GenerateSolution(ctx, plan.ID, nil)
	require.NoError(t, err)

	t.Run("plan history is newest first", func(t *testing.T) {
		solutions, err := svc.SolutionsForFloorPlan(ctx, plan.ID)
		require.NoError(t, err)
		require.Len(t, solutions, 2)
		assert.Equal(t, second.ID, solutions[0].ID)
		assert.Equal(t, first.ID, solutions[1].ID)
	})

	t.Run("earlier solutions are immutable snapshots", func(t *testing.T) {
		solutions, err := svc.SolutionsForFloorPlan(ctx, plan.ID)
		require.NoError(t, err)
		// The first solution was generated before the area was set and
		// keeps its neutral score even though the plan changed since.
		assert.Equal(t, 50.0, solutions[1].FeasibilityScore)
		assert.Equal(t, 95.0, solutions[0].FeasibilityScore)
	})

	t.Run("requirement history matches", func(t *testing.T) {
		solutions, err := svc.SolutionsForRequirement(ctx, rec.ID)
		require.NoError(t, err)
		assert.Len(t, solutions, 2)
	})

	t.Run("history of an unknown plan is not found", func(t *testing.T) {
		_, err := svc.SolutionsForFloorPlan(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}
