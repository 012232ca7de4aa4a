package allocation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuggestions_UnknownArea(t *testing.T) {
	e := NewDefaultEstimator()
	req := scenarioRequirement()

	// A missing ceiling short-circuits everything else, whatever the
	// feasibility flag claims.
	for _, feasible := range []bool{true, false} {
		got := e.BuildSuggestions(req, nil, feasible)
		assert.Equal(t, suggestionSetArea, got)
		assert.NotContains(t, got, "\n")
	}
}

func TestBuildSuggestions_Feasible(t *testing.T) {
	e := NewDefaultEstimator()
	got := e.BuildSuggestions(scenarioRequirement(), areaPtr(300), true)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, suggestionFeasibleLead, lines[0])
	assert.Contains(t, got, "open-plan layout")
	assert.Contains(t, got, "glass partitions")
	assert.Contains(t, got, "future expansion")
}

func TestBuildSuggestions_Infeasible(t *testing.T) {
	e := NewDefaultEstimator()
	got := e.BuildSuggestions(scenarioRequirement(), areaPtr(150), false)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, suggestionInfeasibleLead, lines[0])
	assert.Contains(t, got, "desk sharing")
	assert.Contains(t, got, "multi-purpose spaces")
}

func TestBuildSuggestions_ConditionalLines(t *testing.T) {
	e := NewDefaultEstimator()

	t.Run("collaboration zone appears above 30 workstations", func(t *testing.T) {
		at := e.BuildSuggestions(SpaceRequirement{Workstations: 30}, areaPtr(500), true)
		above := e.BuildSuggestions(SpaceRequirement{Workstations: 31}, areaPtr(500), true)

		assert.NotContains(t, at, suggestionCollaborationZone)
		assert.Contains(t, above, suggestionCollaborationZone)
	})

	t.Run("booking system appears above 5 meeting rooms", func(t *testing.T) {
		at := SpaceRequirement{MeetingRoomsSmall: 2, MeetingRoomsMedium: 2, MeetingRoomsLarge: 1}
		above := SpaceRequirement{MeetingRoomsSmall: 3, MeetingRoomsMedium: 2, MeetingRoomsLarge: 1}

		assert.NotContains(t, e.BuildSuggestions(at, areaPtr(500), true), suggestionBookingSystem)
		assert.Contains(t, e.BuildSuggestions(above, areaPtr(500), true), suggestionBookingSystem)
	})

	t.Run("large rooms count toward the booking threshold", func(t *testing.T) {
		req := SpaceRequirement{MeetingRoomsLarge: 6}
		assert.Contains(t, e.BuildSuggestions(req, areaPtr(500), true), suggestionBookingSystem)
	})

	t.Run("both lines in fixed order", func(t *testing.T) {
		req := SpaceRequirement{Workstations: 40, MeetingRoomsSmall: 6}
		got := e.BuildSuggestions(req, areaPtr(1000), true)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, suggestionCollaborationZone, lines[4])
		assert.Equal(t, suggestionBookingSystem, lines[5])
	})

	t.Run("conditional lines also follow the infeasible set", func(t *testing.T) {
		req := SpaceRequirement{Workstations: 40, MeetingRoomsSmall: 6}
		got := e.BuildSuggestions(req, areaPtr(100), false)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, suggestionInfeasibleLead, lines[0])
		assert.Equal(t, suggestionCollaborationZone, lines[4])
	})
}

func TestBuildSuggestions_ScenarioC(t *testing.T) {
	e := NewDefaultEstimator()
	req := scenarioRequirement()
	available := areaPtr(150)

	score := e.ScoreFeasibility(req, available)
	require.False(t, e.IsFeasible(score))

	got := e.BuildSuggestions(req, available, e.IsFeasible(score))
	assert.True(t, strings.HasPrefix(got, suggestionInfeasibleLead))
}
