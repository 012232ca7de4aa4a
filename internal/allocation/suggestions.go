package allocation

import "strings"

// Suggestion lines are frozen copy: the builder is a fixed decision table,
// and clients as well as tests rely on the exact wording.
const (
	suggestionSetArea = "Set the floor plan's total usable area to receive a detailed feasibility assessment."

	suggestionInfeasibleLead = "The requested program does not fit the available area comfortably. Consider the following adjustments:"
	suggestionReduceDesks    = "- Reduce the number of workstations or adopt desk sharing"
	suggestionFlexibleSpace  = "- Use flexible, multi-purpose spaces that can serve several functions"
	suggestionReassessNeeds  = "- Reassess which facilities are essential for day-to-day operation"

	suggestionFeasibleLead   = "The requested program fits the available area. Recommendations:"
	suggestionOpenPlan       = "- An open-plan layout will maximize flexibility and daylight"
	suggestionGlassPartition = "- Use glass partitions for meeting rooms to keep the floor open"
	suggestionReserveGrowth  = "- Reserve 10-15% of the area for future expansion"

	suggestionCollaborationZone = "- With more than 30 workstations, plan a dedicated collaboration zone"
	suggestionBookingSystem     = "- With this many meeting rooms, introduce a room booking system"
)

// BuildSuggestions assembles the advisory text for a requirement. Without a
// known available area it returns the single set-the-area line; otherwise a
// lead line and three fixed bullets for the feasibility branch, plus the
// conditional collaboration-zone and booking-system lines. Lines are joined
// by newlines in a fixed order.
func (e *Estimator) BuildSuggestions(req SpaceRequirement, availableArea *float64, feasible bool) string {
	if availableArea == nil {
		return suggestionSetArea
	}

	var lines []string
	if feasible {
		lines = append(lines,
			suggestionFeasibleLead,
			suggestionOpenPlan,
			suggestionGlassPartition,
			suggestionReserveGrowth,
		)
	} else {
		lines = append(lines,
			suggestionInfeasibleLead,
			suggestionReduceDesks,
			suggestionFlexibleSpace,
			suggestionReassessNeeds,
		)
	}

	if req.Workstations > e.params.CollaborationZoneThreshold {
		lines = append(lines, suggestionCollaborationZone)
	}
	if req.TotalMeetingRooms() > e.params.BookingSystemThreshold {
		lines = append(lines, suggestionBookingSystem)
	}

	return strings.Join(lines, "\n")
}
