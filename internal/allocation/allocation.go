// Package allocation implements the space-allocation estimator: pure
// functions that turn a space requirement and an optional available floor
// area into an area estimate, a feasibility score, a placement breakdown,
// and advisory text. Nothing in this package performs I/O or keeps state;
// every operation is deterministic for identical inputs.
package allocation

import "math"

// SpaceRequirement describes the program a tenant wants to fit on a floor.
// Counts are per-unit demands, booleans are presence flags. AdditionalNotes
// is carried for display only and never participates in computation.
type SpaceRequirement struct {
	Workstations       int    `json:"workstations"`
	MeetingRoomsSmall  int    `json:"meeting_rooms_small"`
	MeetingRoomsMedium int    `json:"meeting_rooms_medium"`
	MeetingRoomsLarge  int    `json:"meeting_rooms_large"`
	PhoneBooths        int    `json:"phone_booths"`
	BreakoutAreas      int    `json:"breakout_areas"`
	KitchenPantry      bool   `json:"kitchen_pantry"`
	ReceptionArea      bool   `json:"reception_area"`
	ServerRoom         bool   `json:"server_room"`
	StorageRooms       int    `json:"storage_rooms"`
	AdditionalNotes    string `json:"additional_notes,omitempty"`
}

// TotalMeetingRooms returns the combined small+medium+large room demand.
func (r SpaceRequirement) TotalMeetingRooms() int {
	return r.MeetingRoomsSmall + r.MeetingRoomsMedium + r.MeetingRoomsLarge
}

// Clamped returns a copy of the requirement with negative counts zeroed.
// The estimator itself accepts any input; callers clamp at the boundary so
// malformed counts never reach the scoring thresholds.
func (r SpaceRequirement) Clamped() SpaceRequirement {
	out := r
	if out.Workstations < 0 {
		out.Workstations = 0
	}
	if out.MeetingRoomsSmall < 0 {
		out.MeetingRoomsSmall = 0
	}
	if out.MeetingRoomsMedium < 0 {
		out.MeetingRoomsMedium = 0
	}
	if out.MeetingRoomsLarge < 0 {
		out.MeetingRoomsLarge = 0
	}
	if out.PhoneBooths < 0 {
		out.PhoneBooths = 0
	}
	if out.BreakoutAreas < 0 {
		out.BreakoutAreas = 0
	}
	if out.StorageRooms < 0 {
		out.StorageRooms = 0
	}
	return out
}

// SanitizeArea normalizes an available-area value at the boundary: negative
// or non-finite areas become unknown (nil). Zero is kept — it is a known,
// merely hopeless, ceiling.
func SanitizeArea(area *float64) *float64 {
	if area == nil {
		return nil
	}
	if math.IsNaN(*area) || math.IsInf(*area, 0) || *area < 0 {
		return nil
	}
	v := *area
	return &v
}

// AreaEstimate is the derived area summary for a requirement.
type AreaEstimate struct {
	// RawArea is the weighted sum of per-item areas before circulation.
	RawArea float64 `json:"raw_area"`
	// TotalArea is RawArea with circulation overhead applied and rounded.
	TotalArea float64 `json:"total_area"`
	// Sufficient reports whether TotalArea fits the known available area.
	// It is true whenever no ceiling is known.
	Sufficient bool `json:"sufficient"`
}

// MeetingRoomsPlaced breaks down how many rooms of each size fit.
type MeetingRoomsPlaced struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

// AmenitiesPlaced mirrors the requested amenities. Amenities are copied
// through unconstrained; the planner never rejects them.
type AmenitiesPlaced struct {
	PhoneBooths   int  `json:"phone_booths"`
	BreakoutAreas int  `json:"breakout_areas"`
	Kitchen       bool `json:"kitchen"`
	Reception     bool `json:"reception"`
	Storage       int  `json:"storage"`
	ServerRoom    bool `json:"server_room"`
}

// ConstraintsMet reports per-category satisfaction of the placement plan.
type ConstraintsMet struct {
	Workstations bool `json:"workstations"`
	MeetingRooms bool `json:"meeting_rooms"`
	Amenities    bool `json:"amenities"`
}

// PlacementPlan is the subset of the requested program the estimator judges
// could actually be accommodated, with a utilization figure and constraint
// flags.
type PlacementPlan struct {
	Workstations    int                `json:"workstations_placed"`
	MeetingRooms    MeetingRoomsPlaced `json:"meeting_rooms_placed"`
	Amenities       AmenitiesPlaced    `json:"amenities_placed"`
	UtilizationRate float64            `json:"utilization_rate"`
	ConstraintsMet  ConstraintsMet     `json:"constraints_met"`
}
