package allocation

// UnitAreas holds the per-item programmed areas in square meters.
type UnitAreas struct {
	Workstation       float64
	MeetingRoomSmall  float64
	MeetingRoomMedium float64
	MeetingRoomLarge  float64
	PhoneBooth        float64
	BreakoutArea      float64
	KitchenPantry     float64
	ReceptionArea     float64
	StorageRoom       float64
	ServerRoom        float64
}

// ScoreBand maps a minimum available/required ratio to a feasibility score.
// Bands are evaluated in order; the first band whose MinRatio is reached
// wins, so they must be sorted from the most favorable ratio down.
type ScoreBand struct {
	MinRatio float64
	Score    int
}

// Params collects every constant the estimator uses. Keeping them in one
// structure lets tests probe threshold boundaries in isolation and keeps
// the algorithm free of inline literals.
type Params struct {
	Units UnitAreas

	// CirculationFactor models corridor/common-area overhead as a flat
	// multiplier on programmed area.
	CirculationFactor float64

	// UnknownAreaScore is the sentinel returned when no available-area
	// ceiling is known. It is a neutral marker, not a measurement.
	UnknownAreaScore int
	ScoreBands       []ScoreBand
	FallbackScore    int
	// FeasibleScoreFloor is the minimum score counted as feasible.
	FeasibleScoreFloor int

	// WorkstationEfficiency is the packing factor applied to requested
	// workstations; placed counts are floored, never rounded up.
	WorkstationEfficiency float64
	// SmallRoomAreaBudget / MediumRoomAreaBudget are the square meters of
	// total floor area that buy one room slot of the respective size.
	SmallRoomAreaBudget  float64
	MediumRoomAreaBudget float64
	// LargeRoomCap limits large meeting rooms regardless of demand or
	// area. A product decision carried over verbatim; do not "fix".
	LargeRoomCap int

	// UtilizationCap bounds the reported utilization percentage.
	UtilizationCap float64

	// WorkstationConstraintRatio / MeetingRoomConstraintRatio are the
	// fractions of demand a plan must satisfy for the respective
	// constraint flag. Large rooms are excluded from the meeting-room
	// check.
	WorkstationConstraintRatio float64
	MeetingRoomConstraintRatio float64

	// CollaborationZoneThreshold / BookingSystemThreshold trigger the
	// optional suggestion lines when exceeded.
	CollaborationZoneThreshold int
	BookingSystemThreshold     int
}

// DefaultParams returns the production parameter set.
func DefaultParams() Params {
	return Params{
		Units: UnitAreas{
			Workstation:       6,
			MeetingRoomSmall:  15,
			MeetingRoomMedium: 25,
			MeetingRoomLarge:  40,
			PhoneBooth:        2,
			BreakoutArea:      20,
			KitchenPantry:     15,
			ReceptionArea:     20,
			StorageRoom:       10,
			ServerRoom:        15,
		},
		CirculationFactor: 1.4,
		UnknownAreaScore:  50,
		ScoreBands: []ScoreBand{
			{MinRatio: 1.2, Score: 95},
			{MinRatio: 1.0, Score: 85},
			{MinRatio: 0.9, Score: 70},
			{MinRatio: 0.8, Score: 55},
		},
		FallbackScore:              40,
		FeasibleScoreFloor:         60,
		WorkstationEfficiency:      0.85,
		SmallRoomAreaBudget:        100,
		MediumRoomAreaBudget:       150,
		LargeRoomCap:               1,
		UtilizationCap:             95,
		WorkstationConstraintRatio: 0.8,
		MeetingRoomConstraintRatio: 0.7,
		CollaborationZoneThreshold: 30,
		BookingSystemThreshold:     5,
	}
}
