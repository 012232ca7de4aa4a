package allocation

import "math"

// Estimator computes area estimates, feasibility scores and placement plans
// for space requirements. It carries only its parameter set and is safe for
// concurrent use.
type Estimator struct {
	params Params
}

// NewEstimator creates an estimator with the given parameters.
func NewEstimator(params Params) *Estimator {
	return &Estimator{params: params}
}

// NewDefaultEstimator creates an estimator with the production parameters.
func NewDefaultEstimator() *Estimator {
	return NewEstimator(DefaultParams())
}

// Params returns the parameter set the estimator was built with.
func (e *Estimator) Params() Params {
	return e.params
}

// RawArea computes the weighted area sum in square meters before
// circulation overhead: count × unit area for numeric fields, plus the unit
// area once for each boolean flag that is set.
func (e *Estimator) RawArea(req SpaceRequirement) float64 {
	u := e.params.Units
	total := float64(req.Workstations)*u.Workstation +
		float64(req.MeetingRoomsSmall)*u.MeetingRoomSmall +
		float64(req.MeetingRoomsMedium)*u.MeetingRoomMedium +
		float64(req.MeetingRoomsLarge)*u.MeetingRoomLarge +
		float64(req.PhoneBooths)*u.PhoneBooth +
		float64(req.BreakoutAreas)*u.BreakoutArea +
		float64(req.StorageRooms)*u.StorageRoom
	if req.KitchenPantry {
		total += u.KitchenPantry
	}
	if req.ReceptionArea {
		total += u.ReceptionArea
	}
	if req.ServerRoom {
		total += u.ServerRoom
	}
	return total
}

// EstimateArea returns the circulation-adjusted area requirement, rounded
// to the nearest square meter.
func (e *Estimator) EstimateArea(req SpaceRequirement) float64 {
	return math.Round(e.RawArea(req) * e.params.CirculationFactor)
}

// IsSufficient reports whether an estimated area fits the available area.
// With no known ceiling there is nothing to judge against, so the answer
// is true.
func (e *Estimator) IsSufficient(estimatedArea float64, availableArea *float64) bool {
	if availableArea == nil {
		return true
	}
	return estimatedArea <= *availableArea
}

// Estimate combines EstimateArea and IsSufficient into the derived
// area summary for a requirement.
func (e *Estimator) Estimate(req SpaceRequirement, availableArea *float64) AreaEstimate {
	raw := e.RawArea(req)
	total := math.Round(raw * e.params.CirculationFactor)
	return AreaEstimate{
		RawArea:    raw,
		TotalArea:  total,
		Sufficient: e.IsSufficient(total, availableArea),
	}
}

// ScoreFeasibility maps the available/required area ratio onto a discrete
// 0-100 score. An unknown available area yields the neutral sentinel
// score. The ratio uses the unrounded circulation-adjusted requirement and
// is compared against the score bands in order, first match wins.
func (e *Estimator) ScoreFeasibility(req SpaceRequirement, availableArea *float64) int {
	if availableArea == nil {
		return e.params.UnknownAreaScore
	}
	withCirculation := e.RawArea(req) * e.params.CirculationFactor
	ratio := *availableArea / withCirculation
	for _, band := range e.params.ScoreBands {
		if ratio >= band.MinRatio {
			return band.Score
		}
	}
	return e.params.FallbackScore
}

// IsFeasible reports whether a feasibility score clears the feasible floor.
func (e *Estimator) IsFeasible(score int) bool {
	return score >= e.params.FeasibleScoreFloor
}

// GeneratePlacement derives the placement plan for a requirement against an
// available area. Workstations are discounted by the packing efficiency;
// small and medium rooms are limited by per-room area budgets; large rooms
// are capped outright. Amenities pass through untouched.
func (e *Estimator) GeneratePlacement(req SpaceRequirement, availableArea *float64) PlacementPlan {
	p := e.params

	area := 0.0
	if availableArea != nil {
		area = *availableArea
	}

	workstations := int(math.Floor(float64(req.Workstations) * p.WorkstationEfficiency))
	small := min(req.MeetingRoomsSmall, int(math.Floor(area/p.SmallRoomAreaBudget)))
	medium := min(req.MeetingRoomsMedium, int(math.Floor(area/p.MediumRoomAreaBudget)))
	large := min(req.MeetingRoomsLarge, p.LargeRoomCap)

	// Division guard: an absent or zero ceiling substitutes 1 so the
	// utilization figure stays finite.
	divisor := area
	if divisor == 0 {
		divisor = 1
	}
	utilization := float64(workstations) * p.Units.Workstation / divisor * 100
	if utilization > p.UtilizationCap {
		utilization = p.UtilizationCap
	}

	return PlacementPlan{
		Workstations: workstations,
		MeetingRooms: MeetingRoomsPlaced{Small: small, Medium: medium, Large: large},
		Amenities: AmenitiesPlaced{
			PhoneBooths:   req.PhoneBooths,
			BreakoutAreas: req.BreakoutAreas,
			Kitchen:       req.KitchenPantry,
			Reception:     req.ReceptionArea,
			Storage:       req.StorageRooms,
			ServerRoom:    req.ServerRoom,
		},
		UtilizationRate: utilization,
		ConstraintsMet: ConstraintsMet{
			Workstations: float64(workstations) >= float64(req.Workstations)*p.WorkstationConstraintRatio,
			// Large rooms are deliberately left out of the meeting-room
			// check; the cap would make it unsatisfiable.
			MeetingRooms: float64(small+medium) >= float64(req.MeetingRoomsSmall+req.MeetingRoomsMedium)*p.MeetingRoomConstraintRatio,
			Amenities:    true,
		},
	}
}
