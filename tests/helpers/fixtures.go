package helpers

import (
	"encoding/json"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
)

// Default test fixtures
var (
	// DefaultRequirement is the reference program used across the
	// integration suite: it estimates to 237 square meters.
	DefaultRequirement = allocation.SpaceRequirement{
		Workstations:       10,
		MeetingRoomsSmall:  1,
		MeetingRoomsMedium: 1,
		PhoneBooths:        2,
		BreakoutAreas:      1,
		KitchenPantry:      true,
		ReceptionArea:      true,
		StorageRooms:       1,
	}

	// GenerousArea comfortably fits DefaultRequirement.
	GenerousArea = 300.0

	// TightArea is well short of what DefaultRequirement needs.
	TightArea = 150.0
)

// CreateFloorPlanRequest builds a floor plan creation payload
func CreateFloorPlanRequest(name string, totalArea *float64) map[string]interface{} {
	payload := map[string]interface{}{
		"name": name,
	}
	if totalArea != nil {
		payload["total_area"] = *totalArea
	}
	return payload
}

// CreateSetAreaRequest builds an area update payload; nil clears the area
func CreateSetAreaRequest(totalArea *float64) map[string]interface{} {
	if totalArea == nil {
		return map[string]interface{}{"total_area": nil}
	}
	return map[string]interface{}{"total_area": *totalArea}
}

// CreateRequirementRequest builds a requirement payload from a program
func CreateRequirementRequest(req allocation.SpaceRequirement) map[string]interface{} {
	return map[string]interface{}{
		"workstations":         req.Workstations,
		"meeting_rooms_small":  req.MeetingRoomsSmall,
		"meeting_rooms_medium": req.MeetingRoomsMedium,
		"meeting_rooms_large":  req.MeetingRoomsLarge,
		"phone_booths":         req.PhoneBooths,
		"breakout_areas":       req.BreakoutAreas,
		"kitchen_pantry":       req.KitchenPantry,
		"reception_area":       req.ReceptionArea,
		"storage_rooms":        req.StorageRooms,
		"server_room":          req.ServerRoom,
		"additional_notes":     req.AdditionalNotes,
	}
}

// CreateEstimateRequest builds a standalone estimate payload
func CreateEstimateRequest(req allocation.SpaceRequirement, availableArea *float64) map[string]interface{} {
	payload := map[string]interface{}{
		"requirement": CreateRequirementRequest(req),
	}
	if availableArea != nil {
		payload["available_area"] = *availableArea
	}
	return payload
}

// ToJSON converts a fixture to JSON string
func ToJSON(fixture interface{}) string {
	data, _ := json.Marshal(fixture)
	return string(data)
}

// FromJSON parses JSON string to map
func FromJSON(jsonStr string) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal([]byte(jsonStr), &result)
	return result
}

// Float64Ptr returns a pointer to the given float
func Float64Ptr(v float64) *float64 {
	return &v
}
