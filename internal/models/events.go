package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedEvent is the envelope pushed to solution feed subscribers
type FeedEvent struct {
	Type        string    `json:"type"`
	FloorPlanID uuid.UUID `json:"floor_plan_id"`
	Solution    *Solution `json:"solution,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSolutionGenerated = "solution.generated"
)
