package models

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeFloorPlanNotFound   = "FLOOR_PLAN_NOT_FOUND"
	ErrCodeRequirementNotFound = "REQUIREMENT_NOT_FOUND"
	ErrCodeSolutionNotFound    = "SOLUTION_NOT_FOUND"
)
