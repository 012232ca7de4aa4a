package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/allocation"
	"github.com/officeflow/space-planner/planning-api/internal/models"
	"github.com/officeflow/space-planner/planning-api/internal/planning"
)

// Handler handles HTTP requests for the gateway layer
type Handler struct {
	service *planning.Service
	feed    *SolutionFeed
	logger  *zap.Logger
}

// NewHandler creates a new gateway handler
func NewHandler(service *planning.Service, feed *SolutionFeed, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		feed:    feed,
		logger:  logger,
	}
}

// RegisterRoutes attaches every /api route to the router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")

	api.POST("/floor-plans", h.CreateFloorPlan)
	api.GET("/floor-plans/:id", h.GetFloorPlan)
	api.PUT("/floor-plans/:id/area", h.SetFloorPlanArea)

	api.POST("/floor-plans/:id/requirements", h.SaveRequirement)
	api.GET("/floor-plans/:id/requirements", h.LatestRequirement)

	api.POST("/floor-plans/:id/solutions", h.GenerateSolution)
	api.GET("/floor-plans/:id/solutions", h.SolutionsForFloorPlan)
	api.GET("/requirements/:id/solutions", h.SolutionsForRequirement)

	api.POST("/estimate", h.PreviewEstimate)

	api.GET("/ws/floor-plans/:id/solutions", h.feed.Stream)
}

// respondError writes the API error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: message, Code: code})
}

// respondServiceError maps a service failure onto the API error envelope.
// Missing records become 404s; anything else is a generic retryable 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	if planning.IsNotFound(err) {
		respondError(c, http.StatusNotFound, notFoundCode, notFoundMessage)
		return
	}
	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, models.ErrCodeInternalError, "Something went wrong. Please try again.")
}

func parseIDParam(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateFloorPlanRequest represents a floor plan creation request
type CreateFloorPlanRequest struct {
	Name      string   `json:"name" binding:"required"`
	ImagePath *string  `json:"image_path"`
	TotalArea *float64 `json:"total_area"`
}

// CreateFloorPlan godoc
// @Summary Create floor plan
// @Description Register a new floor plan, optionally with its usable area
// @Tags floor-plans
// @Accept json
// @Produce json
// @Param request body CreateFloorPlanRequest true "Floor plan details"
// @Success 201 {object} models.FloorPlan
// @Failure 400 {object} models.ErrorResponse
// @Router /floor-plans [post]
func (h *Handler) CreateFloorPlan(c *gin.Context) {
	var req CreateFloorPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request")
		return
	}

	plan, err := h.service.CreateFloorPlan(c.Request.Context(), req.Name, req.ImagePath)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeInternalError, "")
		return
	}

	if req.TotalArea != nil {
		plan, err = h.service.SetFloorPlanArea(c.Request.Context(), plan.ID, req.TotalArea)
		if err != nil {
			h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
			return
		}
	}

	c.JSON(http.StatusCreated, plan)
}

// GetFloorPlan godoc
// @Summary Get floor plan
// @Description Fetch one floor plan by id
// @Tags floor-plans
// @Produce json
// @Param id path string true "Floor plan ID"
// @Success 200 {object} models.FloorPlan
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id} [get]
func (h *Handler) GetFloorPlan(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	plan, err := h.service.GetFloorPlan(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SetAreaRequest represents a usable-area update. A null total_area clears
// the stored value back to unknown.
type SetAreaRequest struct {
	TotalArea *float64 `json:"total_area"`
}

// SetFloorPlanArea godoc
// @Summary Set floor plan area
// @Description Update the usable area of a floor plan; null clears it
// @Tags floor-plans
// @Accept json
// @Produce json
// @Param id path string true "Floor plan ID"
// @Param request body SetAreaRequest true "New usable area"
// @Success 200 {object} models.FloorPlan
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id}/area [put]
func (h *Handler) SetFloorPlanArea(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	var req SetAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request")
		return
	}

	plan, err := h.service.SetFloorPlanArea(c.Request.Context(), id, req.TotalArea)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SaveRequirement godoc
// @Summary Save space requirement
// @Description Append a new space program for a floor plan; the newest record is the current one
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Floor plan ID"
// @Param request body allocation.SpaceRequirement true "Space requirement"
// @Success 201 {object} models.Requirement
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id}/requirements [post]
func (h *Handler) SaveRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	var req allocation.SpaceRequirement
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request")
		return
	}

	rec, err := h.service.SaveRequirement(c.Request.Context(), id, req)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// LatestRequirement godoc
// @Summary Get current requirement
// @Description Fetch the most recent space program of a floor plan
// @Tags requirements
// @Produce json
// @Param id path string true "Floor plan ID"
// @Success 200 {object} models.Requirement
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id}/requirements [get]
func (h *Handler) LatestRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	rec, err := h.service.LatestRequirement(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeRequirementNotFound, "No requirement saved for this floor plan")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GenerateSolutionRequest optionally pins generation to an older
// requirement snapshot instead of the plan's current one.
type GenerateSolutionRequest struct {
	RequirementID *uuid.UUID `json:"requirement_id"`
}

// GenerateSolution godoc
// @Summary Generate layout solution
// @Description Run the allocation estimator against the plan's area and append the solution to its history
// @Tags solutions
// @Accept json
// @Produce json
// @Param id path string true "Floor plan ID"
// @Param request body GenerateSolutionRequest false "Generation options"
// @Success 201 {object} models.Solution
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id}/solutions [post]
func (h *Handler) GenerateSolution(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	// The body is optional; an empty one means "use the current program".
	var req GenerateSolutionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request")
			return
		}
	}

	sol, err := h.service.GenerateSolution(c.Request.Context(), id, req.RequirementID)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeRequirementNotFound, "Floor plan or requirement not found")
		return
	}

	c.JSON(http.StatusCreated, sol)
}

// SolutionsForFloorPlan godoc
// @Summary List floor plan solutions
// @Description Fetch a floor plan's solution history, newest first
// @Tags solutions
// @Produce json
// @Param id path string true "Floor plan ID"
// @Success 200 {array} models.Solution
// @Failure 404 {object} models.ErrorResponse
// @Router /floor-plans/{id}/solutions [get]
func (h *Handler) SolutionsForFloorPlan(c *gin.Context) {
	id, ok := parseIDParam(c, "floor plan")
	if !ok {
		return
	}

	solutions, err := h.service.SolutionsForFloorPlan(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
		return
	}
	if solutions == nil {
		solutions = []*models.Solution{}
	}

	c.JSON(http.StatusOK, solutions)
}

// SolutionsForRequirement godoc
// @Summary List requirement solutions
// @Description Fetch the solutions generated from one requirement snapshot, newest first
// @Tags solutions
// @Produce json
// @Param id path string true "Requirement ID"
// @Success 200 {array} models.Solution
// @Failure 404 {object} models.ErrorResponse
// @Router /requirements/{id}/solutions [get]
func (h *Handler) SolutionsForRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "requirement")
	if !ok {
		return
	}

	solutions, err := h.service.SolutionsForRequirement(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeRequirementNotFound, "Requirement not found")
		return
	}
	if solutions == nil {
		solutions = []*models.Solution{}
	}

	c.JSON(http.StatusOK, solutions)
}

// EstimateRequest represents a stateless estimate preview request. The
// available area is the explicit value when given, otherwise the stored
// area of floor_plan_id, otherwise unknown.
type EstimateRequest struct {
	FloorPlanID   *uuid.UUID                  `json:"floor_plan_id"`
	AvailableArea *float64                    `json:"available_area"`
	Requirement   allocation.SpaceRequirement `json:"requirement"`
}

// PreviewEstimate godoc
// @Summary Preview area estimate
// @Description Run the allocation estimator without persisting anything
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Requirement and optional area"
// @Success 200 {object} planning.EstimatePreview
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /estimate [post]
func (h *Handler) PreviewEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request")
		return
	}

	preview, err := h.service.PreviewEstimate(c.Request.Context(), req.FloorPlanID, req.Requirement, req.AvailableArea)
	if err != nil {
		h.respondServiceError(c, err, models.ErrCodeFloorPlanNotFound, "Floor plan not found")
		return
	}

	c.JSON(http.StatusOK, preview)
}
