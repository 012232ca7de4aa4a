package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/metrics"
	"github.com/officeflow/space-planner/planning-api/internal/models"
)

// subscriberBuffer is the per-subscriber event backlog. A subscriber that
// falls this far behind is evicted instead of blocking generation.
const subscriberBuffer = 16

// SolutionFeed pushes newly generated solutions to WebSocket subscribers,
// one subscriber group per floor plan. It implements the service layer's
// SolutionBroadcaster.
type SolutionFeed struct {
	logger   *zap.Logger
	metrics  *metrics.PlanningMetrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[uuid.UUID]map[*feedSubscriber]struct{}
}

type feedSubscriber struct {
	events chan models.FeedEvent
}

// NewSolutionFeed creates a solution feed hub
func NewSolutionFeed(logger *zap.Logger, pm *metrics.PlanningMetrics) *SolutionFeed {
	return &SolutionFeed{
		logger:  logger,
		metrics: pm,
		tracer:  otel.Tracer("solution-feed"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: Implement proper origin checking for production
				return true
			},
			HandshakeTimeout: 10 * time.Second,
		},
		subscribers: make(map[uuid.UUID]map[*feedSubscriber]struct{}),
	}
}

// Stream handles WebSocket /api/ws/floor-plans/:id/solutions
// @Summary Stream generated solutions
// @Description WebSocket endpoint pushing each newly generated layout solution for a floor plan
// @Tags solutions
// @Param id path string true "Floor plan ID"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} models.ErrorResponse
// @Router /ws/floor-plans/{id}/solutions [get]
func (f *SolutionFeed) Stream(c *gin.Context) {
	_, span := f.tracer.Start(c.Request.Context(), "solution_feed.stream")
	defer span.End()

	floorPlanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid floor plan ID",
			Code:  models.ErrCodeInvalidRequest,
		})
		return
	}
	span.SetAttributes(attribute.String("floor_plan.id", floorPlanID.String()))

	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		span.RecordError(err)
		f.logger.Warn("websocket upgrade failed",
			zap.String("floor_plan_id", floorPlanID.String()),
			zap.Error(err),
		)
		return
	}
	defer conn.Close()

	sub := &feedSubscriber{events: make(chan models.FeedEvent, subscriberBuffer)}
	f.subscribe(floorPlanID, sub)
	defer f.unsubscribe(floorPlanID, sub)

	if f.metrics != nil {
		f.metrics.FeedSubscriberConnected(c.Request.Context())
		defer f.metrics.FeedSubscriberDisconnected(c.Request.Context())
	}
	f.logger.Info("feed subscriber connected",
		zap.String("floor_plan_id", floorPlanID.String()),
	)

	// Write pump: drains the subscriber channel until it is closed by
	// unsubscribe or eviction.
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for event := range sub.events {
			if err := conn.WriteJSON(event); err != nil {
				f.logger.Warn("feed write failed",
					zap.String("floor_plan_id", floorPlanID.String()),
					zap.Error(err),
				)
				return
			}
		}
		// Channel closed: tell the client before dropping the connection.
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
	}()

	// The feed is push-only; the read loop exists to observe the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	f.unsubscribe(floorPlanID, sub)
	<-writeDone
	f.logger.Info("feed subscriber disconnected",
		zap.String("floor_plan_id", floorPlanID.String()),
	)
}

// BroadcastSolution delivers a stored solution to every subscriber of its
// floor plan. Subscribers with a full backlog are evicted so a slow viewer
// can never block solution generation.
func (f *SolutionFeed) BroadcastSolution(sol *models.Solution) {
	event := models.FeedEvent{
		Type:        models.EventTypeSolutionGenerated,
		FloorPlanID: sol.FloorPlanID,
		Solution:    sol,
		Timestamp:   time.Now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subscribers[sol.FloorPlanID]
	for sub := range subs {
		select {
		case sub.events <- event:
		default:
			delete(subs, sub)
			close(sub.events)
			f.logger.Warn("evicted slow feed subscriber",
				zap.String("floor_plan_id", sol.FloorPlanID.String()),
			)
		}
	}
	if len(subs) == 0 {
		delete(f.subscribers, sol.FloorPlanID)
	}
}

// SubscriberCount returns the number of live subscribers for a floor plan.
func (f *SolutionFeed) SubscriberCount(floorPlanID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers[floorPlanID])
}

func (f *SolutionFeed) subscribe(floorPlanID uuid.UUID, sub *feedSubscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribers[floorPlanID] == nil {
		f.subscribers[floorPlanID] = make(map[*feedSubscriber]struct{})
	}
	f.subscribers[floorPlanID][sub] = struct{}{}
}

func (f *SolutionFeed) unsubscribe(floorPlanID uuid.UUID, sub *feedSubscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subscribers[floorPlanID]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.events)
	if len(subs) == 0 {
		delete(f.subscribers, floorPlanID)
	}
}
