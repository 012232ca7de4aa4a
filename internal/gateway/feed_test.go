package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/officeflow/space-planner/planning-api/internal/models"
)

func dialFeed(t *testing.T, server *httptest.Server, floorPlanID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws/floor-plans/" + floorPlanID.String() + "/solutions"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func feedServer(t *testing.T) (*httptest.Server, *SolutionFeed) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feed := NewSolutionFeed(zap.NewNop(), nil)
	router := gin.New()
	router.GET("/api/ws/floor-plans/:id/solutions", feed.Stream)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, feed
}

func waitForSubscribers(t *testing.T, feed *SolutionFeed, floorPlanID uuid.UUID, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if feed.SubscriberCount(floorPlanID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d subscribers for %s, have %d", want, floorPlanID, feed.SubscriberCount(floorPlanID))
}

func TestSolutionFeed_BroadcastReachesSubscriber(t *testing.T) {
	server, feed := feedServer(t)
	floorPlanID := uuid.New()

	conn := dialFeed(t, server, floorPlanID)
	defer conn.Close()
	waitForSubscribers(t, feed, floorPlanID, 1)

	sol := &models.Solution{
		ID:               uuid.New(),
		FloorPlanID:      floorPlanID,
		RequirementID:    uuid.New(),
		FeasibilityScore: 95,
		IsFeasible:       true,
	}
	feed.BroadcastSolution(sol)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event models.FeedEvent
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, models.EventTypeSolutionGenerated, event.Type)
	assert.Equal(t, floorPlanID, event.FloorPlanID)
	require.NotNil(t, event.Solution)
	assert.Equal(t, sol.ID, event.Solution.ID)
	assert.Equal(t, 95.0, event.Solution.FeasibilityScore)
}

func TestSolutionFeed_ScopedToFloorPlan(t *testing.T) {
	server, feed := feedServer(t)
	planA := uuid.New()
	planB := uuid.New()

	connA := dialFeed(t, server, planA)
	defer connA.Close()
	connB := dialFeed(t, server, planB)
	defer connB.Close()
	waitForSubscribers(t, feed, planA, 1)
	waitForSubscribers(t, feed, planB, 1)

	feed.BroadcastSolution(&models.Solution{ID: uuid.New(), FloorPlanID: planA})

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event models.FeedEvent
	require.NoError(t, connA.ReadJSON(&event))
	assert.Equal(t, planA, event.FloorPlanID)

	// The other plan's subscriber must not receive anything.
	require.NoError(t, connB.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	require.Error(t, connB.ReadJSON(&event))
}

func TestSolutionFeed_UnsubscribeOnDisconnect(t *testing.T) {
	server, feed := feedServer(t)
	floorPlanID := uuid.New()

	conn := dialFeed(t, server, floorPlanID)
	waitForSubscribers(t, feed, floorPlanID, 1)

	require.NoError(t, conn.Close())
	waitForSubscribers(t, feed, floorPlanID, 0)
}

func TestSolutionFeed_EvictsSlowSubscriber(t *testing.T) {
	feed := NewSolutionFeed(zap.NewNop(), nil)
	floorPlanID := uuid.New()

	// Register a subscriber nobody drains.
	sub := &feedSubscriber{events: make(chan models.FeedEvent, subscriberBuffer)}
	feed.subscribe(floorPlanID, sub)

	for i := 0; i < subscriberBuffer+1; i++ {
		feed.BroadcastSolution(&models.Solution{ID: uuid.New(), FloorPlanID: floorPlanID})
	}

	assert.Equal(t, 0, feed.SubscriberCount(floorPlanID))

	// The channel was closed on eviction; the backlog is still readable.
	received := 0
	for range sub.events {
		received++
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestSolutionFeed_RejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	feed := NewSolutionFeed(zap.NewNop(), nil)
	router := gin.New()
	router.GET("/api/ws/floor-plans/:id/solutions", feed.Stream)

	req := httptest.NewRequest(http.MethodGet, "/api/ws/floor-plans/not-a-uuid/solutions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
