package directions

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wayfinder/config"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *client {
	t.Helper()

	cfg := &config.Config{
		Directions: &config.DirectionsConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	}

	svc, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*client)
}

func TestNewClient_MissingBaseURL(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, domainerrors.ErrConfigurationMissing)
}

func TestGetIndoorDirections_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directions/indoor", r.URL.Path)
		assert.Equal(t, "Hall-8", r.URL.Query().Get("buildingId"))
		assert.Equal(t, "H-801", r.URL.Query().Get("origin"))
		assert.Equal(t, "H-820", r.URL.Query().Get("destination"))
		assert.Equal(t, "8", r.URL.Query().Get("originFloor"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"distance": 42.5,
			"duration": 60,
			"buildingName": "Hall Building",
			"buildingId": "Hall-8",
			"startFloor": "8",
			"endFloor": "8",
			"steps": [{"instruction": "Head north", "distanceMeters": 42.5}],
			"routePoints": [{"x": 10, "y": 20}, {"x": 30, "y": 40}]
		}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	route, err := c.GetIndoorDirections(context.Background(), "Hall-8", "H-801", "H-820", "8", "8")
	require.NoError(t, err)
	assert.Equal(t, 42.5, route.Distance)
	assert.Equal(t, "Hall Building", route.BuildingName)
	assert.Len(t, route.RoutePoints, 2)
	assert.Equal(t, 10.0, route.RoutePoints[0].X)
}

func TestGetIndoorDirections_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no route between rooms", http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.GetIndoorDirections(context.Background(), "Hall-8", "H-801", "H-999", "8", "8")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_FAILURE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "status 404")
	assert.Contains(t, appErr.Details(), "no route between rooms")
}

func TestGetIndoorDirections_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := newTestClient(t, server.URL)

	_, err := c.GetIndoorDirections(context.Background(), "Hall-8", "H-801", "H-820", "8", "8")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_UNREACHABLE", appErr.ErrorCode())
}

func TestGetAvailableRooms_SortedAscending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directions/indoor/rooms", r.URL.Path)
		io.WriteString(w, `["H-867", "H-801", "H-820"]`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	rooms := c.GetAvailableRooms(context.Background(), "Hall-8", "8")
	assert.Equal(t, []string{"H-801", "H-820", "H-867"}, rooms)
}

func TestGetAvailableRooms_FailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	rooms := c.GetAvailableRooms(context.Background(), "Hall-8", "8")
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestGetAvailableRooms_NullPayloadDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	rooms := c.GetAvailableRooms(context.Background(), "Hall-8", "8")
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	points := c.GetRoomPoints(context.Background(), "Hall-8", "8")
	assert.NotNil(t, points)
	assert.Empty(t, points)

	pois := c.GetPointsOfInterest(context.Background(), "Hall-8", "8")
	assert.NotNil(t, pois)
	assert.Empty(t, pois)

	waypoints := c.GetWaypoints(context.Background(), "Hall-8", "8")
	assert.NotNil(t, waypoints)
	assert.Empty(t, waypoints)
}

func TestGetRoomPoints_NonArrayPayloadDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"unexpected": "object"}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	points := c.GetRoomPoints(context.Background(), "Hall-8", "8")
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestGetPointsOfInterest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directions/indoor/pois", r.URL.Path)
		io.WriteString(w, `[{"id": "elev-1", "x": 5, "y": 6, "displayName": "Elevator", "type": "elevator"}]`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	pois := c.GetPointsOfInterest(context.Background(), "Hall-8", "8")
	require.Len(t, pois, 1)
	assert.Equal(t, "elev-1", pois[0].ID)
	assert.Equal(t, "elevator", pois[0].Type)
}

func TestGetWaypoints_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(t, server.URL)

	points := c.GetWaypoints(context.Background(), "Hall-8", "8")
	assert.NotNil(t, points)
	assert.Empty(t, points)
}
