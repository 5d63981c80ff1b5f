package service

import (
	"fmt"
	"sync"

	"github.com/cardinalnav/campus-backend-go/internal/campus"
	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/nav"
	"github.com/cardinalnav/campus-backend-go/internal/spatial"
	"github.com/cardinalnav/campus-backend-go/internal/tracking"
)

// Navigator is the single owner of the campus model, the location tracker,
// and the navigation session. Every command and every position update is
// serialized through its mutex, so no two mutations of the shared state ever
// run concurrently, regardless of how many HTTP handlers or supplier
// goroutines are in flight.
type Navigator struct {
	mu      sync.Mutex
	store   *campus.Store
	tracker *tracking.Tracker
	session *nav.Session
}

// New wires the navigator and registers it as the tracker's position sink.
func New(store *campus.Store, tracker *tracking.Tracker) *Navigator {
	n := &Navigator{
		store:   store,
		tracker: tracker,
		session: &nav.Session{},
	}
	tracker.SetReference(store.CurrentBuilding().Coordinates)
	tracker.SetSink(n.onPosition)
	return n
}

// onPosition is called by the tracker after every position change.
func (n *Navigator) onPosition(pos models.UserPosition) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session.Refresh(n.store.RoomsOnCurrentFloor(), spatial.PlanPoint{X: pos.X, Y: pos.Y})
}

func (n *Navigator) position() spatial.PlanPoint {
	pos := n.tracker.Position()
	return spatial.PlanPoint{X: pos.X, Y: pos.Y}
}

// ListBuildings returns the buildings in display order.
func (n *Navigator) ListBuildings() []models.Building {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.store.ListBuildings()
}

// SelectBuilding switches the current building (resetting the floor to its
// first), re-targets the tracker's campus reference, and refreshes the
// navigation session against the new floor.
func (n *Navigator) SelectBuilding(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.store.SelectBuilding(id); err != nil {
		return err
	}
	n.tracker.SetReference(n.store.CurrentBuilding().Coordinates)
	n.session.Refresh(n.store.RoomsOnCurrentFloor(), n.position())
	return nil
}

// SelectFloor switches the current floor and refreshes the session.
func (n *Navigator) SelectFloor(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.store.SelectFloor(id); err != nil {
		return err
	}
	n.session.Refresh(n.store.RoomsOnCurrentFloor(), n.position())
	return nil
}

// Rooms returns the current floor's rooms filtered by query (empty = all).
func (n *Navigator) Rooms(query string) []models.Room {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.store.SearchRooms(query)
}

// AddRoom places a room at an indoor coordinate on the given building+floor
// (current selection when empty).
func (n *Navigator) AddRoom(buildingID, floorID string, room models.Room) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.store.AddRoom(buildingID, floorID, room)
}

// RemoveRoom deletes a room by id; absent rooms are a no-op. A deleted
// destination ends the navigation session.
func (n *Navigator) RemoveRoom(buildingID, floorID, id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.store.RemoveRoom(buildingID, floorID, id)
	n.session.Refresh(n.store.RoomsOnCurrentFloor(), n.position())
}

// StartNavigation begins navigating to a room on the current floor.
func (n *Navigator) StartNavigation(roomID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session.Start(roomID, n.store.RoomsOnCurrentFloor(), n.position())
}

// StopNavigation ends the session; no-op when idle.
func (n *Navigator) StopNavigation() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session.Stop()
}

// CheckIn sets the user position to a room's coordinate, bypassing GPS.
func (n *Navigator) CheckIn(roomID string) error {
	n.mu.Lock()
	room, ok := n.store.FindRoom(roomID)
	n.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", campus.ErrRoomNotFound, roomID)
	}
	// The tracker pushes the new position back through onPosition, which
	// refreshes the session under the lock.
	n.tracker.CheckIn(room)
	return nil
}

// PushFix feeds an external raw fix into the tracker, exactly as a
// supplier-watch fix would arrive.
func (n *Navigator) PushFix(fix models.Fix) {
	n.tracker.ProcessFix(fix)
}

// StartTracking opens the tracker's supplier subscription.
func (n *Navigator) StartTracking() error {
	return n.tracker.Start()
}

// StopTracking cancels the supplier subscription. Idempotent.
func (n *Navigator) StopTracking() {
	n.tracker.Stop()
}

// Position returns the latest user position estimate.
func (n *Navigator) Position() models.UserPosition {
	return n.tracker.Position()
}

// TrackingErr returns the tracker's current error descriptor, or nil.
func (n *Navigator) TrackingErr() *models.TrackingError {
	return n.tracker.Err()
}

// Export serializes the full data model.
func (n *Navigator) Export() ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.store.Export()
}

// Import replaces the entire data model atomically. On failure the live model
// is untouched; on success the tracker reference and navigation session are
// refreshed against the new model.
func (n *Navigator) Import(data []byte) error {
	replacement, err := campus.Import(data)
	if err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.store = replacement
	n.tracker.SetReference(n.store.CurrentBuilding().Coordinates)
	n.session.Refresh(n.store.RoomsOnCurrentFloor(), n.position())
	return nil
}

// Snapshot is the read surface for the presentation layer.
type Snapshot struct {
	Building      models.Building       `json:"building"`
	Floor         string                `json:"floor"`
	Rooms         []models.Room         `json:"rooms"`
	Position      models.UserPosition   `json:"position"`
	TrackingError *models.TrackingError `json:"trackingError,omitempty"`
	Navigating    bool                  `json:"navigating"`
	Destination   *models.Room          `json:"destination,omitempty"`
	Route         *nav.Route            `json:"route,omitempty"`
	Instructions  []string              `json:"instructions,omitempty"`
}

// State captures the current building, floor, rooms, position, and
// navigation state in one consistent view.
func (n *Navigator) State() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	snap := Snapshot{
		Building:      n.store.CurrentBuilding(),
		Floor:         n.store.CurrentFloor(),
		Rooms:         n.store.RoomsOnCurrentFloor(),
		Position:      n.tracker.Position(),
		TrackingError: n.tracker.Err(),
		Navigating:    n.session.Active(),
	}
	if dest, ok := n.session.Destination(); ok {
		snap.Destination = &dest
	}
	if route, ok := n.session.Route(); ok {
		snap.Route = &route
	}
	snap.Instructions = n.session.Instructions()
	return snap
}
