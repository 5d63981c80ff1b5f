// Package nav implements the navigation session: a destination on the
// current floor, the straight-line route toward it, and the turn-by-turn
// instruction text derived from that line. There is no corridor graph; the
// route is the literal segment between two plan points.
package nav

import (
	"fmt"
	"math"

	"github.com/cardinalnav/campus-backend-go/internal/campus"
	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/spatial"
)

// Instruction geometry constants: plan units per walked meter and per minute
// of walking.
const (
	planUnitsPerMeter  = 10.0
	planUnitsPerMinute = 50.0
)

// State of a navigation session.
type State int

const (
	Idle State = iota
	Navigating
)

// Route is the straight line from the user position to the destination.
type Route struct {
	From     spatial.PlanPoint `json:"from"`
	To       spatial.PlanPoint `json:"to"`
	Distance float64           `json:"distance"` // plan units
}

// Session holds the selected destination and the derived route. It has no
// locking; the service layer serializes access.
type Session struct {
	state State
	dest  models.Room
	route Route
}

// Active reports whether a destination is set.
func (s *Session) Active() bool {
	return s.state == Navigating
}

// Destination returns the destination room while navigating.
func (s *Session) Destination() (models.Room, bool) {
	return s.dest, s.state == Navigating
}

// Route returns the current route while navigating.
func (s *Session) Route() (Route, bool) {
	return s.route, s.state == Navigating
}

// Start begins navigating to a room on the current floor, replacing any
// previous destination. rooms is the current floor's room list and pos the
// current user position.
func (s *Session) Start(roomID string, rooms []models.Room, pos spatial.PlanPoint) error {
	room, ok := findRoom(rooms, roomID)
	if !ok {
		return fmt.Errorf("%w: %s", campus.ErrRoomNotFound, roomID)
	}
	s.state = Navigating
	s.dest = room
	s.recompute(pos)
	return nil
}

// Stop ends the session unconditionally, clearing destination and route.
func (s *Session) Stop() {
	s.state = Idle
	s.dest = models.Room{}
	s.route = Route{}
}

// Refresh recomputes the route after a position, floor, or building change.
// If the destination no longer resolves on the current floor the session
// ends on its own.
func (s *Session) Refresh(rooms []models.Room, pos spatial.PlanPoint) {
	if s.state != Navigating {
		return
	}
	room, ok := findRoom(rooms, s.dest.ID)
	if !ok {
		s.Stop()
		return
	}
	s.dest = room
	s.recompute(pos)
}

func (s *Session) recompute(pos spatial.PlanPoint) {
	to := spatial.PlanPoint{X: s.dest.X, Y: s.dest.Y}
	s.route = Route{
		From:     pos,
		To:       to,
		Distance: spatial.PlanDistance(pos, to),
	}
}

// Instructions renders the fixed six-step walking directions for the current
// route. Nil while idle.
func (s *Session) Instructions() []string {
	if s.state != Navigating {
		return nil
	}

	meters := int(math.Ceil(s.route.Distance / planUnitsPerMeter))
	minutes := int(math.Ceil(s.route.Distance / planUnitsPerMinute))

	turn := "Turn left at the junction"
	if s.route.To.X > s.route.From.X {
		turn = "Turn right at the junction"
	}

	return []string{
		"Head towards the main corridor",
		fmt.Sprintf("Walk %d meters towards your destination", meters),
		turn,
		fmt.Sprintf("Continue straight - %s will be ahead", s.dest.Name),
		fmt.Sprintf("You have arrived at %s", s.dest.Name),
		fmt.Sprintf("Estimated walking time: %d minutes", minutes),
	}
}

func findRoom(rooms []models.Room, id string) (models.Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}
