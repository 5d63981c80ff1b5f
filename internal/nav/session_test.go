package nav

import (
	"errors"
	"strings"
	"testing"

	"github.com/cardinalnav/campus-backend-go/internal/campus"
	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/spatial"
)

var boswellMain = []models.Room{
	{ID: "121", Name: "Schuler Performing Arts Center", X: 250, Y: 350, Type: models.RoomTheater},
	{ID: "144", Name: "Boswell Main Office", X: 450, Y: 300, Type: models.RoomOffice},
	{ID: "TOILET-M", Name: "Men's Restroom", X: 180, Y: 320, Type: models.RoomToilet},
}

var entrance = spatial.PlanPoint{X: 50, Y: 300}

func TestStartToMainOffice(t *testing.T) {
	s := &Session{}
	if err := s.Start("144", boswellMain, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.Active() {
		t.Fatalf("session not navigating after start")
	}

	steps := s.Instructions()
	if len(steps) != 6 {
		t.Fatalf("instructions=%d steps, want 6", len(steps))
	}
	if !strings.Contains(steps[4], "Boswell Main Office") {
		t.Fatalf("step 5 %q does not name the destination", steps[4])
	}
	// (50,300) -> (450,300) is 400 plan units: 40 meters, 8 minutes, to the right.
	if steps[1] != "Walk 40 meters towards your destination" {
		t.Fatalf("step 2 = %q", steps[1])
	}
	if steps[2] != "Turn right at the junction" {
		t.Fatalf("step 3 = %q", steps[2])
	}
	if steps[5] != "Estimated walking time: 8 minutes" {
		t.Fatalf("step 6 = %q", steps[5])
	}
}

func TestTurnLeftWhenDestinationIsWest(t *testing.T) {
	s := &Session{}
	pos := spatial.PlanPoint{X: 500, Y: 300}
	if err := s.Start("TOILET-M", boswellMain, pos); err != nil {
		t.Fatalf("start: %v", err)
	}
	steps := s.Instructions()
	if steps[2] != "Turn left at the junction" {
		t.Fatalf("step 3 = %q, want left turn", steps[2])
	}
}

func TestStartUnknownRoom(t *testing.T) {
	s := &Session{}
	err := s.Start("999", boswellMain, entrance)
	if !errors.Is(err, campus.ErrRoomNotFound) {
		t.Fatalf("err=%v, want ErrRoomNotFound", err)
	}
	if s.Active() {
		t.Fatalf("failed start left session navigating")
	}
}

func TestStartReplacesDestination(t *testing.T) {
	s := &Session{}
	if err := s.Start("144", boswellMain, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start("121", boswellMain, entrance); err != nil {
		t.Fatalf("restart: %v", err)
	}
	dest, _ := s.Destination()
	if dest.ID != "121" {
		t.Fatalf("destination=%s, want 121", dest.ID)
	}
}

func TestStopClearsEverything(t *testing.T) {
	s := &Session{}
	if err := s.Start("144", boswellMain, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Stop()
	if s.Active() {
		t.Fatalf("still navigating after stop")
	}
	if got := s.Instructions(); got != nil {
		t.Fatalf("instructions=%v after stop, want nil", got)
	}
	if _, ok := s.Route(); ok {
		t.Fatalf("route survived stop")
	}
	s.Stop() // no-op when idle
}

func TestRefreshRecomputesRoute(t *testing.T) {
	s := &Session{}
	if err := s.Start("144", boswellMain, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Refresh(boswellMain, spatial.PlanPoint{X: 250, Y: 300})
	route, ok := s.Route()
	if !ok {
		t.Fatalf("route missing after refresh")
	}
	if route.Distance != 200 {
		t.Fatalf("distance=%f, want 200", route.Distance)
	}
}

func TestRefreshEndsSessionWhenDestinationGone(t *testing.T) {
	s := &Session{}
	if err := s.Start("144", boswellMain, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Floor switch: different room list without "144".
	other := []models.Room{{ID: "208", Name: "Room 208", X: 300, Y: 150, Type: models.RoomClassroom}}
	s.Refresh(other, entrance)
	if s.Active() {
		t.Fatalf("session still navigating after destination vanished")
	}
}

func TestInstructionsRoundUp(t *testing.T) {
	s := &Session{}
	rooms := []models.Room{{ID: "X", Name: "X", X: 55, Y: 300}}
	if err := s.Start("X", rooms, entrance); err != nil {
		t.Fatalf("start: %v", err)
	}
	steps := s.Instructions()
	// 5 plan units: 0.5 meters rounds up to 1, 0.1 minutes rounds up to 1.
	if steps[1] != "Walk 1 meters towards your destination" {
		t.Fatalf("step 2 = %q", steps[1])
	}
	if steps[5] != "Estimated walking time: 1 minutes" {
		t.Fatalf("step 6 = %q", steps[5])
	}
}
