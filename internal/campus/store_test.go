package campus

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

func TestSelectBuildingResetsFloor(t *testing.T) {
	s := Default()

	if err := s.SelectBuilding("edminster"); err != nil {
		t.Fatalf("select edminster: %v", err)
	}
	if err := s.SelectFloor("2nd"); err != nil {
		t.Fatalf("select 2nd: %v", err)
	}
	if got := s.CurrentFloor(); got != "2nd" {
		t.Fatalf("floor=%q, want 2nd", got)
	}

	if err := s.SelectBuilding("boswell"); err != nil {
		t.Fatalf("select boswell: %v", err)
	}
	if err := s.SelectBuilding("edminster"); err != nil {
		t.Fatalf("reselect edminster: %v", err)
	}
	if got := s.CurrentFloor(); got != "main" {
		t.Fatalf("floor=%q after building switch, want main (first listed)", got)
	}
}

func TestSelectBuildingUnknown(t *testing.T) {
	s := Default()
	err := s.SelectBuilding("library")
	if !errors.Is(err, ErrBuildingNotFound) {
		t.Fatalf("err=%v, want ErrBuildingNotFound", err)
	}
	if got := s.CurrentBuilding().ID; got != "boswell" {
		t.Fatalf("selection changed by failed select: %q", got)
	}
}

func TestSelectFloorOutsideBuilding(t *testing.T) {
	s := Default()
	// boswell has only "main".
	if err := s.SelectFloor("2nd"); !errors.Is(err, ErrFloorNotFound) {
		t.Fatalf("err=%v, want ErrFloorNotFound", err)
	}
	if got := s.CurrentFloor(); got != "main" {
		t.Fatalf("floor=%q after failed select, want main", got)
	}

	for _, b := range s.ListBuildings() {
		if err := s.SelectBuilding(b.ID); err != nil {
			t.Fatalf("select %s: %v", b.ID, err)
		}
		for _, f := range b.Floors {
			if err := s.SelectFloor(f); err != nil {
				t.Fatalf("select %s/%s: %v", b.ID, f, err)
			}
			if !b.HasFloor(s.CurrentFloor()) {
				t.Fatalf("current floor %q outside %s's floor list", s.CurrentFloor(), b.ID)
			}
		}
	}
}

func TestAddRemoveRoomRoundTrip(t *testing.T) {
	s := Default()
	before := s.RoomsOnCurrentFloor()

	room := models.Room{ID: "199", Name: "Practice Annex", X: 120, Y: 140, Type: models.RoomClassroom}
	if err := s.AddRoom("", "", room); err != nil {
		t.Fatalf("add room: %v", err)
	}
	after := s.RoomsOnCurrentFloor()
	if len(after) != len(before)+1 {
		t.Fatalf("room count=%d, want %d", len(after), len(before)+1)
	}
	if after[len(after)-1].ID != "199" {
		t.Fatalf("new room not appended last: %+v", after[len(after)-1])
	}

	s.RemoveRoom("", "", "199")
	if got := s.RoomsOnCurrentFloor(); !reflect.DeepEqual(got, before) {
		t.Fatalf("room sequence not restored:\n got %+v\nwant %+v", got, before)
	}
}

func TestAddRoomDuplicate(t *testing.T) {
	s := Default()
	before := s.RoomsOnCurrentFloor()

	err := s.AddRoom("", "", models.Room{ID: "144", Name: "Imposter Office", X: 10, Y: 10})
	if !errors.Is(err, ErrDuplicateRoom) {
		t.Fatalf("err=%v, want ErrDuplicateRoom", err)
	}
	if got := s.RoomsOnCurrentFloor(); !reflect.DeepEqual(got, before) {
		t.Fatalf("model changed by failed add")
	}
}

func TestAddRoomSameIDOnOtherFloor(t *testing.T) {
	// "112" exists on emergency/main and edminster/main as distinct rooms.
	s := Default()
	if err := s.AddRoom("emergency", "2nd", models.Room{ID: "112", Name: "Room 112 Annex", X: 50, Y: 50}); err != nil {
		t.Fatalf("same id on another floor should be allowed: %v", err)
	}
}

func TestRemoveRoomAbsentIsNoop(t *testing.T) {
	s := Default()
	before := s.RoomsOnCurrentFloor()
	s.RemoveRoom("", "", "no-such-room")
	if got := s.RoomsOnCurrentFloor(); !reflect.DeepEqual(got, before) {
		t.Fatalf("no-op remove changed the model")
	}
}

func TestRoomsOnFloorWithoutRecords(t *testing.T) {
	doc := defaultDocument()
	doc.Buildings = append(doc.Buildings, models.Building{
		ID:     "annex",
		Name:   "Annex",
		Floors: []string{"main"},
	})
	s, err := NewStore(doc)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := s.SelectBuilding("annex"); err != nil {
		t.Fatalf("select annex: %v", err)
	}
	if got := s.RoomsOnCurrentFloor(); len(got) != 0 {
		t.Fatalf("expected empty room list, got %d", len(got))
	}
}

func TestNewStoreValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CampusDocument)
	}{
		{"no buildings", func(d *models.CampusDocument) { d.Buildings = nil }},
		{"building without floors", func(d *models.CampusDocument) { d.Buildings[0].Floors = nil }},
		{"rooms under unknown building", func(d *models.CampusDocument) {
			d.Rooms["library"] = map[string][]models.Room{"main": nil}
		}},
		{"rooms under unknown floor", func(d *models.CampusDocument) {
			d.Rooms["boswell"]["basement"] = []models.Room{{ID: "B1", Name: "Boiler"}}
		}},
		{"duplicate room id on one floor", func(d *models.CampusDocument) {
			d.Rooms["boswell"]["main"] = append(d.Rooms["boswell"]["main"], models.Room{ID: "144", Name: "Copy"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := defaultDocument()
			tc.mutate(&doc)
			if _, err := NewStore(doc); !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("err=%v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestNewStoreNormalizesSelection(t *testing.T) {
	doc := defaultDocument()
	doc.CurrentBuilding = "library"
	doc.CurrentFloor = "penthouse"
	s, err := NewStore(doc)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if got := s.CurrentBuilding().ID; got != "boswell" {
		t.Fatalf("building=%q, want first building boswell", got)
	}
	if got := s.CurrentFloor(); got != "main" {
		t.Fatalf("floor=%q, want main", got)
	}
}
