package campus

import (
	"fmt"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

// Store owns the spatial data model: the building list, the per-building
// per-floor room lists, and the currently selected building and floor. It is
// a plain mutable object with no locking of its own; the service layer
// serializes all access to it.
type Store struct {
	buildings []models.Building
	rooms     map[string]map[string][]models.Room
	building  string // current building id
	floor     string // current floor id
}

// NewStore builds a store from a campus document, validating the model
// invariants: at least one building, every building with at least one floor,
// unique building ids, and every room-list key referencing a real
// building+floor pair. Selection state is normalized: an unknown or absent
// current building falls back to the first building, an unknown floor to the
// building's first listed floor.
func NewStore(doc models.CampusDocument) (*Store, error) {
	if len(doc.Buildings) == 0 {
		return nil, fmt.Errorf("%w: no buildings", ErrInvalidDocument)
	}

	byID := make(map[string]models.Building, len(doc.Buildings))
	for _, b := range doc.Buildings {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: building without id", ErrInvalidDocument)
		}
		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate building id %q", ErrInvalidDocument, b.ID)
		}
		if len(b.Floors) == 0 {
			return nil, fmt.Errorf("%w: building %q has no floors", ErrInvalidDocument, b.ID)
		}
		byID[b.ID] = b
	}

	rooms := make(map[string]map[string][]models.Room, len(doc.Rooms))
	for bid, floors := range doc.Rooms {
		b, ok := byID[bid]
		if !ok {
			return nil, fmt.Errorf("%w: rooms reference unknown building %q", ErrInvalidDocument, bid)
		}
		byFloor := make(map[string][]models.Room, len(floors))
		for fid, list := range floors {
			if !b.HasFloor(fid) {
				return nil, fmt.Errorf("%w: rooms reference unknown floor %q in building %q", ErrInvalidDocument, fid, bid)
			}
			seen := make(map[string]bool, len(list))
			copied := make([]models.Room, 0, len(list))
			for _, r := range list {
				if seen[r.ID] {
					return nil, fmt.Errorf("%w: duplicate room id %q on %s/%s", ErrInvalidDocument, r.ID, bid, fid)
				}
				seen[r.ID] = true
				r.Type = models.ParseRoomType(string(r.Type))
				copied = append(copied, r)
			}
			byFloor[fid] = copied
		}
		rooms[bid] = byFloor
	}

	s := &Store{
		buildings: append([]models.Building(nil), doc.Buildings...),
		rooms:     rooms,
	}

	s.building = doc.CurrentBuilding
	if _, ok := byID[s.building]; !ok {
		s.building = doc.Buildings[0].ID
	}
	current := byID[s.building]
	s.floor = doc.CurrentFloor
	if !current.HasFloor(s.floor) {
		s.floor = current.Floors[0]
	}
	return s, nil
}

// ListBuildings returns the buildings in display order.
func (s *Store) ListBuildings() []models.Building {
	return append([]models.Building(nil), s.buildings...)
}

// CurrentBuilding returns the currently selected building.
func (s *Store) CurrentBuilding() models.Building {
	b, _ := s.findBuilding(s.building)
	return b
}

// CurrentFloor returns the currently selected floor id.
func (s *Store) CurrentFloor() string {
	return s.floor
}

func (s *Store) findBuilding(id string) (models.Building, bool) {
	for _, b := range s.buildings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Building{}, false
}

// SelectBuilding switches the current building and resets the current floor
// to that building's first listed floor.
func (s *Store) SelectBuilding(id string) error {
	b, ok := s.findBuilding(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBuildingNotFound, id)
	}
	s.building = b.ID
	s.floor = b.Floors[0]
	return nil
}

// SelectFloor switches the current floor within the current building.
func (s *Store) SelectFloor(id string) error {
	b, _ := s.findBuilding(s.building)
	if !b.HasFloor(id) {
		return fmt.Errorf("%w: %s in building %s", ErrFloorNotFound, id, s.building)
	}
	s.floor = id
	return nil
}

// RoomsOnCurrentFloor returns the room list for the current building+floor in
// insertion order. A floor with no recorded rooms yields an empty list, not
// an error.
func (s *Store) RoomsOnCurrentFloor() []models.Room {
	return append([]models.Room(nil), s.rooms[s.building][s.floor]...)
}

// FindRoom looks up a room by id on the current floor.
func (s *Store) FindRoom(id string) (models.Room, bool) {
	for _, r := range s.rooms[s.building][s.floor] {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// AddRoom appends a room to the given building+floor pair. Empty buildingID
// or floorID default to the current selection. Fails if the pair is unknown
// or the room id already exists there; the model is unchanged on failure.
func (s *Store) AddRoom(buildingID, floorID string, room models.Room) error {
	if buildingID == "" {
		buildingID = s.building
	}
	if floorID == "" {
		floorID = s.floor
	}
	b, ok := s.findBuilding(buildingID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBuildingNotFound, buildingID)
	}
	if !b.HasFloor(floorID) {
		return fmt.Errorf("%w: %s in building %s", ErrFloorNotFound, floorID, buildingID)
	}
	for _, r := range s.rooms[buildingID][floorID] {
		if r.ID == room.ID {
			return fmt.Errorf("%w: %s on %s/%s", ErrDuplicateRoom, room.ID, buildingID, floorID)
		}
	}
	room.Type = models.ParseRoomType(string(room.Type))
	if s.rooms[buildingID] == nil {
		s.rooms[buildingID] = make(map[string][]models.Room)
	}
	s.rooms[buildingID][floorID] = append(s.rooms[buildingID][floorID], room)
	return nil
}

// RemoveRoom deletes the room with the given id from the building+floor pair
// (current selection when empty). Removing an absent room is a no-op.
func (s *Store) RemoveRoom(buildingID, floorID, id string) {
	if buildingID == "" {
		buildingID = s.building
	}
	if floorID == "" {
		floorID = s.floor
	}
	list := s.rooms[buildingID][floorID]
	for i, r := range list {
		if r.ID == id {
			s.rooms[buildingID][floorID] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Document snapshots the full model, selection state included, for export.
func (s *Store) Document() models.CampusDocument {
	rooms := make(map[string]map[string][]models.Room, len(s.rooms))
	for bid, floors := range s.rooms {
		byFloor := make(map[string][]models.Room, len(floors))
		for fid, list := range floors {
			byFloor[fid] = append([]models.Room(nil), list...)
		}
		rooms[bid] = byFloor
	}
	return models.CampusDocument{
		Buildings:       append([]models.Building(nil), s.buildings...),
		Rooms:           rooms,
		CurrentBuilding: s.building,
		CurrentFloor:    s.floor,
	}
}
