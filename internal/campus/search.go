package campus

import (
	"strings"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

// SearchRooms filters the current floor's rooms to those whose id, name, or
// category contains query as a case-insensitive substring. An empty query
// returns all rooms. Insertion order is preserved; no side effects.
func (s *Store) SearchRooms(query string) []models.Room {
	rooms := s.RoomsOnCurrentFloor()
	if query == "" {
		return rooms
	}
	q := strings.ToLower(query)
	matched := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.ID), q) ||
			strings.Contains(strings.ToLower(string(r.Type)), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
