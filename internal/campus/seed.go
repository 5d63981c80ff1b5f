package campus

import "github.com/cardinalnav/campus-backend-go/internal/models"

// Default returns the built-in North Idaho College dataset, so the server is
// usable before any document is imported.
func Default() *Store {
	s, err := NewStore(defaultDocument())
	if err != nil {
		// The seed document is static and validated by tests.
		panic(err)
	}
	return s
}

func defaultDocument() models.CampusDocument {
	return models.CampusDocument{
		Buildings: []models.Building{
			{
				ID:          "boswell",
				Name:        "Boswell Hall",
				Floors:      []string{"main"},
				Coordinates: models.GeoPoint{Latitude: 47.6868, Longitude: -116.7808},
				Bounds: &models.GeoBounds{
					Southwest: models.GeoPoint{Latitude: 47.6865, Longitude: -116.7812},
					Northeast: models.GeoPoint{Latitude: 47.6871, Longitude: -116.7804},
				},
			},
			{
				ID:          "emergency",
				Name:        "Emergency Building",
				Floors:      []string{"main", "2nd"},
				Coordinates: models.GeoPoint{Latitude: 47.6870, Longitude: -116.7810},
				Bounds: &models.GeoBounds{
					Southwest: models.GeoPoint{Latitude: 47.6867, Longitude: -116.7814},
					Northeast: models.GeoPoint{Latitude: 47.6873, Longitude: -116.7806},
				},
			},
			{
				ID:          "edminster",
				Name:        "Edminster Student Union",
				Floors:      []string{"main", "2nd"},
				Coordinates: models.GeoPoint{Latitude: 47.6866, Longitude: -116.7806},
				Bounds: &models.GeoBounds{
					Southwest: models.GeoPoint{Latitude: 47.6863, Longitude: -116.7810},
					Northeast: models.GeoPoint{Latitude: 47.6869, Longitude: -116.7802},
				},
			},
		},
		Rooms: map[string]map[string][]models.Room{
			"boswell": {
				"main": {
					{ID: "101", Name: "Percussion Practice Room", X: 550, Y: 200, Type: models.RoomClassroom},
					{ID: "102", Name: "Music Rehearsal Room", X: 520, Y: 150, Type: models.RoomClassroom},
					{ID: "103", Name: "Piano Practice Room", X: 490, Y: 200, Type: models.RoomClassroom},
					{ID: "105", Name: "Piano Practice Room", X: 460, Y: 200, Type: models.RoomClassroom},
					{ID: "121", Name: "Schuler Performing Arts Center", X: 250, Y: 350, Type: models.RoomTheater},
					{ID: "124", Name: "Piano Lab/Classroom", X: 200, Y: 150, Type: models.RoomLab},
					{ID: "144", Name: "Boswell Main Office", X: 450, Y: 300, Type: models.RoomOffice},
					{ID: "TOILET-M", Name: "Men's Restroom", X: 180, Y: 320, Type: models.RoomToilet},
					{ID: "TOILET-W", Name: "Women's Restroom", X: 220, Y: 320, Type: models.RoomToilet},
					{ID: "ELEVATOR", Name: "Elevator", X: 320, Y: 320, Type: models.RoomElevator},
					{ID: "STAIRS-1", Name: "Stairs", X: 100, Y: 250, Type: models.RoomStairs},
				},
			},
			"emergency": {
				"main": {
					{ID: "112", Name: "Room 112", X: 300, Y: 200, Type: models.RoomClassroom},
					{ID: "114", Name: "Room 114", X: 350, Y: 250, Type: models.RoomClassroom},
					{ID: "118", Name: "Room 118", X: 250, Y: 180, Type: models.RoomClassroom},
					{ID: "119", Name: "Room 119", X: 200, Y: 300, Type: models.RoomClassroom},
					{ID: "123", Name: "Room 123", X: 250, Y: 350, Type: models.RoomClassroom},
					{ID: "TOILET-M", Name: "Men's Restroom", X: 180, Y: 320, Type: models.RoomToilet},
					{ID: "TOILET-W", Name: "Women's Restroom", X: 220, Y: 320, Type: models.RoomToilet},
				},
				"2nd": {
					{ID: "208", Name: "Room 208", X: 300, Y: 150, Type: models.RoomClassroom},
					{ID: "210", Name: "Room 210", X: 250, Y: 400, Type: models.RoomClassroom},
					{ID: "212", Name: "Room 212", X: 200, Y: 150, Type: models.RoomClassroom},
					{ID: "215", Name: "Room 215", X: 150, Y: 300, Type: models.RoomClassroom},
				},
			},
			"edminster": {
				"main": {
					{ID: "100", Name: "Caffeinated Cardinal", X: 400, Y: 300, Type: models.RoomCafeteria},
					{ID: "101", Name: "Cardinal Bookstore", X: 450, Y: 200, Type: models.RoomStore},
					{ID: "110", Name: "Get Involved Booth", X: 300, Y: 250, Type: models.RoomOffice},
					{ID: "112", Name: "Student Union Operations", X: 250, Y: 200, Type: models.RoomOffice},
					{ID: "118", Name: "Driftwood Bay", X: 200, Y: 180, Type: models.RoomLounge},
					{ID: "129", Name: "The Market", X: 150, Y: 250, Type: models.RoomStore},
					{ID: "130", Name: "Dining Room", X: 350, Y: 350, Type: models.RoomCafeteria},
					{ID: "136", Name: "The Plaza", X: 300, Y: 400, Type: models.RoomLounge},
					{ID: "TOILET-M", Name: "Men's Restroom", X: 180, Y: 320, Type: models.RoomToilet},
					{ID: "TOILET-W", Name: "Women's Restroom", X: 220, Y: 320, Type: models.RoomToilet},
					{ID: "ELEVATOR", Name: "Elevator", X: 320, Y: 320, Type: models.RoomElevator},
				},
				"2nd": {
					{ID: "200", Name: "Student Services", X: 300, Y: 200, Type: models.RoomOffice},
					{ID: "204A", Name: "Blue Creek Bay", X: 400, Y: 150, Type: models.RoomLounge},
					{ID: "204B", Name: "Echo Bay", X: 450, Y: 150, Type: models.RoomLounge},
					{ID: "205", Name: "Lake Coeur d'Alene", X: 200, Y: 180, Type: models.RoomLounge},
					{ID: "210", Name: "Student Advising & TRIO", X: 150, Y: 350, Type: models.RoomOffice},
					{ID: "221", Name: "TRIO Computer Lab", X: 100, Y: 300, Type: models.RoomLab},
					{ID: "228", Name: "ASNIC Conference Room", X: 200, Y: 400, Type: models.RoomConference},
					{ID: "230", Name: "Clubs Work Room", X: 250, Y: 350, Type: models.RoomOffice},
				},
			},
		},
		CurrentBuilding: "boswell",
		CurrentFloor:    "main",
	}
}
