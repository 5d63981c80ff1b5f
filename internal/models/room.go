package models

// RoomType categorizes a room for icons, colors and quick-access search.
type RoomType string

const (
	RoomClassroom  RoomType = "classroom"
	RoomLab        RoomType = "lab"
	RoomToilet     RoomType = "toilet"
	RoomElevator   RoomType = "elevator"
	RoomStairs     RoomType = "stairs"
	RoomOffice     RoomType = "office"
	RoomCafeteria  RoomType = "cafeteria"
	RoomStore      RoomType = "store"
	RoomTheater    RoomType = "theater"
	RoomLounge     RoomType = "lounge"
	RoomStudy      RoomType = "study"
	RoomGallery    RoomType = "gallery"
	RoomPlaza      RoomType = "plaza"
	RoomConference RoomType = "conference"
	RoomStorage    RoomType = "storage"
	RoomOther      RoomType = "other"
)

var roomTypes = map[RoomType]bool{
	RoomClassroom: true, RoomLab: true, RoomToilet: true, RoomElevator: true,
	RoomStairs: true, RoomOffice: true, RoomCafeteria: true, RoomStore: true,
	RoomTheater: true, RoomLounge: true, RoomStudy: true, RoomGallery: true,
	RoomPlaza: true, RoomConference: true, RoomStorage: true, RoomOther: true,
}

// ParseRoomType maps a free-form category string to a known room type,
// falling back to RoomOther.
func ParseRoomType(s string) RoomType {
	if roomTypes[RoomType(s)] {
		return RoomType(s)
	}
	return RoomOther
}

// Room is a point of interest on a specific building floor. Its coordinate is
// in abstract floor-plan units, not geographic degrees. The id is unique only
// within its building+floor pair.
type Room struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	Type RoomType `json:"type"`
}
