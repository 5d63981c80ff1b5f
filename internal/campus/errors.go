package campus

import "errors"

// Sentinel errors for data-model operations. Callers match with errors.Is.
var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrFloorNotFound    = errors.New("floor not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrDuplicateRoom    = errors.New("room id already exists on this floor")
	ErrInvalidDocument  = errors.New("invalid campus document")
)
