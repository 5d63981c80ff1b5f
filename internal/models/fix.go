package models

// Fix is a single raw position reading from the location supplier.
type Fix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`            // meters
	Timestamp int64   `json:"timestamp,omitempty"` // Unix milliseconds
}

// UserPosition is the user's believed location on the current floor, plus the
// geographic fix it was derived from, if any. Owned by the location tracker;
// read-only everywhere else.
type UserPosition struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Fix      *Fix    `json:"fix,omitempty"`
	OnCampus bool    `json:"onCampus"`
}

// TrackingErrorKind classifies a transient location supplier failure.
type TrackingErrorKind string

const (
	TrackingPermissionDenied TrackingErrorKind = "permission_denied"
	TrackingUnavailable      TrackingErrorKind = "position_unavailable"
	TrackingTimeout          TrackingErrorKind = "timeout"
	TrackingUnknown          TrackingErrorKind = "unknown"
)

// TrackingError describes the tracker's current error condition. Errors are
// transient: the next successful fix clears them.
type TrackingError struct {
	Kind    TrackingErrorKind `json:"kind"`
	Message string            `json:"message"`
}
