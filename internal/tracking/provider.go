package tracking

import (
	"errors"
	"time"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

// Permission is the outcome of a location permission request.
type Permission int

const (
	PermissionDenied Permission = iota
	PermissionGranted
)

// Supplier error conditions. All are transient from the tracker's point of
// view: the subscription keeps running and the next good fix clears them.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location information unavailable")
	ErrTimeout          = errors.New("location request timed out")
	ErrNoProvider       = errors.New("no location provider configured")
)

// WatchConfig controls how often the supplier reports fixes.
type WatchConfig struct {
	HighAccuracy     bool
	TimeInterval     time.Duration
	DistanceInterval float64 // meters
}

// DefaultWatchConfig mirrors the usual mobile foreground watch settings.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		HighAccuracy:     true,
		TimeInterval:     5 * time.Second,
		DistanceInterval: 10,
	}
}

// Subscription is a handle to an active position watch. Cancel must be
// idempotent and must stop further deliveries.
type Subscription interface {
	Cancel()
}

// Provider is the external location supplier: it answers permission requests,
// produces one-shot fixes, and pushes a stream of fixes and transient errors
// to the callbacks registered through Watch.
type Provider interface {
	RequestPermission() Permission
	CurrentFix() (models.Fix, error)
	Watch(cfg WatchConfig, onFix func(models.Fix), onErr func(error)) Subscription
}

// describeError classifies a supplier error into a tracking error descriptor.
func describeError(err error) models.TrackingError {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return models.TrackingError{Kind: models.TrackingPermissionDenied, Message: "Location access denied by user"}
	case errors.Is(err, ErrUnavailable):
		return models.TrackingError{Kind: models.TrackingUnavailable, Message: "Location information unavailable"}
	case errors.Is(err, ErrTimeout):
		return models.TrackingError{Kind: models.TrackingTimeout, Message: "Location request timed out"}
	default:
		return models.TrackingError{Kind: models.TrackingUnknown, Message: "Unknown location error"}
	}
}
