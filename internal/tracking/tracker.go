package tracking

import (
	"sync"

	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/spatial"
)

// OnCampusRadiusMeters is how close a fix must be to the active building's
// reference point to count as on campus and be used for map recentring.
// Fixes outside the radius are still recorded.
const OnCampusRadiusMeters = 1000.0

// DefaultPosition is the user position before any fix or check-in arrives:
// the floor-plan entrance.
var DefaultPosition = spatial.PlanPoint{X: 50, Y: 300}

// Tracker converts supplier fixes into an indoor position estimate. It owns
// the user position exclusively; everyone else reads snapshots. Fix delivery
// is asynchronous, so the tracker guards its state with a mutex and never
// holds it while calling the sink.
type Tracker struct {
	mu        sync.Mutex
	provider  Provider
	mapper    spatial.IndoorMapper
	cfg       WatchConfig
	reference models.GeoPoint
	sub       Subscription
	gen       int // bumped on Stop so late deliveries are dropped
	pos       models.UserPosition
	trackErr  *models.TrackingError
	sink      func(models.UserPosition)
}

// New creates a tracker. provider may be nil when fixes arrive only through
// ProcessFix. reference is the active building's geographic anchor.
func New(provider Provider, mapper spatial.IndoorMapper, cfg WatchConfig, reference models.GeoPoint) *Tracker {
	if cfg.TimeInterval <= 0 {
		cfg = DefaultWatchConfig()
	}
	return &Tracker{
		provider:  provider,
		mapper:    mapper,
		cfg:       cfg,
		reference: reference,
		pos:       models.UserPosition{X: DefaultPosition.X, Y: DefaultPosition.Y},
	}
}

// SetSink registers the callback invoked after every position change.
func (t *Tracker) SetSink(fn func(models.UserPosition)) {
	t.mu.Lock()
	t.sink = fn
	t.mu.Unlock()
}

// SetReference re-targets the on-campus check, typically after a building
// switch.
func (t *Tracker) SetReference(p models.GeoPoint) {
	t.mu.Lock()
	t.reference = p
	t.mu.Unlock()
}

// Start requests permission, takes one immediate fix, and opens the recurring
// watch. At most one watch is active; calling Start while tracking is a no-op.
func (t *Tracker) Start() error {
	t.mu.Lock()
	if t.sub != nil {
		t.mu.Unlock()
		return nil
	}
	provider := t.provider
	gen := t.gen
	cfg := t.cfg
	t.mu.Unlock()

	if provider == nil {
		return ErrNoProvider
	}
	if provider.RequestPermission() != PermissionGranted {
		t.recordError(ErrPermissionDenied)
		return ErrPermissionDenied
	}

	if fix, err := provider.CurrentFix(); err != nil {
		t.recordError(err)
	} else {
		t.ProcessFix(fix)
	}

	sub := provider.Watch(cfg,
		func(fix models.Fix) { t.deliverFix(gen, fix) },
		func(err error) { t.deliverError(gen, err) },
	)

	t.mu.Lock()
	if t.gen != gen {
		// Stopped while the watch was being set up.
		t.mu.Unlock()
		sub.Cancel()
		return nil
	}
	t.sub = sub
	t.mu.Unlock()
	return nil
}

// Stop cancels the subscription and releases it. Idempotent; any fix still in
// flight when Stop returns is discarded.
func (t *Tracker) Stop() {
	t.mu.Lock()
	sub := t.sub
	t.sub = nil
	t.gen++
	t.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
}

// Tracking reports whether a watch subscription is active.
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sub != nil
}

func (t *Tracker) deliverFix(gen int, fix models.Fix) {
	t.mu.Lock()
	stale := t.gen != gen
	t.mu.Unlock()
	if stale {
		return
	}
	t.ProcessFix(fix)
}

func (t *Tracker) deliverError(gen int, err error) {
	t.mu.Lock()
	stale := t.gen != gen
	t.mu.Unlock()
	if stale {
		return
	}
	t.recordError(err)
}

// ProcessFix translates a raw fix into the indoor position estimate and
// clears any tracking error. Exposed so callers can also act as the supplier
// (a fix pushed over the API is handled exactly like a watch fix).
func (t *Tracker) ProcessFix(fix models.Fix) {
	t.mu.Lock()
	p := t.mapper.MapToPlan(fix.Latitude, fix.Longitude)
	dist := spatial.GeoDistance(models.GeoPoint{Latitude: fix.Latitude, Longitude: fix.Longitude}, t.reference)
	f := fix
	t.pos = models.UserPosition{
		X:        p.X,
		Y:        p.Y,
		Fix:      &f,
		OnCampus: dist < OnCampusRadiusMeters,
	}
	t.trackErr = nil
	pos := t.pos
	sink := t.sink
	t.mu.Unlock()

	if sink != nil {
		sink(pos)
	}
}

// CheckIn sets the indoor position directly to a room's coordinate,
// bypassing GPS-derived estimation. The last geographic fix is kept.
func (t *Tracker) CheckIn(room models.Room) {
	t.mu.Lock()
	t.pos.X = room.X
	t.pos.Y = room.Y
	pos := t.pos
	sink := t.sink
	t.mu.Unlock()

	if sink != nil {
		sink(pos)
	}
}

func (t *Tracker) recordError(err error) {
	desc := describeError(err)
	t.mu.Lock()
	t.trackErr = &desc
	t.mu.Unlock()
}

// Position returns the latest user position.
func (t *Tracker) Position() models.UserPosition {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

// Err returns the current tracking error descriptor, or nil.
func (t *Tracker) Err() *models.TrackingError {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.trackErr == nil {
		return nil
	}
	e := *t.trackErr
	return &e
}
