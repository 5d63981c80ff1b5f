// Package sim provides a deterministic location supplier that walks a small
// circuit around a center point, standing in for a device location service
// during development and tests.
package sim

import (
	"math"
	"sync"
	"time"

	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/tracking"
)

const metersPerLatDegree = 111320.0

// Provider emits fixes on a circular walk around Center. Position is a pure
// function of wall time, so replays at a given instant are reproducible.
type Provider struct {
	Center    models.GeoPoint
	RadiusM   float64       // circuit radius in meters
	Period    time.Duration // time for one lap
	AccuracyM float64       // reported fix accuracy
}

// RequestPermission always grants; the simulator has nothing to ask.
func (p Provider) RequestPermission() tracking.Permission {
	return tracking.PermissionGranted
}

// CurrentFix returns the simulated position for the current instant.
func (p Provider) CurrentFix() (models.Fix, error) {
	return p.FixAt(time.Now()), nil
}

// FixAt returns the simulated fix for an arbitrary instant.
func (p Provider) FixAt(now time.Time) models.Fix {
	radius := p.RadiusM
	if radius <= 0 {
		radius = 50
	}
	period := p.Period
	if period <= 0 {
		period = 2 * time.Minute
	}
	accuracy := p.AccuracyM
	if accuracy <= 0 {
		accuracy = 5
	}

	radiusDeg := radius / metersPerLatDegree
	phase := float64(now.UnixNano()%period.Nanoseconds()) / float64(period.Nanoseconds())
	w := 2 * math.Pi * phase

	lat := p.Center.Latitude + radiusDeg*math.Sin(w)
	lng := p.Center.Longitude + (radiusDeg*math.Cos(w))/math.Cos(p.Center.Latitude*math.Pi/180)

	return models.Fix{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  accuracy,
		Timestamp: now.UnixMilli(),
	}
}

// Watch starts a goroutine delivering a fix every cfg.TimeInterval until the
// subscription is cancelled.
func (p Provider) Watch(cfg tracking.WatchConfig, onFix func(models.Fix), onErr func(error)) tracking.Subscription {
	interval := cfg.TimeInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	done := make(chan struct{})
	sub := &subscription{done: done}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				onFix(p.FixAt(now))
			}
		}
	}()

	return sub
}

type subscription struct {
	once sync.Once
	done chan struct{}
}

func (s *subscription) Cancel() {
	s.once.Do(func() { close(s.done) })
}
