package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CAMPUS_DATA", "")
	t.Setenv("TRACKER_CONFIG", "")

	cfg := Load()
	if cfg.Port != ":8080" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.Tracker.Watch.TimeInterval() != 5*time.Second {
		t.Fatalf("watch interval=%v", cfg.Tracker.Watch.TimeInterval())
	}
	if cfg.Tracker.Watch.DistanceIntervalM != 10 {
		t.Fatalf("distance interval=%v", cfg.Tracker.Watch.DistanceIntervalM)
	}
	if !cfg.Tracker.Sim.Enable {
		t.Fatalf("sim should default on")
	}
}

func TestLoadTrackerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	body := `
watch:
  high_accuracy: false
  time_interval_ms: 2000
  distance_interval_m: 25
sim:
  enable: false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tracker file: %v", err)
	}

	tc, err := loadTrackerFile(path)
	if err != nil {
		t.Fatalf("load tracker file: %v", err)
	}
	if tc.Watch.TimeInterval() != 2*time.Second {
		t.Fatalf("interval=%v", tc.Watch.TimeInterval())
	}
	if tc.Watch.DistanceIntervalM != 25 {
		t.Fatalf("distance=%v", tc.Watch.DistanceIntervalM)
	}
	if tc.Sim.Enable {
		t.Fatalf("sim not disabled by file")
	}
}

func TestLoadTrackerFileFillsZeroDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte("watch:\n  high_accuracy: true\n"), 0o644); err != nil {
		t.Fatalf("write tracker file: %v", err)
	}
	tc, err := loadTrackerFile(path)
	if err != nil {
		t.Fatalf("load tracker file: %v", err)
	}
	if tc.Watch.TimeInterval() != 5*time.Second || tc.Watch.DistanceIntervalM != 10 {
		t.Fatalf("zero values not defaulted: %+v", tc.Watch)
	}
}
