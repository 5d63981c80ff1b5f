package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Server settings come from the
// environment (with a .env file honored when present); tracker and simulator
// settings come from an optional YAML file.
type Config struct {
	Port        string
	JWTSecret   string
	DataPath    string // optional campus JSON document loaded at startup
	TrackerPath string // optional tracker YAML file
	Tracker     TrackerConfig
}

// TrackerConfig tunes the location watch and the simulated supplier.
type TrackerConfig struct {
	Watch WatchFileConfig `yaml:"watch"`
	Sim   SimFileConfig   `yaml:"sim"`
}

type WatchFileConfig struct {
	HighAccuracy      bool    `yaml:"high_accuracy"`
	TimeIntervalMs    int     `yaml:"time_interval_ms"`
	DistanceIntervalM float64 `yaml:"distance_interval_m"`
}

// TimeInterval returns the watch reporting interval as a duration.
func (w WatchFileConfig) TimeInterval() time.Duration {
	return time.Duration(w.TimeIntervalMs) * time.Millisecond
}

type SimFileConfig struct {
	Enable    bool    `yaml:"enable"`
	RadiusM   float64 `yaml:"radius_m"`
	PeriodS   int     `yaml:"period_s"`
	AccuracyM float64 `yaml:"accuracy_m"`
}

// Period returns the simulated lap time as a duration.
func (s SimFileConfig) Period() time.Duration {
	return time.Duration(s.PeriodS) * time.Second
}

// Load reads the configuration, applying defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	cfg := &Config{
		Port:        port,
		JWTSecret:   jwtSecret,
		DataPath:    os.Getenv("CAMPUS_DATA"),
		TrackerPath: os.Getenv("TRACKER_CONFIG"),
		Tracker:     defaultTrackerConfig(),
	}

	if cfg.TrackerPath != "" {
		tc, err := loadTrackerFile(cfg.TrackerPath)
		if err != nil {
			log.Printf("Ignoring tracker config %s: %v", cfg.TrackerPath, err)
		} else {
			cfg.Tracker = tc
		}
	}

	return cfg
}

func defaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Watch: WatchFileConfig{
			HighAccuracy:      true,
			TimeIntervalMs:    5000,
			DistanceIntervalM: 10,
		},
		Sim: SimFileConfig{
			Enable:    true,
			RadiusM:   50,
			PeriodS:   120,
			AccuracyM: 5,
		},
	}
}

func loadTrackerFile(path string) (TrackerConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return TrackerConfig{}, err
	}

	cfg := defaultTrackerConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return TrackerConfig{}, fmt.Errorf("parse tracker config: %w", err)
	}
	if cfg.Watch.TimeIntervalMs <= 0 {
		cfg.Watch.TimeIntervalMs = 5000
	}
	if cfg.Watch.DistanceIntervalM <= 0 {
		cfg.Watch.DistanceIntervalM = 10
	}
	return cfg, nil
}
