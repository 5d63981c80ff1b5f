package main

import (
	"log"
	"os"

	"github.com/cardinalnav/campus-backend-go/internal/api"
	"github.com/cardinalnav/campus-backend-go/internal/campus"
	"github.com/cardinalnav/campus-backend-go/internal/config"
	"github.com/cardinalnav/campus-backend-go/internal/service"
	"github.com/cardinalnav/campus-backend-go/internal/sim"
	"github.com/cardinalnav/campus-backend-go/internal/spatial"
	"github.com/cardinalnav/campus-backend-go/internal/tracking"
)

func main() {
	cfg := config.Load()

	// Campus data model: built-in dataset, or a document from disk.
	store := campus.Default()
	if cfg.DataPath != "" {
		data, err := os.ReadFile(cfg.DataPath)
		if err != nil {
			log.Fatalf("Failed to read campus data %s: %v", cfg.DataPath, err)
		}
		store, err = campus.Import(data)
		if err != nil {
			log.Fatalf("Failed to load campus data %s: %v", cfg.DataPath, err)
		}
		log.Printf("Loaded campus data from %s", cfg.DataPath)
	}

	watch := tracking.WatchConfig{
		HighAccuracy:     cfg.Tracker.Watch.HighAccuracy,
		TimeInterval:     cfg.Tracker.Watch.TimeInterval(),
		DistanceInterval: cfg.Tracker.Watch.DistanceIntervalM,
	}

	var provider tracking.Provider
	if cfg.Tracker.Sim.Enable {
		provider = sim.Provider{
			Center:    store.CurrentBuilding().Coordinates,
			RadiusM:   cfg.Tracker.Sim.RadiusM,
			Period:    cfg.Tracker.Sim.Period(),
			AccuracyM: cfg.Tracker.Sim.AccuracyM,
		}
	}

	tracker := tracking.New(provider, spatial.DefaultGridMapper(), watch, store.CurrentBuilding().Coordinates)
	navigator := service.New(store, tracker)

	if provider != nil {
		if err := navigator.StartTracking(); err != nil {
			log.Printf("Location tracking not started: %v", err)
		} else {
			log.Println("Location tracking started (simulated supplier)")
		}
		defer navigator.StopTracking()
	}

	router := api.SetupRouter(cfg, navigator)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
