package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"trip-planner-go/internal/config"
	"trip-planner-go/internal/db"
	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/dashboard"
	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/seed"
	"trip-planner-go/internal/domain/travelers"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/repository/inmemory"
	"trip-planner-go/internal/repository/local"
	postgrestrip "trip-planner-go/internal/repository/postgres/trip"
	"trip-planner-go/internal/transport/httpserver"
	"trip-planner-go/internal/transport/httpserver/handler"
	"trip-planner-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	store      *inmemory.CachedStore
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing store", "mode", cfg.ResolvedStoreMode())
	backend, mode, dbConn, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}
	store := inmemory.NewCachedStore(backend, cfg.Dashboard.CacheTTL, cfg.Dashboard.CacheSize)

	application := &App{cfg: cfg, db: dbConn, store: store, log: log}

	policy, err := tripPolicy(cfg.Trip)
	if err != nil {
		_ = application.Close()
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := runSeeder(store, cfg.Trip.Roster, log); err != nil {
			_ = application.Close()
			return nil, err
		}
	}

	availabilityService := availability.NewService(store, policy)
	services := handler.Services{
		Travelers:    travelers.NewService(store),
		Availability: availabilityService,
		Destinations: destinations.NewService(store, availabilityService),
		Activities:   activities.NewService(store),
		Budget:       budget.NewService(store, availabilityService, policy.DefaultLength),
		Dashboard:    dashboard.NewService(store, policy, cfg.Dashboard.TopN),
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handler.New(services, mode, log), log)

	log.Info("app: initializing http server")
	application.httpServer = httpserver.New(cfg, router)

	return application, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.store != nil {
		a.store.Stop()
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openStore(cfg config.Config, log logger.Logger) (trip.Store, trip.Mode, *gorm.DB, error) {
	if cfg.ResolvedStoreMode() == config.StoreModePostgres {
		dbConn, err := db.NewPostgres(cfg.DB, log)
		if err != nil {
			return nil, "", nil, err
		}
		if err := db.Migrate(dbConn, log); err != nil {
			if sqlDB, closeErr := dbConn.DB(); closeErr == nil {
				_ = sqlDB.Close()
			}
			return nil, "", nil, err
		}
		return postgrestrip.NewPostgres(dbConn), trip.ModePostgres, dbConn, nil
	}

	store, err := local.New(cfg.Store.LocalPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open local store: %w", err)
	}
	log.Info("app: using local store", "path", store.Path())
	return store, trip.ModeLocal, nil, nil
}

func tripPolicy(cfg config.TripConfig) (availability.Policy, error) {
	window, err := availability.ParseWindow(cfg.MinDate, cfg.MaxDate)
	if err != nil {
		return availability.Policy{}, fmt.Errorf("trip window: %w", err)
	}
	return availability.Policy{
		Window:        window,
		MinLength:     cfg.MinLength,
		MaxLength:     cfg.MaxLength,
		DefaultLength: cfg.DefaultLength,
	}, nil
}

func runSeeder(store trip.Store, entries []config.RosterEntry, log logger.Logger) error {
	roster := make([]seed.RosterMember, 0, len(entries))
	for _, entry := range entries {
		roster = append(roster, seed.RosterMember{Name: entry.Name, Initials: entry.Initials, Color: entry.Color})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := seed.NewSeeder(store, roster).Run(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("app: seed finished", "travelers", result.Travelers, "cities", result.Cities, "attractions", result.Attractions)
	return nil
}
