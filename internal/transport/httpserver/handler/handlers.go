package handler

import (
	"github.com/go-playground/validator/v10"

	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/dashboard"
	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/travelers"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/pkg/logger"
)

type Handlers struct {
	Travelers    *travelers.Service
	Availability *availability.Service
	Destinations *destinations.Service
	Activities   *activities.Service
	Budget       *budget.Service
	Dashboard    *dashboard.Service

	storeMode trip.Mode
	validate  *validator.Validate
	log       logger.Logger
}

type Services struct {
	Travelers    *travelers.Service
	Availability *availability.Service
	Destinations *destinations.Service
	Activities   *activities.Service
	Budget       *budget.Service
	Dashboard    *dashboard.Service
}

func New(services Services, storeMode trip.Mode, log logger.Logger) *Handlers {
	return &Handlers{
		Travelers:    services.Travelers,
		Availability: services.Availability,
		Destinations: services.Destinations,
		Activities:   services.Activities,
		Budget:       services.Budget,
		Dashboard:    services.Dashboard,
		storeMode:    storeMode,
		validate:     newValidator(),
		log:          log,
	}
}
