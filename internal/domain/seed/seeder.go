package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/trip"
)

const (
	KeyTravelers   = "travelers"
	KeyCities      = "cities"
	KeyAttractions = "attractions"
)

type Result struct {
	Travelers   int
	Cities      int
	Attractions int
}

type Seeder struct {
	store  trip.Store
	roster []RosterMember
}

func NewSeeder(store trip.Store, roster []RosterMember) *Seeder {
	if len(roster) == 0 {
		roster = DefaultRoster
	}
	return &Seeder{store: store, roster: roster}
}

func TravelerID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("trip-planner/traveler/"+name)).String()
}

func CityID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("trip-planner/city/"+name)).String()
}

func AttractionID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("trip-planner/attraction/"+name)).String()
}

// Run seeds travelers, cities and attractions once each. Every step is guarded
// by its seed marker, and records that already exist are left untouched.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var result Result

	steps := []struct {
		key string
		run func(context.Context) (int, error)
		out *int
	}{
		{KeyTravelers, s.seedTravelers, &result.Travelers},
		{KeyCities, s.seedCities, &result.Cities},
		{KeyAttractions, s.seedAttractions, &result.Attractions},
	}

	for _, step := range steps {
		seeded, err := s.store.IsSeeded(ctx, step.key)
		if err != nil {
			return result, trip.WrapPersistence("is seeded", err)
		}
		if seeded {
			continue
		}

		inserted, err := step.run(ctx)
		*step.out = inserted
		if err != nil {
			return result, fmt.Errorf("seed %s: %w", step.key, err)
		}
		if err := s.store.MarkSeeded(ctx, step.key); err != nil {
			return result, trip.WrapPersistence("mark seeded", err)
		}
	}
	return result, nil
}

func (s *Seeder) seedTravelers(ctx context.Context) (int, error) {
	inserted := 0
	for i, member := range s.roster {
		id := TravelerID(member.Name)
		_, err := s.store.GetUser(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, trip.ErrUserNotFound) {
			return inserted, trip.WrapPersistence("get user", err)
		}

		user := trip.User{
			ID:       id,
			Name:     member.Name,
			Initials: member.Initials,
			Color:    member.Color,
			Position: i,
		}
		if err := s.store.UpsertUser(ctx, &user); err != nil {
			return inserted, trip.WrapPersistence("upsert user", err)
		}
		inserted++
	}
	return inserted, nil
}

func (s *Seeder) seedCities(ctx context.Context) (int, error) {
	inserted := 0
	for _, data := range cities {
		id := CityID(data.Name)
		_, err := s.store.GetCity(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, trip.ErrCityNotFound) {
			return inserted, trip.WrapPersistence("get city", err)
		}

		imageURL := data.ImageURL
		if imageURL == "" {
			imageURL = destinations.DefaultCityImage
		}
		japaneseName := data.JapaneseName
		city := trip.City{
			ID:           id,
			Name:         data.Name,
			JapaneseName: &japaneseName,
			Description:  data.Description,
			ImageURL:     imageURL,
			Highlights:   append([]string(nil), data.Highlights...),
		}
		if _, err := s.store.InsertCity(ctx, &city); err != nil {
			return inserted, trip.WrapPersistence("insert city", err)
		}
		inserted++
	}
	return inserted, nil
}

// seedAttractions links each attraction to the city with the same name,
// whichever id that city has.
func (s *Seeder) seedAttractions(ctx context.Context) (int, error) {
	existing, err := s.store.ListCities(ctx)
	if err != nil {
		return 0, trip.WrapPersistence("list cities", err)
	}
	cityIDs := make(map[string]string, len(existing))
	for _, city := range existing {
		if _, ok := cityIDs[city.Name]; !ok {
			cityIDs[city.Name] = city.ID
		}
	}

	inserted := 0
	for _, data := range attractions {
		id := AttractionID(data.Name)
		_, err := s.store.GetAttraction(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, trip.ErrAttractionNotFound) {
			return inserted, trip.WrapPersistence("get attraction", err)
		}

		attraction := trip.Attraction{
			ID:          id,
			Name:        data.Name,
			Description: data.Description,
			ImageURL:    activities.DefaultAttractionImage,
		}
		if cityID, ok := cityIDs[data.City]; ok {
			attraction.CityID = &cityID
		}
		if data.TimeEstimate != "" {
			estimate := data.TimeEstimate
			attraction.TimeEstimate = &estimate
		}
		if _, err := s.store.InsertAttraction(ctx, &attraction); err != nil {
			return inserted, trip.WrapPersistence("insert attraction", err)
		}
		inserted++
	}
	return inserted, nil
}
