package destinations

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"trip-planner-go/internal/domain/trip"
)

// TripLengthSource resolves how many days a traveler wants to travel.
type TripLengthSource interface {
	TripLength(ctx context.Context, userID string) (int, error)
}

type Service struct {
	store   trip.Store
	lengths TripLengthSource
}

func NewService(store trip.Store, lengths TripLengthSource) *Service {
	return &Service{store: store, lengths: lengths}
}

func (s *Service) ListCities(ctx context.Context) ([]trip.City, error) {
	cities, err := s.store.ListCities(ctx)
	if err != nil {
		return []trip.City{}, trip.WrapPersistence("list cities", err)
	}
	return cities, nil
}

func (s *Service) AddCity(ctx context.Context, input AddCityInput) (*trip.City, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, trip.NewValidationError("name", "required", "name is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, trip.NewValidationError("description", "required", "description is required")
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = DefaultCityImage
	}

	var japaneseName *string
	if input.JapaneseName != nil {
		if trimmed := strings.TrimSpace(*input.JapaneseName); trimmed != "" {
			japaneseName = &trimmed
		}
	}

	highlights := make([]string, 0, len(input.Highlights))
	for _, highlight := range input.Highlights {
		if trimmed := strings.TrimSpace(highlight); trimmed != "" {
			highlights = append(highlights, trimmed)
		}
	}

	city, err := s.store.InsertCity(ctx, &trip.City{
		ID:           uuid.NewString(),
		Name:         name,
		JapaneseName: japaneseName,
		Description:  description,
		ImageURL:     imageURL,
		Highlights:   highlights,
	})
	if err != nil {
		return nil, trip.WrapPersistence("insert city", err)
	}
	return city, nil
}

// SetDays stores how many days the traveler wants in a city. Zero removes the
// allocation and returns nil.
func (s *Service) SetDays(ctx context.Context, userID, cityID string, days int) (*trip.UserCityDays, error) {
	if days < 0 {
		return nil, trip.NewValidationError("days", "non_negative", "days must not be negative")
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, trip.WrapPersistence("get user", err)
	}
	if _, err := s.store.GetCity(ctx, cityID); err != nil {
		return nil, trip.WrapPersistence("get city", err)
	}

	record, err := s.store.UpsertUserCityDays(ctx, userID, cityID, days)
	if err != nil {
		return nil, trip.WrapPersistence("upsert user city days", err)
	}
	return record, nil
}

// Ranking ranks every city. A failed read ranks what could be read and the
// failure is returned next to the rankings.
func (s *Service) Ranking(ctx context.Context) ([]CityRanking, error) {
	var notice error

	cities, err := s.store.ListCities(ctx)
	if err != nil {
		notice = trip.WrapPersistence("list cities", err)
		cities = []trip.City{}
	}

	allocations, err := s.store.ListUserCityDays(ctx)
	if err != nil {
		if notice == nil {
			notice = trip.WrapPersistence("list user city days", err)
		}
		allocations = []trip.UserCityDays{}
	}

	return RankDestinations(cities, allocations), notice
}

// Allocation sums the traveler's city days against their trip length. Read
// failures degrade the same way Ranking does.
func (s *Service) Allocation(ctx context.Context, userID string) (Allocation, error) {
	var notice error

	allocations, err := s.store.ListUserCityDays(ctx)
	if err != nil {
		notice = trip.WrapPersistence("list user city days", err)
		allocations = []trip.UserCityDays{}
	}

	tripLength, err := s.lengths.TripLength(ctx, userID)
	if err != nil && notice == nil {
		notice = err
	}

	result := Allocation{Items: []trip.UserCityDays{}, TripLength: tripLength}
	for _, allocation := range allocations {
		if allocation.UserID != userID || allocation.Days <= 0 {
			continue
		}
		result.Items = append(result.Items, allocation)
		result.Allocated += allocation.Days
	}
	result.Status = allocationStatus(result.Allocated, tripLength)
	return result, notice
}
