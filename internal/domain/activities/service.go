package activities

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"trip-planner-go/internal/domain/trip"
)

type Service struct {
	store trip.Store
}

func NewService(store trip.Store) *Service {
	return &Service{store: store}
}

// List ranks attractions. A failed read ranks what could be read and the
// failure is returned next to the rankings.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]AttractionRanking, error) {
	rankings, notice := s.rank(ctx)
	if filter.CityID != nil {
		rankings = FilterByCity(rankings, *filter.CityID)
	}
	return rankings, notice
}

func (s *Service) AddAttraction(ctx context.Context, input AddAttractionInput) (*trip.Attraction, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, trip.NewValidationError("name", "required", "name is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, trip.NewValidationError("description", "required", "description is required")
	}

	var cityID *string
	if input.CityID != nil && strings.TrimSpace(*input.CityID) != "" {
		id := strings.TrimSpace(*input.CityID)
		if _, err := s.store.GetCity(ctx, id); err != nil {
			return nil, trip.WrapPersistence("get city", err)
		}
		cityID = &id
	}

	var timeEstimate *string
	if input.TimeEstimate != nil && strings.TrimSpace(*input.TimeEstimate) != "" {
		value := strings.TrimSpace(*input.TimeEstimate)
		timeEstimate = &value
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = DefaultAttractionImage
	}

	var createdBy *string
	if input.CreatedBy != "" {
		creator := input.CreatedBy
		createdBy = &creator
	}

	attraction, err := s.store.InsertAttraction(ctx, &trip.Attraction{
		ID:           uuid.NewString(),
		CityID:       cityID,
		Name:         name,
		Description:  description,
		TimeEstimate: timeEstimate,
		ImageURL:     imageURL,
		CreatedBy:    createdBy,
	})
	if err != nil {
		return nil, trip.WrapPersistence("insert attraction", err)
	}
	return attraction, nil
}

// Vote casts value for the traveler. Repeating the vote the traveler already
// holds clears it, and 0 always clears.
func (s *Service) Vote(ctx context.Context, userID, attractionID string, value int) (VoteResult, error) {
	if value < -1 || value > 1 {
		return VoteResult{}, trip.NewValidationError("vote", "vote_value", "vote must be -1, 0 or 1")
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return VoteResult{}, trip.WrapPersistence("get user", err)
	}
	if _, err := s.store.GetAttraction(ctx, attractionID); err != nil {
		return VoteResult{}, trip.WrapPersistence("get attraction", err)
	}

	current, err := s.store.GetVote(ctx, userID, attractionID)
	if err != nil {
		return VoteResult{}, trip.WrapPersistence("get vote", err)
	}
	if current != nil && value != 0 && current.Value == value {
		value = 0
	}

	if _, err := s.store.UpsertVote(ctx, userID, attractionID, value); err != nil {
		return VoteResult{}, trip.WrapPersistence("upsert vote", err)
	}

	// The write already succeeded; a failed refresh leaves Ranking empty.
	result := VoteResult{AttractionID: attractionID, Value: value}
	rankings, _ := s.rank(ctx)
	for _, ranking := range rankings {
		if ranking.Attraction.ID == attractionID {
			result.Ranking = ranking
			break
		}
	}
	return result, nil
}

func (s *Service) rank(ctx context.Context) ([]AttractionRanking, error) {
	var notice error

	attractions, err := s.store.ListAttractions(ctx)
	if err != nil {
		notice = trip.WrapPersistence("list attractions", err)
		attractions = []trip.Attraction{}
	}

	votes, err := s.store.ListVotes(ctx)
	if err != nil {
		if notice == nil {
			notice = trip.WrapPersistence("list votes", err)
		}
		votes = []trip.Vote{}
	}

	return RankAttractions(attractions, votes), notice
}
