package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/repository/local"
)

type failingVotesStore struct {
	*local.Store
}

func (s failingVotesStore) ListVotes(ctx context.Context) ([]trip.Vote, error) {
	return nil, errors.New("timeout")
}

func date(value string) *time.Time {
	parsed, err := time.Parse(trip.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func testPolicy(t *testing.T) availability.Policy {
	t.Helper()
	window, err := availability.ParseWindow("2026-07-01", "2026-08-31")
	require.NoError(t, err)
	return availability.Policy{Window: window, MinLength: 7, MaxLength: 21, DefaultLength: 14}
}

func seededStore(t *testing.T) *local.Store {
	t.Helper()
	ctx := context.Background()
	store, err := local.New("")
	require.NoError(t, err)

	for i, name := range []string{"Julian", "Dave", "Jason", "Frank"} {
		require.NoError(t, store.UpsertUser(ctx, &trip.User{ID: name, Name: name, Position: i}))
	}
	for _, city := range []trip.City{{ID: "tokyo", Name: "Tokyo"}, {ID: "kyoto", Name: "Kyoto"}, {ID: "nara", Name: "Nara"}} {
		city := city
		_, err := store.InsertCity(ctx, &city)
		require.NoError(t, err)
	}
	for _, attraction := range []trip.Attraction{{ID: "a-1", Name: "Shibuya"}, {ID: "a-2", Name: "Gion"}} {
		attraction := attraction
		_, err := store.InsertAttraction(ctx, &attraction)
		require.NoError(t, err)
	}

	_, err = store.UpsertAvailability(ctx, &trip.Availability{UserID: "Julian", PreferredStart: date("2026-07-10"), PreferredEnd: date("2026-07-20")})
	require.NoError(t, err)
	_, err = store.UpsertAvailability(ctx, &trip.Availability{UserID: "Dave", PreferredStart: date("2026-07-15"), PreferredEnd: date("2026-07-25")})
	require.NoError(t, err)
	_, err = store.UpsertAvailability(ctx, &trip.Availability{UserID: "Jason", AvailableStart: date("2026-07-01"), AvailableEnd: date("2026-07-31")})
	require.NoError(t, err)

	_, err = store.UpsertUserCityDays(ctx, "Julian", "tokyo", 4)
	require.NoError(t, err)
	_, err = store.UpsertUserCityDays(ctx, "Dave", "kyoto", 5)
	require.NoError(t, err)
	_, err = store.UpsertVote(ctx, "Julian", "a-2", 1)
	require.NoError(t, err)

	_, err = store.UpsertUserBudget(ctx, &trip.UserBudget{UserID: "Julian", HotelsTier: "mid"})
	require.NoError(t, err)
	return store
}

func TestBuildDashboard(t *testing.T) {
	svc := NewService(seededStore(t), testPolicy(t), 5)

	result, err := svc.Build(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Degraded)

	assert.Equal(t, Stats{ReadyTravelers: 2, Travelers: 4, Destinations: 3, Attractions: 2}, result.Stats)

	assert.Equal(t, availability.OverlapFound, result.BestDates.Status)
	assert.Equal(t, 6, result.BestDates.Days)

	require.Len(t, result.Calendar, 2)
	require.Len(t, result.Timeline, 4)

	require.Len(t, result.TopDestinations, 2)
	assert.Equal(t, "Kyoto", result.TopDestinations[0].City.Name)
	require.Len(t, result.TopAttractions, 1)
	assert.Equal(t, "Gion", result.TopAttractions[0].Attraction.Name)

	statuses := make([]MemberStatus, 0, len(result.Team))
	for _, member := range result.Team {
		statuses = append(statuses, member.Status)
	}
	assert.Equal(t, []MemberStatus{StatusAllSet, StatusNeedsVote, StatusSettingDates, StatusNotStarted}, statuses)
	assert.True(t, result.Team[0].Ready)

	assert.Equal(t, budget.ConsensusFound, result.Budget.Status)
	assert.Equal(t, "mid", result.Budget.Tiers.Hotels)
}

func TestBuildDegradesFailedReads(t *testing.T) {
	svc := NewService(failingVotesStore{Store: seededStore(t)}, testPolicy(t), 5)

	result, err := svc.Build(context.Background())
	require.Error(t, err)
	assert.True(t, trip.IsPersistence(err))
	assert.True(t, result.Degraded)

	assert.Empty(t, result.TopAttractions)
	assert.Len(t, result.TopDestinations, 2)
	assert.Equal(t, StatusNeedsVote, result.Team[0].Status)
}

func TestTopNLimit(t *testing.T) {
	svc := NewService(seededStore(t), testPolicy(t), 1)

	result, err := svc.Build(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.TopDestinations, 1)
}
