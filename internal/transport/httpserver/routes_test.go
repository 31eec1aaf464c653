package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-go/internal/config"
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
	"trip-planner-go/internal/transport/httpserver/handler"
	"trip-planner-go/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newRouterOver(t, seededStore(t))
}

func seededStore(t *testing.T) *local.Store {
	t.Helper()
	backend, err := local.New("")
	require.NoError(t, err)
	_, err = seed.NewSeeder(backend, nil).Run(context.Background())
	require.NoError(t, err)
	return backend
}

func newRouterOver(t *testing.T, backend trip.Store) http.Handler {
	t.Helper()

	store := inmemory.NewCachedStore(backend, time.Minute, 16)
	t.Cleanup(store.Stop)

	window, err := availability.ParseWindow("2026-07-01", "2026-08-31")
	require.NoError(t, err)
	policy := availability.Policy{Window: window, MinLength: 7, MaxLength: 21, DefaultLength: 14}

	availabilityService := availability.NewService(store, policy)
	services := handler.Services{
		Travelers:    travelers.NewService(store),
		Availability: availabilityService,
		Destinations: destinations.NewService(store, availabilityService),
		Activities:   activities.NewService(store),
		Budget:       budget.NewService(store, availabilityService, policy.DefaultLength),
		Dashboard:    dashboard.NewService(store, policy, dashboard.DefaultTopN),
	}

	log := logger.NewNop()
	cfg := config.Config{Env: "test", CORSAllowedOrigins: []string{"http://localhost:5173"}}
	return NewRouter(cfg, handler.New(services, trip.ModeLocal, log), log)
}

func doRequest(t *testing.T, router http.Handler, method, path, travelerID string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if travelerID != "" {
		req.Header.Set("X-Traveler-ID", travelerID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

type errorEnvelope struct {
	Error struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Field      string `json:"field"`
		Constraint string `json:"constraint"`
	} `json:"error"`
}

func TestHealthReportsStoreMode(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "local", body.Store)
}

func TestTravelerHeaderIsChecked(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/availability/me", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var missing errorEnvelope
	decodeBody(t, rec, &missing)
	assert.Equal(t, "traveler_required", missing.Error.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/availability/me", "ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var unknown errorEnvelope
	decodeBody(t, rec, &unknown)
	assert.Equal(t, "traveler_not_found", unknown.Error.Code)
}

func TestTravelersListedInRosterOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/travelers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Items, len(seed.DefaultRoster))
	assert.Equal(t, "Julian", body.Items[0].Name)
	assert.Equal(t, seed.TravelerID("Julian"), body.Items[0].ID)
	assert.Equal(t, "Patryk", body.Items[len(body.Items)-1].Name)
}

func TestOverlapAcrossSavedAvailability(t *testing.T) {
	router := newTestRouter(t)

	ranges := map[string][2]string{
		"Julian": {"2026-07-10", "2026-07-20"},
		"Dave":   {"2026-07-15", "2026-07-25"},
		"Jason":  {"2026-07-05", "2026-07-18"},
	}
	for name, dates := range ranges {
		rec := doRequest(t, router, http.MethodPut, "/api/availability/me", seed.TravelerID(name), map[string]interface{}{
			"preferred_start": dates[0],
			"preferred_end":   dates[1],
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/api/availability/overlap", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string   `json:"status"`
		Start     *string  `json:"start"`
		End       *string  `json:"end"`
		Days      int      `json:"days"`
		Travelers []string `json:"travelers"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "found", body.Status)
	require.NotNil(t, body.Start)
	require.NotNil(t, body.End)
	assert.Equal(t, "2026-07-15", *body.Start)
	assert.Equal(t, "2026-07-18", *body.End)
	assert.Equal(t, 4, body.Days)
	assert.Equal(t, []string{"Julian", "Dave", "Jason"}, body.Travelers)

	rec = doRequest(t, router, http.MethodGet, "/api/availability/calendar?date=2026-07-16", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var day struct {
		Tier           string   `json:"tier"`
		PreferredUsers []string `json:"preferred_users"`
	}
	decodeBody(t, rec, &day)
	assert.Equal(t, "preferred", day.Tier)
	assert.Len(t, day.PreferredUsers, 3)
}

func TestSaveAvailabilityRejectsReversedRange(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/availability/me", seed.TravelerID("Frank"), map[string]interface{}{
		"preferred_start": "2026-07-20",
		"preferred_end":   "2026-07-10",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorEnvelope
	decodeBody(t, rec, &body)
	assert.Equal(t, "validation_failed", body.Error.Code)
	assert.Equal(t, availability.ConstraintPreferredOrder, body.Error.Constraint)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/budget/me", seed.TravelerID("Cathy"), map[string]interface{}{
		"hotel": "luxury",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorEnvelope
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_json", body.Error.Code)
}

func TestCityDaysAllocation(t *testing.T) {
	router := newTestRouter(t)
	julian := seed.TravelerID("Julian")
	tokyo := seed.CityID("Tokyo")

	rec := doRequest(t, router, http.MethodPut, "/api/cities/"+tokyo+"/days", julian, map[string]int{"days": 16})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var allocation struct {
		Allocated  int    `json:"allocated"`
		TripLength int    `json:"trip_length"`
		Status     string `json:"status"`
	}
	decodeBody(t, rec, &allocation)
	assert.Equal(t, 16, allocation.Allocated)
	assert.Equal(t, 14, allocation.TripLength)
	assert.Equal(t, "over", allocation.Status)

	rec = doRequest(t, router, http.MethodGet, "/api/cities/ranking?limit=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ranking struct {
		Items []struct {
			City struct {
				Name string `json:"name"`
			} `json:"city"`
			TotalDays int `json:"total_days"`
		} `json:"items"`
	}
	decodeBody(t, rec, &ranking)
	require.Len(t, ranking.Items, 1)
	assert.Equal(t, "Tokyo", ranking.Items[0].City.Name)
	assert.Equal(t, 16, ranking.Items[0].TotalDays)

	rec = doRequest(t, router, http.MethodPut, "/api/cities/"+tokyo+"/days", julian, map[string]int{"days": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &allocation)
	assert.Equal(t, 0, allocation.Allocated)
	assert.Equal(t, "under", allocation.Status)

	rec = doRequest(t, router, http.MethodPut, "/api/cities/missing/days", julian, map[string]int{"days": 2})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVotesRankAndToggle(t *testing.T) {
	router := newTestRouter(t)
	attraction := seed.AttractionID("Shibuya Scramble Crossing")
	path := "/api/attractions/" + attraction + "/vote"

	votes := map[string]int{"Julian": 1, "Dave": 1, "Jason": -1}
	for name, value := range votes {
		rec := doRequest(t, router, http.MethodPut, path, seed.TravelerID(name), map[string]int{"vote": value})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	type voteBody struct {
		Vote    int `json:"vote"`
		Ranking *struct {
			Score int `json:"score"`
		} `json:"ranking"`
	}

	rec := doRequest(t, router, http.MethodPut, path, seed.TravelerID("Frank"), map[string]int{"vote": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var cast voteBody
	decodeBody(t, rec, &cast)
	assert.Equal(t, 1, cast.Vote)
	require.NotNil(t, cast.Ranking)
	assert.Equal(t, 2, cast.Ranking.Score)

	rec = doRequest(t, router, http.MethodPut, path, seed.TravelerID("Frank"), map[string]int{"vote": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled voteBody
	decodeBody(t, rec, &toggled)
	assert.Equal(t, 0, toggled.Vote)
	require.NotNil(t, toggled.Ranking)
	assert.Equal(t, 1, toggled.Ranking.Score)

	rec = doRequest(t, router, http.MethodPut, path, seed.TravelerID("Frank"), map[string]int{"vote": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttractionsFilteredByCity(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/attractions?city_id="+seed.CityID("Tokyo"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Attraction struct {
				CityID *string `json:"city_id"`
			} `json:"attraction"`
		} `json:"items"`
	}
	decodeBody(t, rec, &body)
	require.NotEmpty(t, body.Items)
	for _, item := range body.Items {
		require.NotNil(t, item.Attraction.CityID)
		assert.Equal(t, seed.CityID("Tokyo"), *item.Attraction.CityID)
	}
}

func TestBudgetEstimateAndConsensus(t *testing.T) {
	router := newTestRouter(t)
	julian := seed.TravelerID("Julian")

	rec := doRequest(t, router, http.MethodPost, "/api/budget/estimate", julian, map[string]interface{}{
		"tiers": map[string]string{
			"flight":     "economy",
			"hotels":     "budget",
			"food":       "budget",
			"activities": "basic",
			"shopping":   "minimal",
		},
		"days": 14,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var breakdown budget.Breakdown
	decodeBody(t, rec, &breakdown)
	assert.Equal(t, 3080.0, breakdown.Total)
	assert.InDelta(t, 1980.0/14, breakdown.PerDay, 0.001)

	rec = doRequest(t, router, http.MethodGet, "/api/budget/consensus", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var empty struct {
		Status    string  `json:"status"`
		Breakdown *string `json:"breakdown"`
	}
	decodeBody(t, rec, &empty)
	assert.Equal(t, "insufficient_data", empty.Status)
	assert.Nil(t, empty.Breakdown)

	rec = doRequest(t, router, http.MethodPut, "/api/budget/me", julian, map[string]string{"hotels": "luxury"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var mine struct {
		Tiers budget.Tiers `json:"tiers"`
		Saved bool         `json:"saved"`
	}
	decodeBody(t, rec, &mine)
	assert.True(t, mine.Saved)
	assert.Equal(t, "luxury", mine.Tiers.Hotels)
	assert.Equal(t, "economy", mine.Tiers.Flight)

	rec = doRequest(t, router, http.MethodPut, "/api/budget/me", julian, map[string]string{"hotels": "castle"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var invalid errorEnvelope
	decodeBody(t, rec, &invalid)
	assert.Equal(t, budget.ConstraintKnownTier, invalid.Error.Constraint)

	rec = doRequest(t, router, http.MethodGet, "/api/budget/consensus", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found struct {
		Status  string        `json:"status"`
		Members int           `json:"members"`
		Tiers   *budget.Tiers `json:"tiers"`
	}
	decodeBody(t, rec, &found)
	assert.Equal(t, "found", found.Status)
	assert.Equal(t, 1, found.Members)
	require.NotNil(t, found.Tiers)
	assert.Equal(t, "luxury", found.Tiers.Hotels)
}

func TestDashboardStats(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stats struct {
			ReadyTravelers int `json:"ready_travelers"`
			Travelers      int `json:"travelers"`
			Destinations   int `json:"destinations"`
			Attractions    int `json:"attractions"`
		} `json:"stats"`
		BestDates struct {
			Status string `json:"status"`
		} `json:"best_dates"`
		Calendar []struct {
			Name string `json:"name"`
		} `json:"calendar"`
		Team []struct {
			Status string `json:"status"`
		} `json:"team"`
		Degraded bool `json:"degraded"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, len(seed.DefaultRoster), body.Stats.Travelers)
	assert.Equal(t, 0, body.Stats.ReadyTravelers)
	assert.Equal(t, "insufficient_data", body.BestDates.Status)
	assert.Len(t, body.Calendar, 2)
	require.Len(t, body.Team, len(seed.DefaultRoster))
	assert.Equal(t, "Not started", body.Team[0].Status)
	assert.False(t, body.Degraded)
}

type unreachableStore struct {
	*local.Store
}

func (s unreachableStore) ListVotes(ctx context.Context) ([]trip.Vote, error) {
	return nil, errors.New("network down")
}

func (s unreachableStore) ListUserCityDays(ctx context.Context) ([]trip.UserCityDays, error) {
	return nil, errors.New("network down")
}

func (s unreachableStore) ListUserBudgets(ctx context.Context) ([]trip.UserBudget, error) {
	return nil, errors.New("network down")
}

func TestFailedReadsServeDegradedData(t *testing.T) {
	router := newRouterOver(t, unreachableStore{Store: seededStore(t)})
	julian := seed.TravelerID("Julian")

	var body struct {
		Items    []json.RawMessage `json:"items"`
		Status   string            `json:"status"`
		Degraded bool              `json:"degraded"`
	}

	rec := doRequest(t, router, http.MethodGet, "/api/attractions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Degraded)
	assert.NotEmpty(t, body.Items)

	body.Degraded = false
	rec = doRequest(t, router, http.MethodGet, "/api/cities/ranking", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Degraded)

	body.Degraded = false
	rec = doRequest(t, router, http.MethodGet, "/api/cities/me/days", julian, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Degraded)
	assert.Equal(t, "under", body.Status)

	body.Degraded = false
	rec = doRequest(t, router, http.MethodGet, "/api/budget/consensus", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Degraded)
	assert.Equal(t, "insufficient_data", body.Status)

	rec = doRequest(t, router, http.MethodPut, "/api/attractions/"+seed.AttractionID("Shibuya Scramble Crossing")+"/vote", julian, map[string]int{"vote": 1})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/availability/me", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "x-traveler-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
