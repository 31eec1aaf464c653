package destinations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-go/internal/domain/trip"
)

func cities(names ...string) []trip.City {
	result := make([]trip.City, 0, len(names))
	for _, name := range names {
		result = append(result, trip.City{ID: "c-" + name, Name: name})
	}
	return result
}

func TestRankDestinationsByTotalDays(t *testing.T) {
	allocations := []trip.UserCityDays{
		{UserID: "julian", CityID: "c-Kyoto", Days: 4},
		{UserID: "dave", CityID: "c-Kyoto", Days: 3},
		{UserID: "julian", CityID: "c-Tokyo", Days: 5},
		{UserID: "dave", CityID: "c-Osaka", Days: 2},
		{UserID: "jason", CityID: "c-Osaka", Days: 0},
		{UserID: "jason", CityID: "c-Atlantis", Days: 9},
	}

	rankings := RankDestinations(cities("Tokyo", "Osaka", "Kyoto", "Nara"), allocations)
	require.Len(t, rankings, 4)

	names := []string{rankings[0].City.Name, rankings[1].City.Name, rankings[2].City.Name, rankings[3].City.Name}
	assert.Equal(t, []string{"Kyoto", "Tokyo", "Osaka", "Nara"}, names)

	kyoto := rankings[0]
	assert.Equal(t, 7, kyoto.TotalDays)
	assert.Equal(t, 2, kyoto.UserCount)
	assert.InDelta(t, 3.5, kyoto.AvgDays, 1e-9)
	assert.Equal(t, []string{"dave", "julian"}, kyoto.UserIDs)

	osaka := rankings[2]
	assert.Equal(t, 1, osaka.UserCount)
	assert.Equal(t, 0, rankings[3].TotalDays)
}

func TestRankDestinationsTieBreaksByName(t *testing.T) {
	allocations := []trip.UserCityDays{
		{UserID: "julian", CityID: "c-nara", Days: 2},
		{UserID: "julian", CityID: "c-Hakone", Days: 2},
		{UserID: "dave", CityID: "c-Kanazawa", Days: 2},
	}
	list := []trip.City{
		{ID: "c-nara", Name: "nara"},
		{ID: "c-Kanazawa", Name: "Kanazawa"},
		{ID: "c-Hakone", Name: "Hakone"},
	}

	rankings := RankDestinations(list, allocations)
	assert.Equal(t, "Hakone", rankings[0].City.Name)
	assert.Equal(t, "Kanazawa", rankings[1].City.Name)
	assert.Equal(t, "nara", rankings[2].City.Name)
}

func TestRankDestinationsIsStable(t *testing.T) {
	list := cities("Tokyo", "Kyoto", "Osaka")
	allocations := []trip.UserCityDays{
		{UserID: "julian", CityID: "c-Osaka", Days: 3},
		{UserID: "dave", CityID: "c-Tokyo", Days: 3},
	}

	first := RankDestinations(list, allocations)
	second := RankDestinations(list, allocations)
	assert.Equal(t, first, second)
}

func TestTopDestinationsSkipsEmpty(t *testing.T) {
	allocations := []trip.UserCityDays{
		{UserID: "julian", CityID: "c-Tokyo", Days: 3},
		{UserID: "julian", CityID: "c-Kyoto", Days: 2},
	}
	rankings := RankDestinations(cities("Tokyo", "Kyoto", "Osaka"), allocations)

	top := TopDestinations(rankings, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "Tokyo", top[0].City.Name)

	assert.Len(t, TopDestinations(rankings, 1), 1)
	assert.Empty(t, TopDestinations(rankings, 0))
}
