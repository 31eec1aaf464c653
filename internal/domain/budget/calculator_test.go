package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-go/internal/domain/trip"
)

func cheapest() Tiers {
	return Tiers{Flight: "economy", Hotels: "budget", Food: "budget", Activities: "basic", Shopping: "minimal"}
}

func TestCalculateFourteenDayCheapestTrip(t *testing.T) {
	breakdown, err := Calculate(cheapest(), 14)
	require.NoError(t, err)

	assert.Equal(t, 1100.0, breakdown.Flight)
	assert.Equal(t, 1040.0, breakdown.Hotels)
	assert.Equal(t, 560.0, breakdown.Food)
	assert.Equal(t, 280.0, breakdown.Activities)
	assert.Equal(t, 100.0, breakdown.Shopping)
	assert.Equal(t, 3080.0, breakdown.Total)
	assert.InDelta(t, 1980.0/14, breakdown.PerDay, 0.001)
}

func TestCalculateScalesWithDays(t *testing.T) {
	tiers := Tiers{Flight: "business", Hotels: "luxury", Food: "premium", Activities: "moderate", Shopping: "splurge"}

	short, err := Calculate(tiers, 7)
	require.NoError(t, err)
	long, err := Calculate(tiers, 14)
	require.NoError(t, err)

	assert.Equal(t, 2*short.Food, long.Food)
	assert.Equal(t, 2*short.Activities, long.Activities)
	assert.Equal(t, short.Flight, long.Flight)
	assert.Equal(t, short.Shopping, long.Shopping)
	assert.Equal(t, 400.0*6, short.Hotels)
	assert.Equal(t, 400.0*13, long.Hotels)
}

func TestCalculateSingleDayHasNoNights(t *testing.T) {
	breakdown, err := Calculate(cheapest(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.Hotels)
	assert.Equal(t, 160.0, breakdown.PerDay)
}

func TestCalculateEmptyTierCostsNothing(t *testing.T) {
	breakdown, err := Calculate(Tiers{Food: "mid"}, 10)
	require.NoError(t, err)
	assert.Equal(t, 800.0, breakdown.Total)
	assert.Equal(t, 80.0, breakdown.PerDay)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(Tiers{Hotels: "capsule"}, 10)
	var validation *trip.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "hotels", validation.Field)
	assert.Equal(t, ConstraintKnownTier, validation.Constraint)

	_, err = Calculate(cheapest(), 0)
	assert.True(t, trip.IsValidation(err))
}

func TestCalculateIsDeterministic(t *testing.T) {
	first, err := Calculate(cheapest(), 9)
	require.NoError(t, err)
	second, err := Calculate(cheapest(), 9)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWithDefaultsAndMerge(t *testing.T) {
	assert.Equal(t, cheapest(), Tiers{}.WithDefaults())

	merged := cheapest().Merge(Tiers{Hotels: "mid", Shopping: "splurge"})
	assert.Equal(t, "mid", merged.Hotels)
	assert.Equal(t, "splurge", merged.Shopping)
	assert.Equal(t, "economy", merged.Flight)
}

func TestCatalogDisplayNames(t *testing.T) {
	specs := Catalog()
	require.Len(t, specs, 5)
	assert.Equal(t, CategoryFlight, specs[0].Category)
	assert.Equal(t, "Chūkansō", specs[0].Tiers[0].Name)
	assert.Equal(t, "Ginza", specs[4].Tiers[2].Name)

	specs[0].Tiers[0].Price = 1
	price, ok := Price(CategoryFlight, "economy")
	require.True(t, ok)
	assert.Equal(t, 1100.0, price)
}
