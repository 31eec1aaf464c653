package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-go/internal/domain/trip"
)

func TestConsensusMostChosenTier(t *testing.T) {
	budgets := []trip.UserBudget{
		{UserID: "julian", HotelsTier: "mid", FoodTier: "premium"},
		{UserID: "dave", HotelsTier: "mid", FoodTier: "budget"},
		{UserID: "jason", HotelsTier: "luxury", ShoppingTier: "splurge"},
	}

	result, err := Consensus(budgets, 14)
	require.NoError(t, err)

	assert.Equal(t, ConsensusFound, result.Status)
	assert.Equal(t, 3, result.Members)
	assert.Equal(t, "mid", result.Tiers.Hotels)
	assert.Equal(t, "budget", result.Tiers.Food)
	assert.Equal(t, "minimal", result.Tiers.Shopping)
	assert.Equal(t, "economy", result.Tiers.Flight)

	hotels := result.Categories[1]
	assert.Equal(t, CategoryHotels, hotels.Category)
	assert.Equal(t, []TierCount{{Tier: "budget", Count: 0}, {Tier: "mid", Count: 2}, {Tier: "luxury", Count: 1}}, hotels.Counts)

	expected, err := Calculate(result.Tiers, 14)
	require.NoError(t, err)
	assert.Equal(t, expected, result.Breakdown)
	assert.Greater(t, result.AverageTotal, 0.0)
}

func TestConsensusTieGoesToCheaperTier(t *testing.T) {
	budgets := []trip.UserBudget{
		{UserID: "julian", FlightTier: "business"},
		{UserID: "dave", FlightTier: "economy"},
	}

	result, err := Consensus(budgets, 14)
	require.NoError(t, err)
	assert.Equal(t, "economy", result.Tiers.Flight)
}

func TestConsensusWithoutBudgets(t *testing.T) {
	result, err := Consensus(nil, 14)
	require.NoError(t, err)
	assert.Equal(t, ConsensusInsufficientData, result.Status)
	assert.Empty(t, result.Categories)
}
