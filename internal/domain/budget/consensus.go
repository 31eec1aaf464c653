package budget

import (
	"trip-planner-go/internal/domain/trip"
)

type ConsensusStatus string

const (
	ConsensusFound            ConsensusStatus = "found"
	ConsensusInsufficientData ConsensusStatus = "insufficient_data"
)

type TierCount struct {
	Tier  string `json:"tier"`
	Count int    `json:"count"`
}

type CategoryConsensus struct {
	Category Category    `json:"category"`
	Winner   string      `json:"winner"`
	Counts   []TierCount `json:"counts"`
}

type ConsensusResult struct {
	Status       ConsensusStatus
	Members      int
	Categories   []CategoryConsensus
	Tiers        Tiers
	Breakdown    Breakdown
	AverageTotal float64
}

// Consensus picks the most chosen tier per category across saved budgets.
// Unset categories count as the default tier; ties go to the cheaper tier.
// Stored tiers the catalog does not know are not counted.
func Consensus(budgets []trip.UserBudget, days int) (ConsensusResult, error) {
	if days < 1 {
		return ConsensusResult{}, trip.NewValidationError("days", "positive_days", "days must be at least 1")
	}
	if len(budgets) == 0 {
		return ConsensusResult{Status: ConsensusInsufficientData, Categories: []CategoryConsensus{}}, nil
	}

	members := make([]Tiers, 0, len(budgets))
	for _, record := range budgets {
		members = append(members, TiersFromRecord(record).WithDefaults())
	}

	result := ConsensusResult{
		Status:     ConsensusFound,
		Members:    len(members),
		Categories: make([]CategoryConsensus, 0, len(catalog)),
	}
	for _, entry := range catalog {
		counts := make([]TierCount, len(entry.Tiers))
		for i, tier := range entry.Tiers {
			counts[i].Tier = tier.Key
		}
		for _, member := range members {
			for i := range counts {
				if counts[i].Tier == member.Get(entry.Category) {
					counts[i].Count++
				}
			}
		}

		winner := entry.Default
		best := 0
		for _, count := range counts {
			if count.Count > best {
				best = count.Count
				winner = count.Tier
			}
		}

		result.Tiers.Set(entry.Category, winner)
		result.Categories = append(result.Categories, CategoryConsensus{
			Category: entry.Category,
			Winner:   winner,
			Counts:   counts,
		})
	}

	breakdown, err := Calculate(result.Tiers, days)
	if err != nil {
		return ConsensusResult{}, err
	}
	result.Breakdown = breakdown

	var sum float64
	priced := 0
	for _, member := range members {
		memberBreakdown, err := Calculate(member, days)
		if err != nil {
			continue
		}
		sum += memberBreakdown.Total
		priced++
	}
	if priced > 0 {
		result.AverageTotal = sum / float64(priced)
	}
	return result, nil
}
