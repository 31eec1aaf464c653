package activities

import (
	"sort"

	"trip-planner-go/internal/domain/trip"
)

type AttractionRanking struct {
	Attraction trip.Attraction
	Score      int
	Upvotes    int
	Downvotes  int
	Upvoters   []string
	Downvoters []string
}

func (r AttractionRanking) VoteCount() int {
	return r.Upvotes + r.Downvotes
}

// RankAttractions scores every attraction as the sum of its votes and orders by
// score, then name, then id. Votes for unknown attractions are ignored.
func RankAttractions(attractions []trip.Attraction, votes []trip.Vote) []AttractionRanking {
	index := make(map[string]int, len(attractions))
	result := make([]AttractionRanking, 0, len(attractions))
	for _, attraction := range attractions {
		if _, ok := index[attraction.ID]; ok {
			continue
		}
		index[attraction.ID] = len(result)
		result = append(result, AttractionRanking{
			Attraction: attraction,
			Upvoters:   []string{},
			Downvoters: []string{},
		})
	}

	for _, vote := range votes {
		i, ok := index[vote.AttractionID]
		if !ok {
			continue
		}
		ranking := &result[i]
		ranking.Score += vote.Value
		switch {
		case vote.Value > 0:
			ranking.Upvotes++
			ranking.Upvoters = append(ranking.Upvoters, vote.UserID)
		case vote.Value < 0:
			ranking.Downvotes++
			ranking.Downvoters = append(ranking.Downvoters, vote.UserID)
		}
	}

	compare := trip.NameOrder()
	for i := range result {
		sort.Strings(result[i].Upvoters)
		sort.Strings(result[i].Downvoters)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if byName := compare(result[i].Attraction.Name, result[j].Attraction.Name); byName != 0 {
			return byName < 0
		}
		return result[i].Attraction.ID < result[j].Attraction.ID
	})
	return result
}

// TopAttractions keeps the first n ranked attractions that received any vote.
func TopAttractions(rankings []AttractionRanking, n int) []AttractionRanking {
	if n <= 0 {
		return []AttractionRanking{}
	}
	top := make([]AttractionRanking, 0, n)
	for _, ranking := range rankings {
		if len(top) >= n {
			break
		}
		if ranking.VoteCount() == 0 {
			continue
		}
		top = append(top, ranking)
	}
	return top
}

// FilterByCity keeps rankings for one city. An empty city id keeps the general
// attractions that belong to no city.
func FilterByCity(rankings []AttractionRanking, cityID string) []AttractionRanking {
	filtered := make([]AttractionRanking, 0, len(rankings))
	for _, ranking := range rankings {
		attractionCity := ""
		if ranking.Attraction.CityID != nil {
			attractionCity = *ranking.Attraction.CityID
		}
		if attractionCity == cityID {
			filtered = append(filtered, ranking)
		}
	}
	return filtered
}
