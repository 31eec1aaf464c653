package destinations

import (
	"sort"

	"trip-planner-go/internal/domain/trip"
)

type CityRanking struct {
	City      trip.City
	TotalDays int
	UserCount int
	AvgDays   float64
	UserIDs   []string
}

// RankDestinations orders cities by total allocated days, then by name.
// Allocations with no days or for unknown cities are ignored; cities nobody
// picked stay in the list with zero totals.
func RankDestinations(cities []trip.City, allocations []trip.UserCityDays) []CityRanking {
	byCity := make(map[string]*CityRanking, len(cities))
	rankings := make([]*CityRanking, 0, len(cities))
	for _, city := range cities {
		if _, ok := byCity[city.ID]; ok {
			continue
		}
		ranking := &CityRanking{City: city, UserIDs: []string{}}
		byCity[city.ID] = ranking
		rankings = append(rankings, ranking)
	}

	seen := make(map[string]map[string]struct{}, len(cities))
	for _, allocation := range allocations {
		ranking, ok := byCity[allocation.CityID]
		if !ok || allocation.Days <= 0 {
			continue
		}
		ranking.TotalDays += allocation.Days
		users := seen[allocation.CityID]
		if users == nil {
			users = make(map[string]struct{})
			seen[allocation.CityID] = users
		}
		if _, dup := users[allocation.UserID]; !dup {
			users[allocation.UserID] = struct{}{}
			ranking.UserIDs = append(ranking.UserIDs, allocation.UserID)
		}
	}

	compare := trip.NameOrder()
	result := make([]CityRanking, 0, len(rankings))
	for _, ranking := range rankings {
		ranking.UserCount = len(ranking.UserIDs)
		if ranking.UserCount > 0 {
			ranking.AvgDays = float64(ranking.TotalDays) / float64(ranking.UserCount)
		}
		sort.Strings(ranking.UserIDs)
		result = append(result, *ranking)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalDays != result[j].TotalDays {
			return result[i].TotalDays > result[j].TotalDays
		}
		if byName := compare(result[i].City.Name, result[j].City.Name); byName != 0 {
			return byName < 0
		}
		return result[i].City.ID < result[j].City.ID
	})
	return result
}

// TopDestinations keeps the first n ranked cities that have any days.
func TopDestinations(rankings []CityRanking, n int) []CityRanking {
	if n <= 0 {
		return []CityRanking{}
	}
	top := make([]CityRanking, 0, n)
	for _, ranking := range rankings {
		if len(top) >= n {
			break
		}
		if ranking.TotalDays == 0 {
			continue
		}
		top = append(top, ranking)
	}
	return top
}
