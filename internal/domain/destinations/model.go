package destinations

import "trip-planner-go/internal/domain/trip"

const DefaultCityImage = "https://images.unsplash.com/photo-1480796927426-f609979314bd?w=800&q=80"

type AddCityInput struct {
	Name         string
	JapaneseName *string
	Description  string
	ImageURL     string
	Highlights   []string
}

type AllocationStatus string

const (
	AllocationUnder AllocationStatus = "under"
	AllocationExact AllocationStatus = "exact"
	AllocationOver  AllocationStatus = "over"
)

// Allocation is one traveler's day split across cities compared to the trip
// length they asked for. Over-allocation is reported, not rejected.
type Allocation struct {
	Items      []trip.UserCityDays
	Allocated  int
	TripLength int
	Status     AllocationStatus
}

func allocationStatus(allocated, tripLength int) AllocationStatus {
	switch {
	case allocated > tripLength:
		return AllocationOver
	case allocated == tripLength:
		return AllocationExact
	default:
		return AllocationUnder
	}
}
