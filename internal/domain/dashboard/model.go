package dashboard

import (
	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/trip"
)

type MemberStatus string

const (
	StatusNotStarted        MemberStatus = "Not started"
	StatusSettingDates      MemberStatus = "Setting dates..."
	StatusNeedsDestinations MemberStatus = "Needs destinations"
	StatusNeedsVote         MemberStatus = "Needs to vote"
	StatusAllSet            MemberStatus = "All set!"
)

type Stats struct {
	ReadyTravelers int
	Travelers      int
	Destinations   int
	Attractions    int
}

type TeamMember struct {
	User   trip.User
	Status MemberStatus
	Ready  bool
}

// Snapshot is every collection the dashboard reads, fetched once per build.
type Snapshot struct {
	Users        []trip.User
	Availability []trip.Availability
	Cities       []trip.City
	CityDays     []trip.UserCityDays
	Attractions  []trip.Attraction
	Votes        []trip.Vote
	Budgets      []trip.UserBudget
}

type Dashboard struct {
	Stats           Stats
	BestDates       availability.OverlapResult
	Calendar        []availability.CalendarMonth
	Timeline        []availability.TimelineRow
	TopDestinations []destinations.CityRanking
	TopAttractions  []activities.AttractionRanking
	Team            []TeamMember
	Budget          budget.ConsensusResult
	Degraded        bool
}
