package dashboard

import (
	"context"
	"errors"

	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/trip"
)

const DefaultTopN = 5

type Service struct {
	store  trip.Store
	policy availability.Policy
	topN   int
}

func NewService(store trip.Store, policy availability.Policy, topN int) *Service {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Service{store: store, policy: policy, topN: topN}
}

// Build computes the whole dashboard from one snapshot. Failed reads degrade
// to empty collections; the returned error joins those failures and the
// dashboard is still usable.
func (s *Service) Build(ctx context.Context) (Dashboard, error) {
	snapshot, notice := s.Snapshot(ctx)

	result := Dashboard{
		Stats:           BuildStats(snapshot),
		BestDates:       availability.ComputeOverlap(snapshot.Availability, snapshot.Users, s.policy.Window),
		Calendar:        availability.BuildCalendar(s.policy.Window, snapshot.Availability, snapshot.Users),
		Timeline:        availability.BuildTimeline(s.policy.Window, snapshot.Availability, snapshot.Users),
		TopDestinations: destinations.TopDestinations(destinations.RankDestinations(snapshot.Cities, snapshot.CityDays), s.topN),
		TopAttractions:  activities.TopAttractions(activities.RankAttractions(snapshot.Attractions, snapshot.Votes), s.topN),
		Team:            TeamStatus(snapshot),
		Degraded:        notice != nil,
	}

	consensus, err := budget.Consensus(snapshot.Budgets, s.policy.DefaultLength)
	if err != nil {
		return result, errors.Join(notice, err)
	}
	result.Budget = consensus
	return result, notice
}

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snapshot Snapshot
		failures []error
	)

	snapshot.Users = read(ctx, "list users", s.store.ListUsers, &failures)
	snapshot.Availability = read(ctx, "list availability", s.store.ListAvailability, &failures)
	snapshot.Cities = read(ctx, "list cities", s.store.ListCities, &failures)
	snapshot.CityDays = read(ctx, "list user city days", s.store.ListUserCityDays, &failures)
	snapshot.Attractions = read(ctx, "list attractions", s.store.ListAttractions, &failures)
	snapshot.Votes = read(ctx, "list votes", s.store.ListVotes, &failures)
	snapshot.Budgets = read(ctx, "list user budgets", s.store.ListUserBudgets, &failures)

	return snapshot, errors.Join(failures...)
}

func read[T any](ctx context.Context, op string, list func(context.Context) ([]T, error), failures *[]error) []T {
	items, err := list(ctx)
	if err != nil {
		*failures = append(*failures, trip.WrapPersistence(op, err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func BuildStats(snapshot Snapshot) Stats {
	ready := 0
	for _, record := range snapshot.Availability {
		if record.HasPreferred() {
			ready++
		}
	}
	return Stats{
		ReadyTravelers: ready,
		Travelers:      len(snapshot.Users),
		Destinations:   len(snapshot.Cities),
		Attractions:    len(snapshot.Attractions),
	}
}

// TeamStatus reports each roster member's progress: dates first, then city
// days, then at least one vote.
func TeamStatus(snapshot Snapshot) []TeamMember {
	records := make(map[string]trip.Availability, len(snapshot.Availability))
	for _, record := range snapshot.Availability {
		records[record.UserID] = record
	}
	withDays := make(map[string]bool)
	for _, allocation := range snapshot.CityDays {
		if allocation.Days > 0 {
			withDays[allocation.UserID] = true
		}
	}
	withVotes := make(map[string]bool)
	for _, vote := range snapshot.Votes {
		if vote.Value != 0 {
			withVotes[vote.UserID] = true
		}
	}

	team := make([]TeamMember, 0, len(snapshot.Users))
	for _, user := range snapshot.Users {
		member := TeamMember{User: user, Status: StatusNotStarted}
		record, ok := records[user.ID]
		switch {
		case ok && record.PreferredStart != nil:
			switch {
			case withDays[user.ID] && withVotes[user.ID]:
				member.Status = StatusAllSet
				member.Ready = true
			case withDays[user.ID]:
				member.Status = StatusNeedsVote
			default:
				member.Status = StatusNeedsDestinations
			}
		case ok:
			member.Status = StatusSettingDates
		}
		team = append(team, member)
	}
	return team
}
