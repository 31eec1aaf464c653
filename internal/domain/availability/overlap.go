package availability

import (
	"sort"
	"time"

	"trip-planner-go/internal/domain/trip"
)

type OverlapStatus string

const (
	OverlapFound            OverlapStatus = "found"
	OverlapNone             OverlapStatus = "no_overlap"
	OverlapInsufficientData OverlapStatus = "insufficient_data"
)

const unknownTraveler = "Unknown"

type OverlapResult struct {
	Status    OverlapStatus
	Start     time.Time
	End       time.Time
	Days      int
	Travelers []string
	InWindow  bool
}

// ComputeOverlap intersects the preferred ranges of every traveler that has
// both preferred bounds set. The roster names the contributing travelers and
// the window reports whether the common range falls inside it.
func ComputeOverlap(records []trip.Availability, roster []trip.User, window Window) OverlapResult {
	var (
		start, end time.Time
		travelers  []string
	)

	names := rosterNames(roster)
	for _, record := range orderByRoster(records, roster) {
		interval := FromRecord(record)
		if !interval.Preferred.Complete() {
			continue
		}
		if len(travelers) == 0 || interval.Preferred.Start.After(start) {
			start = *interval.Preferred.Start
		}
		if len(travelers) == 0 || interval.Preferred.End.Before(end) {
			end = *interval.Preferred.End
		}
		travelers = append(travelers, nameFor(names, record.UserID))
	}

	if len(travelers) < 2 {
		return OverlapResult{Status: OverlapInsufficientData, Travelers: travelers}
	}
	if start.After(end) {
		return OverlapResult{Status: OverlapNone, Travelers: travelers}
	}

	return OverlapResult{
		Status:    OverlapFound,
		Start:     start,
		End:       end,
		Days:      daysInclusive(start, end),
		Travelers: travelers,
		InWindow:  window.Contains(start) && window.Contains(end),
	}
}

type DayTier string

const (
	TierOverlap   DayTier = "overlap"
	TierPreferred DayTier = "preferred"
	TierAvailable DayTier = "available"
	TierNone      DayTier = ""
)

type DayClass struct {
	Date           time.Time
	Tier           DayTier
	PreferredUsers []string
	AvailableUsers []string
}

// Users is the list shown for the day: preferred travelers when any, else
// available ones.
func (d DayClass) Users() []string {
	if len(d.PreferredUsers) > 0 {
		return d.PreferredUsers
	}
	return d.AvailableUsers
}

// OverlapThreshold is ceil(total/2): exactly half the roster qualifies.
func OverlapThreshold(total int) int {
	return (total + 1) / 2
}

func ClassifyDay(day time.Time, records []trip.Availability, roster []trip.User) DayClass {
	return classifyOrdered(trip.DayOf(day), orderByRoster(records, roster), rosterNames(roster), len(roster))
}

func classifyOrdered(day time.Time, ordered []trip.Availability, names map[string]string, total int) DayClass {
	result := DayClass{
		Date:           day,
		PreferredUsers: []string{},
		AvailableUsers: []string{},
	}

	for _, record := range ordered {
		membership := FromRecord(record).ContainsDay(day)
		name := nameFor(names, record.UserID)
		if membership.InPreferred {
			result.PreferredUsers = append(result.PreferredUsers, name)
		}
		if membership.InAvailable {
			result.AvailableUsers = append(result.AvailableUsers, name)
		}
	}

	preferred := len(result.PreferredUsers)
	switch {
	case preferred > 0 && preferred >= OverlapThreshold(total):
		result.Tier = TierOverlap
	case preferred > 0:
		result.Tier = TierPreferred
	case len(result.AvailableUsers) > 0:
		result.Tier = TierAvailable
	default:
		result.Tier = TierNone
	}
	return result
}

type CalendarMonth struct {
	Name string
	Days []DayClass
}

func BuildCalendar(window Window, records []trip.Availability, roster []trip.User) []CalendarMonth {
	ordered := orderByRoster(records, roster)
	names := rosterNames(roster)

	months := window.Months()
	calendar := make([]CalendarMonth, 0, len(months))
	for _, month := range months {
		days := make([]DayClass, 0, daysInclusive(month.Start, month.End))
		for day := month.Start; !day.After(month.End); day = day.AddDate(0, 0, 1) {
			days = append(days, classifyOrdered(day, ordered, names, len(roster)))
		}
		calendar = append(calendar, CalendarMonth{Name: month.Name, Days: days})
	}
	return calendar
}

type TimelineRow struct {
	User  trip.User
	Cells []DayTier
}

// BuildTimeline renders one row per roster member. A cell is preferred when the
// day is in the member's preferred range, else available, else empty.
func BuildTimeline(window Window, records []trip.Availability, roster []trip.User) []TimelineRow {
	byUser := make(map[string]Interval, len(records))
	for _, record := range records {
		byUser[record.UserID] = FromRecord(record)
	}

	days := window.Days()
	rows := make([]TimelineRow, 0, len(roster))
	for _, user := range roster {
		cells := make([]DayTier, len(days))
		interval, ok := byUser[user.ID]
		for i, day := range days {
			if !ok {
				continue
			}
			membership := interval.ContainsDay(day)
			switch {
			case membership.InPreferred:
				cells[i] = TierPreferred
			case membership.InAvailable:
				cells[i] = TierAvailable
			}
		}
		rows = append(rows, TimelineRow{User: user, Cells: cells})
	}
	return rows
}

func rosterNames(roster []trip.User) map[string]string {
	names := make(map[string]string, len(roster))
	for _, user := range roster {
		names[user.ID] = user.Name
	}
	return names
}

func nameFor(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok {
		return name
	}
	return unknownTraveler
}

// orderByRoster returns a copy of records in roster order; records of users
// outside the roster come last, ordered by user id.
func orderByRoster(records []trip.Availability, roster []trip.User) []trip.Availability {
	position := make(map[string]int, len(roster))
	for i, user := range roster {
		position[user.ID] = i
	}

	ordered := make([]trip.Availability, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, iKnown := position[ordered[i].UserID]
		pj, jKnown := position[ordered[j].UserID]
		switch {
		case iKnown && jKnown:
			return pi < pj
		case iKnown != jKnown:
			return iKnown
		default:
			return ordered[i].UserID < ordered[j].UserID
		}
	})
	return ordered
}
