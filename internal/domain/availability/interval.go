package availability

import (
	"strings"
	"time"

	"trip-planner-go/internal/domain/trip"
)

const (
	ConstraintDateFormat        = "date_format"
	ConstraintAvailableOrder    = "available_start_not_after_end"
	ConstraintPreferredOrder    = "preferred_start_not_after_end"
	ConstraintPreferredInside   = "preferred_within_available"
	ConstraintInsidePlanWindow  = "within_planning_window"
	ConstraintTripLengthBounds  = "trip_length_bounds"
	ConstraintReportWindowOrder = "window_start_not_after_end"
)

// Range is an inclusive day range. It only covers days when both bounds are set.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) Complete() bool {
	return r.Start != nil && r.End != nil
}

func (r Range) Contains(day time.Time) bool {
	if !r.Complete() {
		return false
	}
	day = trip.DayOf(day)
	return !day.Before(*r.Start) && !day.After(*r.End)
}

func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	return daysInclusive(*r.Start, *r.End)
}

type Interval struct {
	Available  Range
	Preferred  Range
	LengthDays *int
}

type DayMembership struct {
	InPreferred bool
	InAvailable bool
}

// NewInterval parses optional YYYY-MM-DD values; an empty string means the
// bound is not set.
func NewInterval(availableStart, availableEnd, preferredStart, preferredEnd string, lengthDays *int) (Interval, error) {
	var (
		interval Interval
		err      error
	)

	if interval.Available.Start, err = ParseDate("available_start", availableStart); err != nil {
		return Interval{}, err
	}
	if interval.Available.End, err = ParseDate("available_end", availableEnd); err != nil {
		return Interval{}, err
	}
	if interval.Preferred.Start, err = ParseDate("preferred_start", preferredStart); err != nil {
		return Interval{}, err
	}
	if interval.Preferred.End, err = ParseDate("preferred_end", preferredEnd); err != nil {
		return Interval{}, err
	}
	if lengthDays != nil {
		value := *lengthDays
		interval.LengthDays = &value
	}

	return interval, nil
}

func ParseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(trip.DateLayout, value)
	if err != nil {
		return nil, trip.NewValidationError(field, ConstraintDateFormat, "must be a YYYY-MM-DD date")
	}
	return &parsed, nil
}

func FromRecord(record trip.Availability) Interval {
	return Interval{
		Available:  Range{Start: dayPtr(record.AvailableStart), End: dayPtr(record.AvailableEnd)},
		Preferred:  Range{Start: dayPtr(record.PreferredStart), End: dayPtr(record.PreferredEnd)},
		LengthDays: record.PreferredLengthDays,
	}
}

func (i Interval) Record(userID string) trip.Availability {
	return trip.Availability{
		UserID:              userID,
		AvailableStart:      i.Available.Start,
		AvailableEnd:        i.Available.End,
		PreferredStart:      i.Preferred.Start,
		PreferredEnd:        i.Preferred.End,
		PreferredLengthDays: i.LengthDays,
	}
}

func (i Interval) Validate() error {
	if i.Available.Complete() && i.Available.Start.After(*i.Available.End) {
		return trip.NewValidationError("available_start", ConstraintAvailableOrder, "available start date must not be after available end date")
	}
	if i.Preferred.Complete() && i.Preferred.Start.After(*i.Preferred.End) {
		return trip.NewValidationError("preferred_start", ConstraintPreferredOrder, "preferred start date must not be after preferred end date")
	}
	if i.Preferred.Complete() && i.Available.Complete() {
		if i.Preferred.Start.Before(*i.Available.Start) {
			return trip.NewValidationError("preferred_start", ConstraintPreferredInside, "preferred dates must be within available dates")
		}
		if i.Preferred.End.After(*i.Available.End) {
			return trip.NewValidationError("preferred_end", ConstraintPreferredInside, "preferred dates must be within available dates")
		}
	}
	return nil
}

// ValidatePolicy checks the planning bounds configured for the group: every
// set date lies inside the planning window and the trip length is in range.
func (i Interval) ValidatePolicy(policy Policy) error {
	bounds := []struct {
		field string
		value *time.Time
	}{
		{"available_start", i.Available.Start},
		{"available_end", i.Available.End},
		{"preferred_start", i.Preferred.Start},
		{"preferred_end", i.Preferred.End},
	}
	for _, bound := range bounds {
		if bound.value != nil && !policy.Window.Contains(*bound.value) {
			return trip.NewValidationError(bound.field, ConstraintInsidePlanWindow, "date must be between "+policy.Window.StartString()+" and "+policy.Window.EndString())
		}
	}

	if i.LengthDays != nil && (*i.LengthDays < policy.MinLength || *i.LengthDays > policy.MaxLength) {
		return trip.NewValidationError("preferred_length_days", ConstraintTripLengthBounds, "trip length is out of range")
	}
	return nil
}

func (i Interval) ContainsDay(day time.Time) DayMembership {
	return DayMembership{
		InPreferred: i.Preferred.Contains(day),
		InAvailable: i.Available.Contains(day),
	}
}

func dayPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	day := trip.DayOf(*value)
	return &day
}

func daysInclusive(from, to time.Time) int {
	from = trip.DayOf(from)
	to = trip.DayOf(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
