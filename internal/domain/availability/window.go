package availability

import (
	"time"

	"trip-planner-go/internal/domain/trip"
)

// Window is the inclusive reporting window the calendar is drawn for.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	start = trip.DayOf(start)
	end = trip.DayOf(end)
	if start.After(end) {
		return Window{}, trip.NewValidationError("window", ConstraintReportWindowOrder, "window start must not be after window end")
	}
	return Window{Start: start, End: end}, nil
}

func ParseWindow(start, end string) (Window, error) {
	from, err := ParseDate("from", start)
	if err != nil {
		return Window{}, err
	}
	to, err := ParseDate("to", end)
	if err != nil {
		return Window{}, err
	}
	if from == nil || to == nil {
		return Window{}, trip.NewValidationError("window", ConstraintDateFormat, "window bounds are required")
	}
	return NewWindow(*from, *to)
}

func (w Window) Contains(day time.Time) bool {
	day = trip.DayOf(day)
	return !day.Before(w.Start) && !day.After(w.End)
}

func (w Window) Len() int {
	return daysInclusive(w.Start, w.End)
}

func (w Window) Days() []time.Time {
	days := make([]time.Time, 0, w.Len())
	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

type Month struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Months splits the window on calendar month boundaries.
func (w Window) Months() []Month {
	var months []Month
	for start := w.Start; !start.After(w.End); {
		last := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		if last.After(w.End) {
			last = w.End
		}
		months = append(months, Month{
			Name:  start.Format("January 2006"),
			Start: start,
			End:   last,
		})
		start = last.AddDate(0, 0, 1)
	}
	return months
}

func (w Window) StartString() string {
	return w.Start.Format(trip.DateLayout)
}

func (w Window) EndString() string {
	return w.End.Format(trip.DateLayout)
}

type Policy struct {
	Window        Window
	MinLength     int
	MaxLength     int
	DefaultLength int
}
