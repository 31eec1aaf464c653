package availability

import (
	"context"

	"trip-planner-go/internal/domain/trip"
)

type SaveInput struct {
	AvailableStart      string
	AvailableEnd        string
	PreferredStart      string
	PreferredEnd        string
	PreferredLengthDays *int
}

type Service struct {
	store  trip.Store
	policy Policy
}

func NewService(store trip.Store, policy Policy) *Service {
	return &Service{store: store, policy: policy}
}

func (s *Service) Policy() Policy {
	return s.policy
}

func (s *Service) Get(ctx context.Context, userID string) (*trip.Availability, error) {
	record, err := s.store.GetAvailability(ctx, userID)
	if err != nil {
		return nil, trip.WrapPersistence("get availability", err)
	}
	return record, nil
}

func (s *Service) Save(ctx context.Context, userID string, input SaveInput) (*trip.Availability, error) {
	interval, err := NewInterval(input.AvailableStart, input.AvailableEnd, input.PreferredStart, input.PreferredEnd, input.PreferredLengthDays)
	if err != nil {
		return nil, err
	}
	if err := interval.Validate(); err != nil {
		return nil, err
	}
	if err := interval.ValidatePolicy(s.policy); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, trip.WrapPersistence("get user", err)
	}

	record := interval.Record(userID)
	saved, err := s.store.UpsertAvailability(ctx, &record)
	if err != nil {
		return nil, trip.WrapPersistence("upsert availability", err)
	}
	return saved, nil
}

// TripLength is the traveler's preferred length, or the group default when
// none is stored.
func (s *Service) TripLength(ctx context.Context, userID string) (int, error) {
	record, err := s.store.GetAvailability(ctx, userID)
	if err != nil {
		return s.policy.DefaultLength, trip.WrapPersistence("get availability", err)
	}
	if record == nil || record.PreferredLengthDays == nil || *record.PreferredLengthDays <= 0 {
		return s.policy.DefaultLength, nil
	}
	return *record.PreferredLengthDays, nil
}

type Snapshot struct {
	Records []trip.Availability
	Roster  []trip.User
}

// Snapshot reads availability and roster. A failed read degrades to an empty
// collection; the first failure is returned next to the partial snapshot.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var notice error

	records, err := s.store.ListAvailability(ctx)
	if err != nil {
		notice = trip.WrapPersistence("list availability", err)
		records = []trip.Availability{}
	}

	roster, err := s.store.ListUsers(ctx)
	if err != nil {
		if notice == nil {
			notice = trip.WrapPersistence("list users", err)
		}
		roster = []trip.User{}
	}

	return Snapshot{Records: records, Roster: roster}, notice
}

func (s *Service) Overlap(ctx context.Context) (OverlapResult, error) {
	snapshot, notice := s.Snapshot(ctx)
	return ComputeOverlap(snapshot.Records, snapshot.Roster, s.policy.Window), notice
}

func (s *Service) Calendar(ctx context.Context, window *Window) ([]CalendarMonth, error) {
	target := s.policy.Window
	if window != nil {
		target = *window
	}
	snapshot, notice := s.Snapshot(ctx)
	return BuildCalendar(target, snapshot.Records, snapshot.Roster), notice
}

func (s *Service) ClassifyDay(ctx context.Context, date string) (DayClass, error) {
	day, err := ParseDate("date", date)
	if err != nil {
		return DayClass{}, err
	}
	if day == nil {
		return DayClass{}, trip.NewValidationError("date", ConstraintDateFormat, "date is required")
	}
	snapshot, notice := s.Snapshot(ctx)
	return ClassifyDay(*day, snapshot.Records, snapshot.Roster), notice
}
