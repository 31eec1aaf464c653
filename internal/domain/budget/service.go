package budget

import (
	"context"

	"trip-planner-go/internal/domain/trip"
)

// TripLengthSource resolves how many days a traveler wants to travel.
type TripLengthSource interface {
	TripLength(ctx context.Context, userID string) (int, error)
}

// Estimate is a traveler's tiers priced for their trip length. Saved is false
// when no budget is stored and the defaults are shown.
type Estimate struct {
	Tiers     Tiers
	Breakdown Breakdown
	Saved     bool
}

type Service struct {
	store       trip.Store
	lengths     TripLengthSource
	defaultDays int
}

func NewService(store trip.Store, lengths TripLengthSource, defaultDays int) *Service {
	return &Service{store: store, lengths: lengths, defaultDays: defaultDays}
}

func (s *Service) Mine(ctx context.Context, userID string) (Estimate, error) {
	record, err := s.store.GetUserBudget(ctx, userID)
	if err != nil {
		return Estimate{}, trip.WrapPersistence("get user budget", err)
	}

	estimate := Estimate{Tiers: DefaultTiers()}
	if record != nil {
		estimate.Tiers = TiersFromRecord(*record).WithDefaults()
		estimate.Saved = true
	}
	return s.price(ctx, userID, estimate)
}

// Save applies the non-empty categories of update over the stored tiers, or
// over the defaults when nothing is stored yet.
func (s *Service) Save(ctx context.Context, userID string, update Tiers) (Estimate, error) {
	if err := update.Validate(); err != nil {
		return Estimate{}, err
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return Estimate{}, trip.WrapPersistence("get user", err)
	}

	current := DefaultTiers()
	record, err := s.store.GetUserBudget(ctx, userID)
	if err != nil {
		return Estimate{}, trip.WrapPersistence("get user budget", err)
	}
	if record != nil {
		current = TiersFromRecord(*record).WithDefaults()
	}

	row := current.Merge(update).Record(userID)
	saved, err := s.store.UpsertUserBudget(ctx, &row)
	if err != nil {
		return Estimate{}, trip.WrapPersistence("upsert user budget", err)
	}

	return s.price(ctx, userID, Estimate{Tiers: TiersFromRecord(*saved), Saved: true})
}

// Quote prices arbitrary tiers. Without days the traveler's trip length is
// used.
func (s *Service) Quote(ctx context.Context, userID string, tiers Tiers, days *int) (Breakdown, error) {
	if days != nil {
		return Calculate(tiers, *days)
	}
	length, err := s.lengths.TripLength(ctx, userID)
	if err != nil {
		return Breakdown{}, err
	}
	return Calculate(tiers, length)
}

// Consensus agrees on tiers across saved budgets. A failed read is treated as
// no saved budgets and returned next to the result.
func (s *Service) Consensus(ctx context.Context) (ConsensusResult, error) {
	var notice error
	budgets, err := s.store.ListUserBudgets(ctx)
	if err != nil {
		notice = trip.WrapPersistence("list user budgets", err)
		budgets = []trip.UserBudget{}
	}

	result, err := Consensus(budgets, s.defaultDays)
	if err != nil {
		return ConsensusResult{}, err
	}
	return result, notice
}

func (s *Service) price(ctx context.Context, userID string, estimate Estimate) (Estimate, error) {
	length, err := s.lengths.TripLength(ctx, userID)
	if err != nil {
		return Estimate{}, err
	}
	breakdown, err := Calculate(estimate.Tiers, length)
	if err != nil {
		return Estimate{}, err
	}
	estimate.Breakdown = breakdown
	return estimate, nil
}
