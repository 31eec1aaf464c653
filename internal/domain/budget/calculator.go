package budget

import (
	"trip-planner-go/internal/domain/trip"
)

type Category string

const (
	CategoryFlight     Category = "flight"
	CategoryHotels     Category = "hotels"
	CategoryFood       Category = "food"
	CategoryActivities Category = "activities"
	CategoryShopping   Category = "shopping"
)

// Scaling says how a category price grows with the trip length.
type Scaling string

const (
	ScalingFlat     Scaling = "flat"
	ScalingPerNight Scaling = "per_night"
	ScalingPerDay   Scaling = "per_day"
)

const ConstraintKnownTier = "known_tier"

type Tiers struct {
	Flight     string `json:"flight"`
	Hotels     string `json:"hotels"`
	Food       string `json:"food"`
	Activities string `json:"activities"`
	Shopping   string `json:"shopping"`
}

func (t Tiers) Get(category Category) string {
	switch category {
	case CategoryFlight:
		return t.Flight
	case CategoryHotels:
		return t.Hotels
	case CategoryFood:
		return t.Food
	case CategoryActivities:
		return t.Activities
	case CategoryShopping:
		return t.Shopping
	}
	return ""
}

func (t *Tiers) Set(category Category, tier string) {
	switch category {
	case CategoryFlight:
		t.Flight = tier
	case CategoryHotels:
		t.Hotels = tier
	case CategoryFood:
		t.Food = tier
	case CategoryActivities:
		t.Activities = tier
	case CategoryShopping:
		t.Shopping = tier
	}
}

// Merge returns t with every non-empty category of update applied.
func (t Tiers) Merge(update Tiers) Tiers {
	merged := t
	for _, entry := range catalog {
		if tier := update.Get(entry.Category); tier != "" {
			merged.Set(entry.Category, tier)
		}
	}
	return merged
}

func (t Tiers) WithDefaults() Tiers {
	filled := t
	for _, entry := range catalog {
		if filled.Get(entry.Category) == "" {
			filled.Set(entry.Category, entry.Default)
		}
	}
	return filled
}

// Validate rejects tier keys a category does not offer. Empty keys are allowed.
func (t Tiers) Validate() error {
	for _, entry := range catalog {
		tier := t.Get(entry.Category)
		if tier == "" {
			continue
		}
		if _, ok := entry.price(tier); !ok {
			return trip.NewValidationError(string(entry.Category), ConstraintKnownTier, "unknown "+string(entry.Category)+" tier \""+tier+"\"")
		}
	}
	return nil
}

func TiersFromRecord(record trip.UserBudget) Tiers {
	return Tiers{
		Flight:     record.FlightTier,
		Hotels:     record.HotelsTier,
		Food:       record.FoodTier,
		Activities: record.ActivitiesTier,
		Shopping:   record.ShoppingTier,
	}
}

func (t Tiers) Record(userID string) trip.UserBudget {
	return trip.UserBudget{
		UserID:         userID,
		FlightTier:     t.Flight,
		HotelsTier:     t.Hotels,
		FoodTier:       t.Food,
		ActivitiesTier: t.Activities,
		ShoppingTier:   t.Shopping,
	}
}

type Breakdown struct {
	Days       int     `json:"days"`
	Flight     float64 `json:"flight"`
	Hotels     float64 `json:"hotels"`
	Food       float64 `json:"food"`
	Activities float64 `json:"activities"`
	Shopping   float64 `json:"shopping"`
	Total      float64 `json:"total"`
	PerDay     float64 `json:"per_day"`
}

// Calculate prices the tiers for a trip of days days. Hotels are paid per
// night (days-1), food and activities per day, flight and shopping once.
// PerDay leaves the flight out. An empty tier costs nothing.
func Calculate(tiers Tiers, days int) (Breakdown, error) {
	if days < 1 {
		return Breakdown{}, trip.NewValidationError("days", "positive_days", "days must be at least 1")
	}
	if err := tiers.Validate(); err != nil {
		return Breakdown{}, err
	}

	nights := days - 1
	breakdown := Breakdown{Days: days}
	for _, entry := range catalog {
		price, _ := entry.price(tiers.Get(entry.Category))
		var cost float64
		switch entry.Scaling {
		case ScalingPerNight:
			cost = price * float64(nights)
		case ScalingPerDay:
			cost = price * float64(days)
		default:
			cost = price
		}

		switch entry.Category {
		case CategoryFlight:
			breakdown.Flight = cost
		case CategoryHotels:
			breakdown.Hotels = cost
		case CategoryFood:
			breakdown.Food = cost
		case CategoryActivities:
			breakdown.Activities = cost
		case CategoryShopping:
			breakdown.Shopping = cost
		}
	}

	breakdown.Total = breakdown.Flight + breakdown.Hotels + breakdown.Food + breakdown.Activities + breakdown.Shopping
	breakdown.PerDay = (breakdown.Total - breakdown.Flight) / float64(days)
	return breakdown, nil
}
