package trip

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

type User struct {
	ID            string                      `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"not null;uniqueIndex" json:"name"`
	Initials      string                      `gorm:"size:4;not null" json:"initials"`
	Color         string                      `gorm:"size:16;not null" json:"color"`
	AvatarURL     *string                     `gorm:"type:text" json:"avatar_url,omitempty"`
	AvatarOptions datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"avatar_options,omitempty"`
	Position      int                         `gorm:"not null;default:0" json:"position"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

type Availability struct {
	UserID              string     `gorm:"primaryKey" json:"user_id"`
	AvailableStart      *time.Time `gorm:"type:date" json:"available_start,omitempty"`
	AvailableEnd        *time.Time `gorm:"type:date" json:"available_end,omitempty"`
	PreferredStart      *time.Time `gorm:"type:date" json:"preferred_start,omitempty"`
	PreferredEnd        *time.Time `gorm:"type:date" json:"preferred_end,omitempty"`
	PreferredLengthDays *int       `json:"preferred_length_days,omitempty"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Availability) TableName() string {
	return "availability"
}

func (a Availability) HasPreferred() bool {
	return a.PreferredStart != nil && a.PreferredEnd != nil
}

func (a Availability) HasAvailable() bool {
	return a.AvailableStart != nil && a.AvailableEnd != nil
}

type City struct {
	ID           string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string                      `gorm:"not null" json:"name"`
	JapaneseName *string                     `gorm:"type:text" json:"japanese_name,omitempty"`
	Description  string                      `gorm:"not null" json:"description"`
	ImageURL     string                      `gorm:"type:text" json:"image_url"`
	Highlights   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"highlights"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

type UserCityDays struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CityID    string    `gorm:"type:uuid;primaryKey" json:"city_id"`
	Days      int       `gorm:"not null" json:"days"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserCityDays) TableName() string {
	return "user_city_days"
}

type Attraction struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CityID       *string   `gorm:"type:uuid;index" json:"city_id,omitempty"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"not null" json:"description"`
	TimeEstimate *string   `gorm:"type:text" json:"time_estimate,omitempty"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	CreatedBy    *string   `gorm:"type:text" json:"created_by,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Vote struct {
	UserID       string    `gorm:"primaryKey" json:"user_id"`
	AttractionID string    `gorm:"type:uuid;primaryKey" json:"attraction_id"`
	Value        int       `gorm:"column:vote;not null" json:"vote"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vote) TableName() string {
	return "attraction_votes"
}

type UserBudget struct {
	UserID         string    `gorm:"primaryKey" json:"user_id"`
	FlightTier     string    `gorm:"type:varchar(16)" json:"flight_tier"`
	HotelsTier     string    `gorm:"type:varchar(16)" json:"hotels_tier"`
	FoodTier       string    `gorm:"type:varchar(16)" json:"food_tier"`
	ActivitiesTier string    `gorm:"type:varchar(16)" json:"activities_tier"`
	ShoppingTier   string    `gorm:"type:varchar(16)" json:"shopping_tier"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserBudget) TableName() string {
	return "user_budgets"
}

type SeedMarker struct {
	Key      string    `gorm:"primaryKey" json:"key"`
	SeededAt time.Time `gorm:"not null" json:"seeded_at"`
}

func (SeedMarker) TableName() string {
	return "seed_markers"
}

func FormatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(DateLayout)
	return &formatted
}

func DayOf(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
