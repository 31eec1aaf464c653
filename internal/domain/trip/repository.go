package trip

import "context"

// Store is the persistence collaborator. Get methods for per-user records
// (availability, budget, vote) return nil without error when the record is absent.
// Upserts with a zero value delete the record and return nil.
type Store interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	UpsertUser(ctx context.Context, user *User) error
	UpdateUserAvatar(ctx context.Context, userID string, avatarURL *string) (*User, error)

	ListAvailability(ctx context.Context) ([]Availability, error)
	GetAvailability(ctx context.Context, userID string) (*Availability, error)
	UpsertAvailability(ctx context.Context, availability *Availability) (*Availability, error)

	ListCities(ctx context.Context) ([]City, error)
	GetCity(ctx context.Context, cityID string) (*City, error)
	InsertCity(ctx context.Context, city *City) (*City, error)

	ListUserCityDays(ctx context.Context) ([]UserCityDays, error)
	UpsertUserCityDays(ctx context.Context, userID, cityID string, days int) (*UserCityDays, error)

	ListAttractions(ctx context.Context) ([]Attraction, error)
	GetAttraction(ctx context.Context, attractionID string) (*Attraction, error)
	InsertAttraction(ctx context.Context, attraction *Attraction) (*Attraction, error)

	ListVotes(ctx context.Context) ([]Vote, error)
	GetVote(ctx context.Context, userID, attractionID string) (*Vote, error)
	UpsertVote(ctx context.Context, userID, attractionID string, value int) (*Vote, error)

	ListUserBudgets(ctx context.Context) ([]UserBudget, error)
	GetUserBudget(ctx context.Context, userID string) (*UserBudget, error)
	UpsertUserBudget(ctx context.Context, budget *UserBudget) (*UserBudget, error)

	IsSeeded(ctx context.Context, key string) (bool, error)
	MarkSeeded(ctx context.Context, key string) error
}

// Mode names the adapter behind a Store.
type Mode string

const (
	ModePostgres Mode = "postgres"
	ModeLocal    Mode = "local"
)
