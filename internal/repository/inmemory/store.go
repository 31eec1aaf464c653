package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	domain "trip-planner-go/internal/domain/trip"
)

const (
	usersKey        = "users"
	availabilityKey = "availability"
	citiesKey       = "cities"
	cityDaysKey     = "user_city_days"
	attractionsKey  = "attractions"
	votesKey        = "votes"
	budgetsKey      = "user_budgets"
)

// CachedStore keeps the List results of the wrapped store for a short TTL.
// Any successful write clears every entry. A read that overlapped a write is
// returned but not cached.
type CachedStore struct {
	domain.Store
	cache *ccache.Cache[any]
	ttl   time.Duration

	mu         sync.RWMutex
	generation uint64
}

func NewCachedStore(store domain.Store, ttl time.Duration, maxSize int64) *CachedStore {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &CachedStore{
		Store: store,
		cache: ccache.New(ccache.Configure[any]().MaxSize(maxSize)),
		ttl:   ttl,
	}
}

func (s *CachedStore) Stop() {
	s.cache.Stop()
}

func (s *CachedStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return cachedList(ctx, s, usersKey, s.Store.ListUsers)
}

func (s *CachedStore) ListAvailability(ctx context.Context) ([]domain.Availability, error) {
	return cachedList(ctx, s, availabilityKey, s.Store.ListAvailability)
}

func (s *CachedStore) ListCities(ctx context.Context) ([]domain.City, error) {
	return cachedList(ctx, s, citiesKey, s.Store.ListCities)
}

func (s *CachedStore) ListUserCityDays(ctx context.Context) ([]domain.UserCityDays, error) {
	return cachedList(ctx, s, cityDaysKey, s.Store.ListUserCityDays)
}

func (s *CachedStore) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	return cachedList(ctx, s, attractionsKey, s.Store.ListAttractions)
}

func (s *CachedStore) ListVotes(ctx context.Context) ([]domain.Vote, error) {
	return cachedList(ctx, s, votesKey, s.Store.ListVotes)
}

func (s *CachedStore) ListUserBudgets(ctx context.Context) ([]domain.UserBudget, error) {
	return cachedList(ctx, s, budgetsKey, s.Store.ListUserBudgets)
}

func (s *CachedStore) UpsertUser(ctx context.Context, user *domain.User) error {
	if err := s.Store.UpsertUser(ctx, user); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *CachedStore) UpdateUserAvatar(ctx context.Context, userID string, avatarURL *string) (*domain.User, error) {
	return invalidating(s, func() (*domain.User, error) {
		return s.Store.UpdateUserAvatar(ctx, userID, avatarURL)
	})
}

func (s *CachedStore) UpsertAvailability(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	return invalidating(s, func() (*domain.Availability, error) {
		return s.Store.UpsertAvailability(ctx, availability)
	})
}

func (s *CachedStore) InsertCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	return invalidating(s, func() (*domain.City, error) {
		return s.Store.InsertCity(ctx, city)
	})
}

func (s *CachedStore) UpsertUserCityDays(ctx context.Context, userID, cityID string, days int) (*domain.UserCityDays, error) {
	return invalidating(s, func() (*domain.UserCityDays, error) {
		return s.Store.UpsertUserCityDays(ctx, userID, cityID, days)
	})
}

func (s *CachedStore) InsertAttraction(ctx context.Context, attraction *domain.Attraction) (*domain.Attraction, error) {
	return invalidating(s, func() (*domain.Attraction, error) {
		return s.Store.InsertAttraction(ctx, attraction)
	})
}

func (s *CachedStore) UpsertVote(ctx context.Context, userID, attractionID string, value int) (*domain.Vote, error) {
	return invalidating(s, func() (*domain.Vote, error) {
		return s.Store.UpsertVote(ctx, userID, attractionID, value)
	})
}

func (s *CachedStore) UpsertUserBudget(ctx context.Context, budget *domain.UserBudget) (*domain.UserBudget, error) {
	return invalidating(s, func() (*domain.UserBudget, error) {
		return s.Store.UpsertUserBudget(ctx, budget)
	})
}

func (s *CachedStore) MarkSeeded(ctx context.Context, key string) error {
	if err := s.Store.MarkSeeded(ctx, key); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func cachedList[T any](ctx context.Context, s *CachedStore, key string, list func(context.Context) ([]T, error)) ([]T, error) {
	if s.ttl > 0 {
		if item := s.cache.Get(key); item != nil && !item.Expired() {
			if cached, ok := item.Value().([]T); ok {
				return slices.Clone(cached), nil
			}
		}
	}

	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	result, err := list(ctx)
	if err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		s.mu.RLock()
		if s.generation == generation {
			s.cache.Set(key, slices.Clone(result), s.ttl)
		}
		s.mu.RUnlock()
	}
	return result, nil
}

func invalidating[T any](s *CachedStore, write func() (*T, error)) (*T, error) {
	result, err := write()
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return result, nil
}

func (s *CachedStore) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.cache.Clear()
}
