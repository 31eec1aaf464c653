package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/repository/local"
)

type countingStore struct {
	*local.Store
	cityReads int
	failCity  bool
	afterRead func()
}

func (s *countingStore) ListCities(ctx context.Context) ([]domain.City, error) {
	s.cityReads++
	if s.failCity {
		return nil, errors.New("timeout")
	}
	cities, err := s.Store.ListCities(ctx)
	if hook := s.afterRead; hook != nil {
		s.afterRead = nil
		hook()
	}
	return cities, err
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	store, err := local.New("")
	require.NoError(t, err)
	return &countingStore{Store: store}
}

func TestCachedStoreServesRepeatedReads(t *testing.T) {
	ctx := context.Background()
	backend := newCountingStore(t)
	cached := NewCachedStore(backend, time.Minute, 16)
	defer cached.Stop()

	_, err := backend.InsertCity(ctx, &domain.City{Name: "Kyoto", Description: "Temples"})
	require.NoError(t, err)

	first, err := cached.ListCities(ctx)
	require.NoError(t, err)
	second, err := cached.ListCities(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.cityReads)
	assert.Equal(t, first, second)
}

func TestCachedStoreClearsOnWrite(t *testing.T) {
	ctx := context.Background()
	backend := newCountingStore(t)
	cached := NewCachedStore(backend, time.Minute, 16)
	defer cached.Stop()

	cities, err := cached.ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)

	_, err = cached.InsertCity(ctx, &domain.City{Name: "Osaka", Description: "Food"})
	require.NoError(t, err)

	cities, err = cached.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Osaka", cities[0].Name)
	assert.Equal(t, 2, backend.cityReads)
}

func TestCachedStoreSkipsReadsThatOverlapAWrite(t *testing.T) {
	ctx := context.Background()
	backend := newCountingStore(t)
	cached := NewCachedStore(backend, time.Minute, 16)
	defer cached.Stop()

	backend.afterRead = func() {
		_, err := cached.InsertCity(ctx, &domain.City{Name: "Nara", Description: "Deer"})
		require.NoError(t, err)
	}

	stale, err := cached.ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, stale)

	cities, err := cached.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Nara", cities[0].Name)
	assert.Equal(t, 2, backend.cityReads)
}

func TestCachedStoreDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	backend := newCountingStore(t)
	backend.failCity = true
	cached := NewCachedStore(backend, time.Minute, 16)
	defer cached.Stop()

	_, err := cached.ListCities(ctx)
	require.Error(t, err)

	backend.failCity = false
	cities, err := cached.ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)
	assert.Equal(t, 2, backend.cityReads)
}

func TestCachedStoreZeroTTLPassesThrough(t *testing.T) {
	ctx := context.Background()
	backend := newCountingStore(t)
	cached := NewCachedStore(backend, 0, 16)
	defer cached.Stop()

	for i := 0; i < 3; i++ {
		_, err := cached.ListCities(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, backend.cityReads)
}
