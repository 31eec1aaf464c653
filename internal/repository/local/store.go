package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trip-planner-go/internal/domain/trip"
)

// Store keeps every collection in process memory. With a path set, each write
// rewrites a JSON snapshot of the whole store and New restores it.
type Store struct {
	mu   sync.RWMutex
	path string
	now  func() time.Time

	users        []trip.User
	availability map[string]trip.Availability
	cities       []trip.City
	cityDays     map[cityDaysKey]trip.UserCityDays
	attractions  []trip.Attraction
	votes        map[voteKey]trip.Vote
	budgets      map[string]trip.UserBudget
	seeded       map[string]time.Time
}

type cityDaysKey struct {
	UserID string
	CityID string
}

type voteKey struct {
	UserID       string
	AttractionID string
}

type snapshot struct {
	Users        []trip.User         `json:"users"`
	Availability []trip.Availability `json:"availability"`
	Cities       []trip.City         `json:"cities"`
	CityDays     []trip.UserCityDays `json:"user_city_days"`
	Attractions  []trip.Attraction   `json:"attractions"`
	Votes        []trip.Vote         `json:"attraction_votes"`
	Budgets      []trip.UserBudget   `json:"user_budgets"`
	Seeded       []trip.SeedMarker   `json:"seed_markers"`
}

func New(path string) (*Store, error) {
	s := &Store{
		path:         path,
		now:          func() time.Time { return time.Now().UTC() },
		availability: make(map[string]trip.Availability),
		cityDays:     make(map[cityDaysKey]trip.UserCityDays),
		votes:        make(map[voteKey]trip.Vote),
		budgets:      make(map[string]trip.UserBudget),
		seeded:       make(map[string]time.Time),
	}
	if path == "" {
		return s, nil
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) ListUsers(ctx context.Context) ([]trip.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]trip.User, len(s.users))
	copy(users, s.users)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Position < users[j].Position
	})
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*trip.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == userID {
			found := user
			return &found, nil
		}
	}
	return nil, trip.ErrUserNotFound
}

func (s *Store) UpsertUser(ctx context.Context, user *trip.User) error {
	if user == nil || user.ID == "" {
		return errors.New("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			previous := s.users[i]
			user.CreatedAt = previous.CreatedAt
			s.users[i] = *user
			return s.commitLocked(func() { s.users[i] = previous })
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	count := len(s.users)
	s.users = append(s.users, *user)
	return s.commitLocked(func() { s.users = s.users[:count] })
}

func (s *Store) UpdateUserAvatar(ctx context.Context, userID string, avatarURL *string) (*trip.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}
		previous := s.users[i].AvatarURL
		s.users[i].AvatarURL = avatarURL
		if err := s.commitLocked(func() { s.users[i].AvatarURL = previous }); err != nil {
			return nil, err
		}
		updated := s.users[i]
		return &updated, nil
	}
	return nil, trip.ErrUserNotFound
}

func (s *Store) ListAvailability(ctx context.Context) ([]trip.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]trip.Availability, 0, len(s.availability))
	for _, record := range s.availability {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UserID < records[j].UserID
	})
	return records, nil
}

func (s *Store) GetAvailability(ctx context.Context, userID string) (*trip.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.availability[userID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *Store) UpsertAvailability(ctx context.Context, availability *trip.Availability) (*trip.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *availability
	record.UpdatedAt = s.now()
	undo := restoreEntry(s.availability, record.UserID)
	s.availability[record.UserID] = record
	if err := s.commitLocked(undo); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListCities(ctx context.Context) ([]trip.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := make([]trip.City, len(s.cities))
	copy(cities, s.cities)
	return cities, nil
}

func (s *Store) GetCity(ctx context.Context, cityID string) (*trip.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, city := range s.cities {
		if city.ID == cityID {
			found := city
			return &found, nil
		}
	}
	return nil, trip.ErrCityNotFound
}

func (s *Store) InsertCity(ctx context.Context, city *trip.City) (*trip.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *city
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	for _, existing := range s.cities {
		if existing.ID == record.ID {
			return nil, fmt.Errorf("city %s already exists", record.ID)
		}
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	count := len(s.cities)
	s.cities = append(s.cities, record)
	if err := s.commitLocked(func() { s.cities = s.cities[:count] }); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListUserCityDays(ctx context.Context) ([]trip.UserCityDays, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]trip.UserCityDays, 0, len(s.cityDays))
	for _, record := range s.cityDays {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].UserID != records[j].UserID {
			return records[i].UserID < records[j].UserID
		}
		return records[i].CityID < records[j].CityID
	})
	return records, nil
}

func (s *Store) UpsertUserCityDays(ctx context.Context, userID, cityID string, days int) (*trip.UserCityDays, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cityDaysKey{UserID: userID, CityID: cityID}
	undo := restoreEntry(s.cityDays, key)
	if days <= 0 {
		delete(s.cityDays, key)
		return nil, s.commitLocked(undo)
	}

	record := trip.UserCityDays{UserID: userID, CityID: cityID, Days: days, UpdatedAt: s.now()}
	s.cityDays[key] = record
	if err := s.commitLocked(undo); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListAttractions(ctx context.Context) ([]trip.Attraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attractions := make([]trip.Attraction, len(s.attractions))
	copy(attractions, s.attractions)
	return attractions, nil
}

func (s *Store) GetAttraction(ctx context.Context, attractionID string) (*trip.Attraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, attraction := range s.attractions {
		if attraction.ID == attractionID {
			found := attraction
			return &found, nil
		}
	}
	return nil, trip.ErrAttractionNotFound
}

func (s *Store) InsertAttraction(ctx context.Context, attraction *trip.Attraction) (*trip.Attraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *attraction
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	for _, existing := range s.attractions {
		if existing.ID == record.ID {
			return nil, fmt.Errorf("attraction %s already exists", record.ID)
		}
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	count := len(s.attractions)
	s.attractions = append(s.attractions, record)
	if err := s.commitLocked(func() { s.attractions = s.attractions[:count] }); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) ListVotes(ctx context.Context) ([]trip.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]trip.Vote, 0, len(s.votes))
	for _, vote := range s.votes {
		votes = append(votes, vote)
	}
	sort.Slice(votes, func(i, j int) bool {
		if votes[i].AttractionID != votes[j].AttractionID {
			return votes[i].AttractionID < votes[j].AttractionID
		}
		return votes[i].UserID < votes[j].UserID
	})
	return votes, nil
}

func (s *Store) GetVote(ctx context.Context, userID, attractionID string) (*trip.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vote, ok := s.votes[voteKey{UserID: userID, AttractionID: attractionID}]
	if !ok {
		return nil, nil
	}
	return &vote, nil
}

func (s *Store) UpsertVote(ctx context.Context, userID, attractionID string, value int) (*trip.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{UserID: userID, AttractionID: attractionID}
	undo := restoreEntry(s.votes, key)
	if value == 0 {
		delete(s.votes, key)
		return nil, s.commitLocked(undo)
	}

	vote := trip.Vote{UserID: userID, AttractionID: attractionID, Value: value, UpdatedAt: s.now()}
	s.votes[key] = vote
	if err := s.commitLocked(undo); err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *Store) ListUserBudgets(ctx context.Context) ([]trip.UserBudget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budgets := make([]trip.UserBudget, 0, len(s.budgets))
	for _, budget := range s.budgets {
		budgets = append(budgets, budget)
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].UserID < budgets[j].UserID
	})
	return budgets, nil
}

func (s *Store) GetUserBudget(ctx context.Context, userID string) (*trip.UserBudget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budget, ok := s.budgets[userID]
	if !ok {
		return nil, nil
	}
	return &budget, nil
}

func (s *Store) UpsertUserBudget(ctx context.Context, budget *trip.UserBudget) (*trip.UserBudget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *budget
	now := s.now()
	if existing, ok := s.budgets[record.UserID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	undo := restoreEntry(s.budgets, record.UserID)
	s.budgets[record.UserID] = record
	if err := s.commitLocked(undo); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) IsSeeded(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.seeded[key]
	return ok, nil
}

func (s *Store) MarkSeeded(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	undo := restoreEntry(s.seeded, key)
	s.seeded[key] = s.now()
	return s.commitLocked(undo)
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read local store: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode local store: %w", err)
	}

	s.users = snap.Users
	s.cities = snap.Cities
	s.attractions = snap.Attractions
	for _, record := range snap.Availability {
		s.availability[record.UserID] = record
	}
	for _, record := range snap.CityDays {
		s.cityDays[cityDaysKey{UserID: record.UserID, CityID: record.CityID}] = record
	}
	for _, vote := range snap.Votes {
		s.votes[voteKey{UserID: vote.UserID, AttractionID: vote.AttractionID}] = vote
	}
	for _, budget := range snap.Budgets {
		s.budgets[budget.UserID] = budget
	}
	for _, marker := range snap.Seeded {
		s.seeded[marker.Key] = marker.SeededAt
	}
	return nil
}

// commitLocked persists the change just applied to memory and reverts it
// with undo when the snapshot cannot be written.
func (s *Store) commitLocked(undo func()) error {
	if err := s.persistLocked(); err != nil {
		undo()
		return err
	}
	return nil
}

// restoreEntry captures the current state of key so it can be put back.
func restoreEntry[K comparable, V any](m map[K]V, key K) func() {
	previous, existed := m[key]
	return func() {
		if existed {
			m[key] = previous
			return
		}
		delete(m, key)
	}
}

// persistLocked writes the snapshot through a temp file and rename. Callers
// hold the write lock.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}

	snap := snapshot{
		Users:       s.users,
		Cities:      s.cities,
		Attractions: s.attractions,
	}
	for _, record := range s.availability {
		snap.Availability = append(snap.Availability, record)
	}
	for _, record := range s.cityDays {
		snap.CityDays = append(snap.CityDays, record)
	}
	for _, vote := range s.votes {
		snap.Votes = append(snap.Votes, vote)
	}
	for _, budget := range s.budgets {
		snap.Budgets = append(snap.Budgets, budget)
	}
	for key, at := range s.seeded {
		snap.Seeded = append(snap.Seeded, trip.SeedMarker{Key: key, SeededAt: at})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local store dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local store: %w", err)
	}
	return nil
}
