package travelers

import (
	"context"
	"strings"

	"trip-planner-go/internal/domain/trip"
)

const ConstraintAvatarOption = "avatar_option"

type Service struct {
	store trip.Store
}

func NewService(store trip.Store) *Service {
	return &Service{store: store}
}

// List returns the roster. A failed read returns an empty roster next to the
// failure.
func (s *Service) List(ctx context.Context) ([]trip.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return []trip.User{}, trip.WrapPersistence("list users", err)
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*trip.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, trip.WrapPersistence("get user", err)
	}
	return user, nil
}

// UpdateAvatar stores the avatar reference, or clears it for nil or blank.
// Travelers with a list of avatar options may only pick from that list.
func (s *Service) UpdateAvatar(ctx context.Context, userID string, avatarURL *string) (*trip.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, trip.WrapPersistence("get user", err)
	}

	var value *string
	if avatarURL != nil {
		if trimmed := strings.TrimSpace(*avatarURL); trimmed != "" {
			value = &trimmed
		}
	}

	if value != nil && len(user.AvatarOptions) > 0 && !contains(user.AvatarOptions, *value) {
		return nil, trip.NewValidationError("avatar_url", ConstraintAvatarOption, "avatar must be one of the traveler's options")
	}

	updated, err := s.store.UpdateUserAvatar(ctx, userID, value)
	if err != nil {
		return nil, trip.WrapPersistence("update user avatar", err)
	}
	return updated, nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
