package travelers

import (
	"context"
	"errors"
	"testing"

	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/repository/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := local.New("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ctx := context.Background()
	users := []trip.User{
		{ID: "julian", Name: "Julian", Initials: "J", Color: "#ff5c8d", AvatarOptions: []string{"a.png", "b.png"}},
		{ID: "dave", Name: "Dave", Initials: "D", Color: "#5ce1e6", Position: 1},
	}
	for i := range users {
		if err := store.UpsertUser(ctx, &users[i]); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	return NewService(store)
}

func TestUpdateAvatarFromOptions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	choice := "b.png"

	user, err := svc.UpdateAvatar(ctx, "julian", &choice)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.AvatarURL == nil || *user.AvatarURL != "b.png" {
		t.Fatalf("expected avatar b.png, got %v", user.AvatarURL)
	}

	other := "c.png"
	if _, err := svc.UpdateAvatar(ctx, "julian", &other); !trip.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	user, err = svc.UpdateAvatar(ctx, "julian", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.AvatarURL != nil {
		t.Fatalf("expected avatar cleared, got %v", *user.AvatarURL)
	}
}

func TestUpdateAvatarWithoutOptions(t *testing.T) {
	svc := newTestService(t)
	url := " https://example.com/dave.png "

	user, err := svc.UpdateAvatar(context.Background(), "dave", &url)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *user.AvatarURL != "https://example.com/dave.png" {
		t.Fatalf("expected trimmed url, got %q", *user.AvatarURL)
	}

	if _, err := svc.UpdateAvatar(context.Background(), "ghost", &url); !errors.Is(err, trip.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListKeepsRosterOrder(t *testing.T) {
	svc := newTestService(t)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(users) != 2 || users[0].Name != "Julian" || users[1].Name != "Dave" {
		t.Fatalf("unexpected roster %+v", users)
	}
}

type failingUsersStore struct {
	*local.Store
}

func (s failingUsersStore) ListUsers(ctx context.Context) ([]trip.User, error) {
	return nil, errors.New("network down")
}

func TestListDegradesOnReadFailure(t *testing.T) {
	store, err := local.New("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	svc := NewService(failingUsersStore{Store: store})

	users, err := svc.List(context.Background())
	if !trip.IsPersistence(err) {
		t.Fatalf("expected persistence notice, got %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty roster, got %v", users)
	}
}
