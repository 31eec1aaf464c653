package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/pkg/logger"
)

const TravelerHeader = "X-Traveler-ID"

type contextKey int

const (
	travelerKey contextKey = iota
)

// TravelerDirectory resolves the roster member named by a request.
type TravelerDirectory interface {
	Get(ctx context.Context, userID string) (*trip.User, error)
}

// Traveler selects the acting roster member. It does not authenticate.
type Traveler struct {
	directory TravelerDirectory
	log       logger.Logger
}

func NewTraveler(directory TravelerDirectory, log logger.Logger) *Traveler {
	return &Traveler{directory: directory, log: log}
}

func (t *Traveler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		travelerID := strings.TrimSpace(r.Header.Get(TravelerHeader))
		if travelerID == "" {
			writeError(w, http.StatusBadRequest, "traveler_required", TravelerHeader+" header is required")
			return
		}

		user, err := t.directory.Get(r.Context(), travelerID)
		if err != nil {
			if errors.Is(err, trip.ErrUserNotFound) {
				t.log.BusinessError("traveler: unknown traveler", err, "user_id", travelerID)
				writeError(w, http.StatusNotFound, "traveler_not_found", "traveler not found")
				return
			}
			t.log.InternalError("traveler: lookup failed", err, "user_id", travelerID)
			writeError(w, http.StatusBadGateway, "persistence_error", "traveler lookup failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithTraveler(r.Context(), *user)))
	})
}

func WithTraveler(ctx context.Context, user trip.User) context.Context {
	return context.WithValue(ctx, travelerKey, user)
}

func TravelerFromContext(ctx context.Context) (trip.User, bool) {
	user, ok := ctx.Value(travelerKey).(trip.User)
	if !ok || user.ID == "" {
		return trip.User{}, false
	}
	return user, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
