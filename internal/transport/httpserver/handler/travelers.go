package handler

import (
	"net/http"

	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/transport/httpserver/middleware"
)

type travelerResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Initials      string   `json:"initials"`
	Color         string   `json:"color"`
	AvatarURL     *string  `json:"avatar_url"`
	AvatarOptions []string `json:"avatar_options"`
}

type travelersResponse struct {
	Items    []travelerResponse `json:"items"`
	Degraded bool               `json:"degraded"`
}

type updateAvatarRequest struct {
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=2048"`
}

func (h *Handlers) ListTravelers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Travelers.List(r.Context())
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "travelers.list", err)
		return
	}
	degraded := h.notice("travelers.list", err)

	items := make([]travelerResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toTravelerResponse(user))
	}
	writeJSON(w, http.StatusOK, travelersResponse{Items: items, Degraded: degraded})
}

func (h *Handlers) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	var req updateAvatarRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	updated, err := h.Travelers.UpdateAvatar(r.Context(), traveler.ID, req.AvatarURL)
	if err != nil {
		h.writeServiceError(w, "travelers.update_avatar", err, "user_id", traveler.ID)
		return
	}
	writeJSON(w, http.StatusOK, toTravelerResponse(*updated))
}

func toTravelerResponse(user trip.User) travelerResponse {
	options := []string(user.AvatarOptions)
	if options == nil {
		options = []string{}
	}
	return travelerResponse{
		ID:            user.ID,
		Name:          user.Name,
		Initials:      user.Initials,
		Color:         user.Color,
		AvatarURL:     user.AvatarURL,
		AvatarOptions: options,
	}
}
