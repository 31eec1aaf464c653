package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trip-planner-go/internal/domain/destinations"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/transport/httpserver/middleware"
)

type createCityRequest struct {
	Name         string   `json:"name" validate:"required,max=120"`
	JapaneseName *string  `json:"japanese_name" validate:"omitempty,max=120"`
	Description  string   `json:"description" validate:"required,max=2000"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
	Highlights   []string `json:"highlights" validate:"max=20,dive,max=120"`
}

type setCityDaysRequest struct {
	Days *int `json:"days" validate:"required,min=0,max=365"`
}

type cityResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	JapaneseName *string  `json:"japanese_name"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Highlights   []string `json:"highlights"`
}

type citiesResponse struct {
	Items    []cityResponse `json:"items"`
	Degraded bool           `json:"degraded"`
}

type cityRankingResponse struct {
	City      cityResponse `json:"city"`
	TotalDays int          `json:"total_days"`
	UserCount int          `json:"user_count"`
	AvgDays   float64      `json:"avg_days"`
	UserIDs   []string     `json:"user_ids"`
}

type cityRankingsResponse struct {
	Items    []cityRankingResponse `json:"items"`
	Degraded bool                  `json:"degraded"`
}

type cityDaysResponse struct {
	CityID string `json:"city_id"`
	Days   int    `json:"days"`
}

type allocationResponse struct {
	Items      []cityDaysResponse            `json:"items"`
	Allocated  int                           `json:"allocated"`
	TripLength int                           `json:"trip_length"`
	Status     destinations.AllocationStatus `json:"status"`
	Degraded   bool                          `json:"degraded"`
}

func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Destinations.ListCities(r.Context())
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "cities.list", err)
		return
	}
	degraded := h.notice("cities.list", err)

	items := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		items = append(items, toCityResponse(city))
	}
	writeJSON(w, http.StatusOK, citiesResponse{Items: items, Degraded: degraded})
}

func (h *Handlers) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req createCityRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	city, err := h.Destinations.AddCity(r.Context(), destinations.AddCityInput{
		Name:         req.Name,
		JapaneseName: req.JapaneseName,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Highlights:   req.Highlights,
	})
	if err != nil {
		h.writeServiceError(w, "cities.create", err, "name", req.Name)
		return
	}
	writeJSON(w, http.StatusCreated, toCityResponse(*city))
}

// CityRanking lists cities by popularity. ?limit=n keeps the top n cities
// somebody picked.
func (h *Handlers) CityRanking(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return
	}

	rankings, err := h.Destinations.Ranking(r.Context())
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "cities.ranking", err)
		return
	}
	degraded := h.notice("cities.ranking", err)
	if limit > 0 {
		rankings = destinations.TopDestinations(rankings, limit)
	}

	items := make([]cityRankingResponse, 0, len(rankings))
	for _, ranking := range rankings {
		items = append(items, toCityRankingResponse(ranking))
	}
	writeJSON(w, http.StatusOK, cityRankingsResponse{Items: items, Degraded: degraded})
}

func (h *Handlers) GetMyCityDays(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	allocation, err := h.Destinations.Allocation(r.Context(), traveler.ID)
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "cities.my_days", err, "user_id", traveler.ID)
		return
	}
	degraded := h.notice("cities.my_days", err, "user_id", traveler.ID)
	writeJSON(w, http.StatusOK, toAllocationResponse(allocation, degraded))
}

func (h *Handlers) SetCityDays(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}
	cityID := chi.URLParam(r, "city_id")

	var req setCityDaysRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	if _, err := h.Destinations.SetDays(r.Context(), traveler.ID, cityID, *req.Days); err != nil {
		h.writeServiceError(w, "cities.set_days", err, "user_id", traveler.ID, "city_id", cityID)
		return
	}

	allocation, err := h.Destinations.Allocation(r.Context(), traveler.ID)
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "cities.set_days", err, "user_id", traveler.ID, "city_id", cityID)
		return
	}
	degraded := h.notice("cities.set_days", err, "user_id", traveler.ID, "city_id", cityID)
	writeJSON(w, http.StatusOK, toAllocationResponse(allocation, degraded))
}

func toCityResponse(city trip.City) cityResponse {
	return cityResponse{
		ID:           city.ID,
		Name:         city.Name,
		JapaneseName: city.JapaneseName,
		Description:  city.Description,
		ImageURL:     city.ImageURL,
		Highlights:   nonNilStrings(city.Highlights),
	}
}

func toCityRankingResponse(ranking destinations.CityRanking) cityRankingResponse {
	return cityRankingResponse{
		City:      toCityResponse(ranking.City),
		TotalDays: ranking.TotalDays,
		UserCount: ranking.UserCount,
		AvgDays:   ranking.AvgDays,
		UserIDs:   nonNilStrings(ranking.UserIDs),
	}
}

func toAllocationResponse(allocation destinations.Allocation, degraded bool) allocationResponse {
	items := make([]cityDaysResponse, 0, len(allocation.Items))
	for _, item := range allocation.Items {
		items = append(items, cityDaysResponse{CityID: item.CityID, Days: item.Days})
	}
	return allocationResponse{
		Items:      items,
		Allocated:  allocation.Allocated,
		TripLength: allocation.TripLength,
		Status:     allocation.Status,
		Degraded:   degraded,
	}
}
