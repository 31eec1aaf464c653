package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"trip-planner-go/internal/domain/activities"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/transport/httpserver/middleware"
)

type createAttractionRequest struct {
	CityID       *string `json:"city_id" validate:"omitempty,max=64"`
	Name         string  `json:"name" validate:"required,max=160"`
	Description  string  `json:"description" validate:"required,max=2000"`
	TimeEstimate *string `json:"time_estimate" validate:"omitempty,max=64"`
	ImageURL     string  `json:"image_url" validate:"omitempty,url"`
}

type voteRequest struct {
	Vote *int `json:"vote" validate:"required,min=-1,max=1"`
}

type attractionResponse struct {
	ID           string  `json:"id"`
	CityID       *string `json:"city_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TimeEstimate *string `json:"time_estimate"`
	ImageURL     string  `json:"image_url"`
	CreatedBy    *string `json:"created_by"`
}

type attractionRankingResponse struct {
	Attraction attractionResponse `json:"attraction"`
	Score      int                `json:"score"`
	Upvotes    int                `json:"upvotes"`
	Downvotes  int                `json:"downvotes"`
	Upvoters   []string           `json:"upvoters"`
	Downvoters []string           `json:"downvoters"`
}

type attractionsResponse struct {
	Items    []attractionRankingResponse `json:"items"`
	Degraded bool                        `json:"degraded"`
}

type voteResponse struct {
	AttractionID string                     `json:"attraction_id"`
	Vote         int                        `json:"vote"`
	Ranking      *attractionRankingResponse `json:"ranking"`
}

// ListAttractions returns ranked attractions. ?city_id= narrows to one city;
// an empty value selects attractions without a city.
func (h *Handlers) ListAttractions(w http.ResponseWriter, r *http.Request) {
	var filter activities.ListFilter
	query := r.URL.Query()
	if query.Has("city_id") {
		cityID := strings.TrimSpace(query.Get("city_id"))
		filter.CityID = &cityID
	}

	rankings, err := h.Activities.List(r.Context(), filter)
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "attractions.list", err)
		return
	}
	degraded := h.notice("attractions.list", err)

	items := make([]attractionRankingResponse, 0, len(rankings))
	for _, ranking := range rankings {
		items = append(items, toAttractionRankingResponse(ranking))
	}
	writeJSON(w, http.StatusOK, attractionsResponse{Items: items, Degraded: degraded})
}

func (h *Handlers) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	var req createAttractionRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	attraction, err := h.Activities.AddAttraction(r.Context(), activities.AddAttractionInput{
		CityID:       req.CityID,
		Name:         req.Name,
		Description:  req.Description,
		TimeEstimate: req.TimeEstimate,
		ImageURL:     req.ImageURL,
		CreatedBy:    traveler.ID,
	})
	if err != nil {
		h.writeServiceError(w, "attractions.create", err, "user_id", traveler.ID, "name", req.Name)
		return
	}
	writeJSON(w, http.StatusCreated, toAttractionResponse(*attraction))
}

func (h *Handlers) VoteAttraction(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}
	attractionID := chi.URLParam(r, "attraction_id")

	var req voteRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	result, err := h.Activities.Vote(r.Context(), traveler.ID, attractionID, *req.Vote)
	if err != nil {
		h.writeServiceError(w, "attractions.vote", err, "user_id", traveler.ID, "attraction_id", attractionID)
		return
	}

	response := voteResponse{AttractionID: result.AttractionID, Vote: result.Value}
	if result.Ranking.Attraction.ID != "" {
		ranking := toAttractionRankingResponse(result.Ranking)
		response.Ranking = &ranking
	}
	writeJSON(w, http.StatusOK, response)
}

func toAttractionResponse(attraction trip.Attraction) attractionResponse {
	return attractionResponse{
		ID:           attraction.ID,
		CityID:       attraction.CityID,
		Name:         attraction.Name,
		Description:  attraction.Description,
		TimeEstimate: attraction.TimeEstimate,
		ImageURL:     attraction.ImageURL,
		CreatedBy:    attraction.CreatedBy,
	}
}

func toAttractionRankingResponse(ranking activities.AttractionRanking) attractionRankingResponse {
	return attractionRankingResponse{
		Attraction: toAttractionResponse(ranking.Attraction),
		Score:      ranking.Score,
		Upvotes:    ranking.Upvotes,
		Downvotes:  ranking.Downvotes,
		Upvoters:   nonNilStrings(ranking.Upvoters),
		Downvoters: nonNilStrings(ranking.Downvoters),
	}
}
