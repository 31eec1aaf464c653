package handler

import (
	"net/http"

	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/dashboard"
	"trip-planner-go/internal/domain/trip"
)

type statsResponse struct {
	ReadyTravelers int `json:"ready_travelers"`
	Travelers      int `json:"travelers"`
	Destinations   int `json:"destinations"`
	Attractions    int `json:"attractions"`
}

type timelineRowResponse struct {
	Traveler travelerResponse       `json:"traveler"`
	Cells    []availability.DayTier `json:"cells"`
}

type timelineResponse struct {
	Start string                `json:"start"`
	End   string                `json:"end"`
	Rows  []timelineRowResponse `json:"rows"`
}

type teamMemberResponse struct {
	Traveler travelerResponse       `json:"traveler"`
	Status   dashboard.MemberStatus `json:"status"`
	Ready    bool                   `json:"ready"`
}

type dashboardResponse struct {
	Stats           statsResponse               `json:"stats"`
	BestDates       overlapResponse             `json:"best_dates"`
	Calendar        []monthResponse             `json:"calendar"`
	Timeline        timelineResponse            `json:"timeline"`
	TopDestinations []cityRankingResponse       `json:"top_destinations"`
	TopAttractions  []attractionRankingResponse `json:"top_attractions"`
	Team            []teamMemberResponse        `json:"team"`
	Budget          consensusResponse           `json:"budget"`
	Degraded        bool                        `json:"degraded"`
}

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.Dashboard.Build(r.Context())
	if trip.IsValidation(err) {
		h.writeServiceError(w, "dashboard.build", err)
		return
	}
	h.notice("dashboard.build", err)

	writeJSON(w, http.StatusOK, h.toDashboardResponse(result))
}

func (h *Handlers) toDashboardResponse(result dashboard.Dashboard) dashboardResponse {
	window := h.Availability.Policy().Window
	response := dashboardResponse{
		Stats: statsResponse{
			ReadyTravelers: result.Stats.ReadyTravelers,
			Travelers:      result.Stats.Travelers,
			Destinations:   result.Stats.Destinations,
			Attractions:    result.Stats.Attractions,
		},
		BestDates:       toOverlapResponse(result.BestDates, result.Degraded),
		Calendar:        make([]monthResponse, 0, len(result.Calendar)),
		Timeline:        timelineResponse{Start: window.StartString(), End: window.EndString(), Rows: make([]timelineRowResponse, 0, len(result.Timeline))},
		TopDestinations: make([]cityRankingResponse, 0, len(result.TopDestinations)),
		TopAttractions:  make([]attractionRankingResponse, 0, len(result.TopAttractions)),
		Team:            make([]teamMemberResponse, 0, len(result.Team)),
		Budget:          toConsensusResponse(result.Budget),
		Degraded:        result.Degraded,
	}

	for _, month := range result.Calendar {
		response.Calendar = append(response.Calendar, toMonthResponse(month))
	}
	for _, row := range result.Timeline {
		response.Timeline.Rows = append(response.Timeline.Rows, timelineRowResponse{
			Traveler: toTravelerResponse(row.User),
			Cells:    row.Cells,
		})
	}
	for _, ranking := range result.TopDestinations {
		response.TopDestinations = append(response.TopDestinations, toCityRankingResponse(ranking))
	}
	for _, ranking := range result.TopAttractions {
		response.TopAttractions = append(response.TopAttractions, toAttractionRankingResponse(ranking))
	}
	for _, member := range result.Team {
		response.Team = append(response.Team, teamMemberResponse{
			Traveler: toTravelerResponse(member.User),
			Status:   member.Status,
			Ready:    member.Ready,
		})
	}
	return response
}
