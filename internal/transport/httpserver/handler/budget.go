package handler

import (
	"net/http"

	"trip-planner-go/internal/domain/budget"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/transport/httpserver/middleware"
)

type tiersRequest struct {
	Flight     string `json:"flight" validate:"max=16"`
	Hotels     string `json:"hotels" validate:"max=16"`
	Food       string `json:"food" validate:"max=16"`
	Activities string `json:"activities" validate:"max=16"`
	Shopping   string `json:"shopping" validate:"max=16"`
}

type estimateRequest struct {
	Tiers tiersRequest `json:"tiers"`
	Days  *int         `json:"days" validate:"omitempty,min=1,max=365"`
}

type catalogResponse struct {
	Categories []budget.CategorySpec `json:"categories"`
}

type estimateResponse struct {
	Tiers     budget.Tiers     `json:"tiers"`
	Breakdown budget.Breakdown `json:"breakdown"`
	Saved     bool             `json:"saved"`
}

type consensusResponse struct {
	Status       budget.ConsensusStatus     `json:"status"`
	Members      int                        `json:"members"`
	Categories   []budget.CategoryConsensus `json:"categories"`
	Tiers        *budget.Tiers              `json:"tiers"`
	Breakdown    *budget.Breakdown          `json:"breakdown"`
	AverageTotal float64                    `json:"average_total"`
}

func (h *Handlers) GetBudgetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{Categories: budget.Catalog()})
}

func (h *Handlers) GetMyBudget(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	estimate, err := h.Budget.Mine(r.Context(), traveler.ID)
	if err != nil {
		h.writeServiceError(w, "budget.get_me", err, "user_id", traveler.ID)
		return
	}
	writeJSON(w, http.StatusOK, toEstimateResponse(estimate))
}

func (h *Handlers) SaveMyBudget(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	var req tiersRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	estimate, err := h.Budget.Save(r.Context(), traveler.ID, req.tiers())
	if err != nil {
		h.writeServiceError(w, "budget.save_me", err, "user_id", traveler.ID)
		return
	}
	writeJSON(w, http.StatusOK, toEstimateResponse(estimate))
}

// EstimateBudget prices the posted tiers without saving them. Without days the
// traveler's trip length is used.
func (h *Handlers) EstimateBudget(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	var req estimateRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	breakdown, err := h.Budget.Quote(r.Context(), traveler.ID, req.Tiers.tiers(), req.Days)
	if err != nil {
		h.writeServiceError(w, "budget.estimate", err, "user_id", traveler.ID)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

type budgetConsensusResponse struct {
	consensusResponse
	Degraded bool `json:"degraded"`
}

func (h *Handlers) GetBudgetConsensus(w http.ResponseWriter, r *http.Request) {
	result, err := h.Budget.Consensus(r.Context())
	if err != nil && !trip.IsPersistence(err) {
		h.writeServiceError(w, "budget.consensus", err)
		return
	}
	degraded := h.notice("budget.consensus", err)
	writeJSON(w, http.StatusOK, budgetConsensusResponse{consensusResponse: toConsensusResponse(result), Degraded: degraded})
}

func (r tiersRequest) tiers() budget.Tiers {
	return budget.Tiers{
		Flight:     r.Flight,
		Hotels:     r.Hotels,
		Food:       r.Food,
		Activities: r.Activities,
		Shopping:   r.Shopping,
	}
}

func toEstimateResponse(estimate budget.Estimate) estimateResponse {
	return estimateResponse{
		Tiers:     estimate.Tiers,
		Breakdown: estimate.Breakdown,
		Saved:     estimate.Saved,
	}
}

func toConsensusResponse(result budget.ConsensusResult) consensusResponse {
	response := consensusResponse{
		Status:       result.Status,
		Members:      result.Members,
		Categories:   result.Categories,
		AverageTotal: result.AverageTotal,
	}
	if response.Categories == nil {
		response.Categories = []budget.CategoryConsensus{}
	}
	if result.Status == budget.ConsensusFound {
		tiers := result.Tiers
		breakdown := result.Breakdown
		response.Tiers = &tiers
		response.Breakdown = &breakdown
	}
	return response
}
