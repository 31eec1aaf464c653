package handler

import (
	"net/http"
	"strings"
	"time"

	"trip-planner-go/internal/domain/availability"
	"trip-planner-go/internal/domain/trip"
	"trip-planner-go/internal/transport/httpserver/middleware"
)

type saveAvailabilityRequest struct {
	AvailableStart      string `json:"available_start" validate:"max=10"`
	AvailableEnd        string `json:"available_end" validate:"max=10"`
	PreferredStart      string `json:"preferred_start" validate:"max=10"`
	PreferredEnd        string `json:"preferred_end" validate:"max=10"`
	PreferredLengthDays *int   `json:"preferred_length_days" validate:"omitempty,min=1"`
}

type availabilityResponse struct {
	UserID              string  `json:"user_id"`
	AvailableStart      *string `json:"available_start"`
	AvailableEnd        *string `json:"available_end"`
	PreferredStart      *string `json:"preferred_start"`
	PreferredEnd        *string `json:"preferred_end"`
	PreferredLengthDays *int    `json:"preferred_length_days"`
	TripLength          int     `json:"trip_length"`
}

type overlapResponse struct {
	Status    availability.OverlapStatus `json:"status"`
	Start     *string                    `json:"start"`
	End       *string                    `json:"end"`
	Days      int                        `json:"days"`
	Travelers []string                   `json:"travelers"`
	InWindow  bool                       `json:"in_window"`
	Degraded  bool                       `json:"degraded"`
}

type dayResponse struct {
	Date           string               `json:"date"`
	Tier           availability.DayTier `json:"tier"`
	PreferredUsers []string             `json:"preferred_users"`
	AvailableUsers []string             `json:"available_users"`
}

type monthResponse struct {
	Name string        `json:"name"`
	Days []dayResponse `json:"days"`
}

type calendarResponse struct {
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Months   []monthResponse `json:"months"`
	Degraded bool            `json:"degraded"`
}

type classifyDayResponse struct {
	dayResponse
	Degraded bool `json:"degraded"`
}

func (h *Handlers) GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	record, err := h.Availability.Get(r.Context(), traveler.ID)
	if err != nil {
		h.writeServiceError(w, "availability.get_me", err, "user_id", traveler.ID)
		return
	}
	if record == nil {
		record = &trip.Availability{UserID: traveler.ID}
	}

	length, err := h.Availability.TripLength(r.Context(), traveler.ID)
	h.notice("availability.get_me", err, "user_id", traveler.ID)

	writeJSON(w, http.StatusOK, toAvailabilityResponse(*record, length))
}

func (h *Handlers) SaveMyAvailability(w http.ResponseWriter, r *http.Request) {
	traveler, ok := middleware.TravelerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "traveler_required", "traveler is required")
		return
	}

	var req saveAvailabilityRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	saved, err := h.Availability.Save(r.Context(), traveler.ID, availability.SaveInput{
		AvailableStart:      req.AvailableStart,
		AvailableEnd:        req.AvailableEnd,
		PreferredStart:      req.PreferredStart,
		PreferredEnd:        req.PreferredEnd,
		PreferredLengthDays: req.PreferredLengthDays,
	})
	if err != nil {
		h.writeServiceError(w, "availability.save_me", err, "user_id", traveler.ID)
		return
	}

	length := h.Availability.Policy().DefaultLength
	if saved.PreferredLengthDays != nil && *saved.PreferredLengthDays > 0 {
		length = *saved.PreferredLengthDays
	}
	writeJSON(w, http.StatusOK, toAvailabilityResponse(*saved, length))
}

func (h *Handlers) GetOverlap(w http.ResponseWriter, r *http.Request) {
	result, err := h.Availability.Overlap(r.Context())
	degraded := h.notice("availability.overlap", err)
	writeJSON(w, http.StatusOK, toOverlapResponse(result, degraded))
}

// GetCalendar classifies every day of the planning window, of ?from=&to=, or
// only ?date= when given.
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if date := strings.TrimSpace(query.Get("date")); date != "" {
		class, err := h.Availability.ClassifyDay(r.Context(), date)
		if trip.IsValidation(err) {
			h.writeServiceError(w, "availability.classify_day", err, "date", date)
			return
		}
		degraded := h.notice("availability.classify_day", err, "date", date)
		writeJSON(w, http.StatusOK, classifyDayResponse{dayResponse: toDayResponse(class), Degraded: degraded})
		return
	}

	window := h.Availability.Policy().Window
	from, to := strings.TrimSpace(query.Get("from")), strings.TrimSpace(query.Get("to"))
	if from != "" || to != "" {
		parsed, err := availability.ParseWindow(from, to)
		if err != nil {
			h.writeServiceError(w, "availability.calendar", err, "from", from, "to", to)
			return
		}
		window = parsed
	}

	months, err := h.Availability.Calendar(r.Context(), &window)
	degraded := h.notice("availability.calendar", err)

	response := calendarResponse{
		Start:    window.StartString(),
		End:      window.EndString(),
		Months:   make([]monthResponse, 0, len(months)),
		Degraded: degraded,
	}
	for _, month := range months {
		response.Months = append(response.Months, toMonthResponse(month))
	}
	writeJSON(w, http.StatusOK, response)
}

func toAvailabilityResponse(record trip.Availability, tripLength int) availabilityResponse {
	return availabilityResponse{
		UserID:              record.UserID,
		AvailableStart:      trip.FormatDate(record.AvailableStart),
		AvailableEnd:        trip.FormatDate(record.AvailableEnd),
		PreferredStart:      trip.FormatDate(record.PreferredStart),
		PreferredEnd:        trip.FormatDate(record.PreferredEnd),
		PreferredLengthDays: record.PreferredLengthDays,
		TripLength:          tripLength,
	}
}

func toOverlapResponse(result availability.OverlapResult, degraded bool) overlapResponse {
	response := overlapResponse{
		Status:    result.Status,
		Days:      result.Days,
		Travelers: result.Travelers,
		InWindow:  result.InWindow,
		Degraded:  degraded,
	}
	if response.Travelers == nil {
		response.Travelers = []string{}
	}
	if result.Status == availability.OverlapFound {
		response.Start = formatDay(result.Start)
		response.End = formatDay(result.End)
	}
	return response
}

func toDayResponse(class availability.DayClass) dayResponse {
	return dayResponse{
		Date:           class.Date.Format(trip.DateLayout),
		Tier:           class.Tier,
		PreferredUsers: nonNilStrings(class.PreferredUsers),
		AvailableUsers: nonNilStrings(class.AvailableUsers),
	}
}

func toMonthResponse(month availability.CalendarMonth) monthResponse {
	days := make([]dayResponse, 0, len(month.Days))
	for _, day := range month.Days {
		days = append(days, toDayResponse(day))
	}
	return monthResponse{Name: month.Name, Days: days}
}

func formatDay(value time.Time) *string {
	return trip.FormatDate(&value)
}
