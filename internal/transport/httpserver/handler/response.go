package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"trip-planner-go/internal/domain/trip"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// decodeRequest reads a JSON body into dst and checks its validate tags.
// It writes the error response itself and reports whether to continue.
func (h *Handlers) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
				Code:       "invalid_request",
				Message:    fmt.Sprintf("%s failed %s", first.Field(), first.Tag()),
				Field:      first.Field(),
				Constraint: first.Tag(),
			}})
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return false
	}
	return true
}

// writeServiceError maps domain errors onto the error envelope and logs them.
func (h *Handlers) writeServiceError(w http.ResponseWriter, op string, err error, args ...any) {
	var validation *trip.ValidationError
	switch {
	case errors.As(err, &validation):
		h.log.BusinessError(op+": validation failed", err, args...)
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
			Code:       "validation_failed",
			Message:    validation.Message,
			Field:      validation.Field,
			Constraint: validation.Constraint,
		}})
	case errors.Is(err, trip.ErrUserNotFound):
		h.log.BusinessError(op+": traveler not found", err, args...)
		writeError(w, http.StatusNotFound, "traveler_not_found", "traveler not found")
	case errors.Is(err, trip.ErrCityNotFound):
		h.log.BusinessError(op+": city not found", err, args...)
		writeError(w, http.StatusNotFound, "city_not_found", "city not found")
	case errors.Is(err, trip.ErrAttractionNotFound):
		h.log.BusinessError(op+": attraction not found", err, args...)
		writeError(w, http.StatusNotFound, "attraction_not_found", "attraction not found")
	case trip.IsPersistence(err):
		h.log.InternalError(op+": store failed", err, args...)
		writeError(w, http.StatusBadGateway, "persistence_error", "storage unavailable")
	default:
		h.log.InternalError(op+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// notice logs a read that degraded to partial data. The response still goes out.
func (h *Handlers) notice(op string, err error, args ...any) bool {
	if err == nil {
		return false
	}
	h.log.Notice(op+": serving degraded data", err, args...)
	return true
}
