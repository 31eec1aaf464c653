package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Store: string(h.storeMode)})
}
