package handlers

import (
	"log"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.Health(r.Context())
	if err != nil {
		log.Printf("Хранилище недоступно: %v", err)
		WriteError(w, "Хранилище недоступно", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", Tables: count}, http.StatusOK)
}
