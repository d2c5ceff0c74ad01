package handlers

import (
	"log"
	"net/http"
)

// GetStats reports aggregate row counts. Operational endpoint, no auth.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetStats(r.Context())
	if err != nil {
		log.Printf("Failed to fetch stats: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
