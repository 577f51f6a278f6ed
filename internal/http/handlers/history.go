package handlers

import (
	"net/http"
	"strconv"

	"animagen/internal/domain"
)

// HistoryList returns recent generations, newest first.
func (a *App) HistoryList(w http.ResponseWriter, r *http.Request) {
	if a.History == nil {
		a.error(w, http.StatusServiceUnavailable, "history_disabled", "no database configured")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	entries, err := a.History.ListRecent(r.Context(), limit)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to list history")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list history")
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": entries})
}
