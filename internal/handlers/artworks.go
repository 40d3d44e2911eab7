package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/artdash/internal/dashboard"
)

func (h *Handler) HandleArtworks(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	search, typeFilter := filterParams(r)
	overview := h.service.Overview(search, typeFilter)

	response := map[string]any{
		"loading": overview.Loading,
		"no_data": overview.NoData,
		"total":   overview.Summary.Total,
		"matched": overview.Matched,
		"items":   overview.Items,
	}

	h.writeJSON(w, response)
}

func (h *Handler) HandleArtworkDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := objectIDFromPath(r.URL.Path, "/api/artworks/")
	if !ok {
		h.writeError(w, "Invalid artwork id", http.StatusBadRequest)
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	if errors.Is(err, dashboard.ErrNotFound) {
		h.writeError(w, "Artwork not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(w, "Failed to load artwork: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, detail)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	overview := h.service.Overview("", "")
	response := map[string]any{
		"loading":      overview.Loading,
		"no_data":      overview.NoData,
		"total":        overview.Summary.Total,
		"unique_types": overview.Summary.DistinctTypes,
	}

	h.writeJSON(w, response)
}

func (h *Handler) HandleTypeChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, h.service.Overview("", "").TypeChart)
}

func (h *Handler) HandleCenturyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, h.service.Overview("", "").CenturyChart)
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.Refresh()

	// Browser form posts go back to the dashboard
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.writeJSONStatus(w, http.StatusAccepted, map[string]any{"message": "Refresh started"})
}
