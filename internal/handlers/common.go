package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/artdash/internal/dashboard"
)

type Handler struct {
	service *dashboard.Service
	// ctx bounds background refreshes; it is cancelled on shutdown
	ctx context.Context
}

func New(ctx context.Context, service *dashboard.Service) *Handler {
	return &Handler{
		service: service,
		ctx:     ctx,
	}
}

// Routes registers every dashboard route on mux
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/artworks", h.HandleArtworks)
	mux.HandleFunc("/api/artworks/", h.HandleArtworkDetail)
	mux.HandleFunc("/api/stats", h.HandleStats)
	mux.HandleFunc("/api/charts/type", h.HandleTypeChart)
	mux.HandleFunc("/api/charts/century", h.HandleCenturyChart)
	mux.HandleFunc("/api/refresh", h.HandleRefresh)
	mux.HandleFunc("/art/", h.HandleDetailPage)
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
}

// Refresh starts a load in the background. Any load still running is superseded.
func (h *Handler) Refresh() {
	go h.service.Refresh(h.ctx)
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	h.writeJSONStatus(w, http.StatusOK, data)
}

// writeJSONStatus encodes data before sending any headers so an encoding
// failure can still be reported as a 500
func (h *Handler) writeJSONStatus(w http.ResponseWriter, code int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Unable to write JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// objectIDFromPath parses the trailing identifier of paths like /api/artworks/123
func objectIDFromPath(path, prefix string) (int, bool) {
	raw := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// filterParams reads the search and type filter from the query string
func filterParams(r *http.Request) (string, string) {
	q := r.URL.Query()
	return strings.TrimSpace(q.Get("search")), strings.TrimSpace(q.Get("type"))
}
