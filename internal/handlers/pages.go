package handlers

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/artdash/internal/aggregate"
	"github.com/lehigh-university-libraries/artdash/internal/dashboard"
	"github.com/lehigh-university-libraries/artdash/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"barWidth": barWidth,
}).ParseFS(templateFS, "templates/*.html"))

// typeOptions are the choices offered by the type filter
var typeOptions = aggregate.DefaultTypeLabels

type indexPage struct {
	dashboard.Overview
	TypeOptions []string
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	search, typeFilter := filterParams(r)
	page := indexPage{
		Overview:    h.service.Overview(search, typeFilter),
		TypeOptions: typeOptions,
	}
	h.render(w, http.StatusOK, "index.html", page)
}

func (h *Handler) HandleDetailPage(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDFromPath(r.URL.Path, "/art/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	if errors.Is(err, dashboard.ErrNotFound) {
		h.render(w, http.StatusNotFound, "notfound.html", nil)
		return
	}
	if err != nil {
		h.writeError(w, "Failed to load artwork: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "detail.html", detail)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Unable to render page", "page", name, "err", err)
	}
}

// barWidth scales a count to a percentage of the largest row
func barWidth(count int, rows []models.AggregateRow) int {
	peak := 0
	for _, r := range rows {
		peak = max(peak, r.Count)
	}
	if peak == 0 {
		return 0
	}
	return count * 100 / peak
}
