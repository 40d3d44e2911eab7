// Package dashboard owns the dashboard's view state and turns it into the
// statistics, chart rows, and cards the presentation layer renders.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/artdash/internal/aggregate"
	"github.com/lehigh-university-libraries/artdash/internal/collection"
	"github.com/lehigh-university-libraries/artdash/internal/models"
)

// MaxDisplayed caps the number of cards in the list view
const MaxDisplayed = 50

// ErrNotFound is returned when an artwork cannot be fetched for the detail view
var ErrNotFound = errors.New("artwork not found")

// Overview is everything the main dashboard page shows
type Overview struct {
	Loading      bool                  `json:"loading" yaml:"loading"`
	NoData       bool                  `json:"no_data" yaml:"no_data"`
	Summary      models.Summary        `json:"summary" yaml:"summary"`
	TypeChart    []models.AggregateRow `json:"type_chart" yaml:"type_chart"`
	CenturyChart []models.AggregateRow `json:"century_chart" yaml:"century_chart"`
	Search       string                `json:"search,omitempty" yaml:"search,omitempty"`
	TypeFilter   string                `json:"type,omitempty" yaml:"type,omitempty"`
	Matched      int                   `json:"matched" yaml:"matched"`
	Items        []models.Card         `json:"items" yaml:"items"`
}

// Service loads records into a State and derives the dashboard from it
type Service struct {
	state      *State
	source     collection.Source
	loader     *collection.Loader
	request    collection.Request
	comparison collection.Request
}

// NewService creates a dashboard service. The main load uses req; the detail
// view compares against collection.ComparisonRequest.
func NewService(source collection.Source, req collection.Request) *Service {
	return &Service{
		state:      NewState(),
		source:     source,
		loader:     collection.NewLoader(source),
		request:    req,
		comparison: collection.ComparisonRequest(),
	}
}

// State exposes the underlying view state
func (s *Service) State() *State {
	return s.state
}

// Refresh loads a new sample and commits it unless a newer refresh started
// in the meantime. It reports whether this load's result was applied.
func (s *Service) Refresh(ctx context.Context) bool {
	tok := s.state.Begin()
	committed := s.loader.LoadInto(ctx, s.request, tok, s.state.Commit)
	if committed {
		slog.Info("Dashboard records updated", "count", len(s.state.Snapshot().Records))
	}
	return committed
}

// Records returns the committed records, running a load first if none has
// finished yet. Used by one-shot commands.
func (s *Service) Records(ctx context.Context) []models.ArtworkRecord {
	if view := s.state.Snapshot(); view.Loading {
		s.Refresh(ctx)
	}
	return s.state.Snapshot().Records
}

// Overview derives the dashboard for the given search text and type filter.
// Statistics and charts cover every loaded record; only the cards are filtered.
func (s *Service) Overview(search, typeFilter string) Overview {
	view := s.state.Snapshot()
	return BuildOverview(view, search, typeFilter)
}

// BuildOverview derives the dashboard from a view
func BuildOverview(view View, search, typeFilter string) Overview {
	filtered := aggregate.Filter(view.Records, search, typeFilter)

	shown := filtered
	if len(shown) > MaxDisplayed {
		shown = shown[:MaxDisplayed]
	}
	cards := make([]models.Card, 0, len(shown))
	for _, r := range shown {
		cards = append(cards, models.NewCard(r))
	}

	return Overview{
		Loading:      view.Loading,
		NoData:       view.NoData,
		Summary:      aggregate.Summarize(view.Records),
		TypeChart:    aggregate.ByFixedTypes(view.Records, aggregate.DefaultTypeLabels),
		CenturyChart: aggregate.ByCentury(view.Records),
		Search:       search,
		TypeFilter:   typeFilter,
		Matched:      len(filtered),
		Items:        cards,
	}
}

// Detail fetches one artwork and, when its date names a year, a comparison
// sample bucketed by century
func (s *Service) Detail(ctx context.Context, objectID int) (*models.Detail, error) {
	record, err := s.source.Object(ctx, objectID)
	if err != nil {
		slog.Warn("Failed to fetch artwork detail", "object_id", objectID, "error", err)
		return nil, fmt.Errorf("%w: %d", ErrNotFound, objectID)
	}

	detail := models.NewDetail(*record)

	if _, ok := aggregate.ExtractYear(models.Value(record.DateText)); ok {
		sample := s.loader.Load(ctx, s.comparison)
		detail.CenturyComparison = aggregate.ByCentury(sample)
	}

	return &detail, nil
}
