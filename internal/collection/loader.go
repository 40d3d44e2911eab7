// Package collection retrieves artwork samples from the collection API.
//
// Loading never fails outright. A department whose member list cannot be fetched
// is skipped, a record that cannot be fetched is dropped, and when nothing
// works the caller gets an empty slice to render as "no data".
package collection

import (
	"context"
	"log/slog"

	"github.com/lehigh-university-libraries/artdash/internal/models"
	"golang.org/x/sync/errgroup"
)

// Defaults used by the dashboard
var (
	DefaultDepartments = []int{11, 6, 13, 1, 4}
	FallbackObjectIDs  = []int{436121, 437133, 459123, 436840, 435875}
)

const (
	DefaultSampleSize = 20

	// The detail view compares against a single department
	ComparisonDepartment = 11
	ComparisonSampleSize = 25
)

// Source is the subset of the collection API the loader needs
type Source interface {
	DepartmentObjectIDs(ctx context.Context, departmentID int) ([]int, error)
	Object(ctx context.Context, objectID int) (*models.ArtworkRecord, error)
}

// Request describes one load
type Request struct {
	Departments []int
	SampleSize  int
	FallbackIDs []int
}

// DefaultRequest is the dashboard's main load
func DefaultRequest() Request {
	return Request{
		Departments: DefaultDepartments,
		SampleSize:  DefaultSampleSize,
		FallbackIDs: FallbackObjectIDs,
	}
}

// ComparisonRequest is the detail view's comparison sample. It has no fallback.
func ComparisonRequest() Request {
	return Request{
		Departments: []int{ComparisonDepartment},
		SampleSize:  ComparisonSampleSize,
	}
}

// Loader fetches artwork samples with department priority and a fallback list
type Loader struct {
	source Source
}

// NewLoader creates a new loader over the given source
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load tries each department in order and returns the first non-empty sample.
// Departments are tried one after another so an early success skips the rest.
// If none yields records, the fallback identifiers are fetched instead; the
// result may be empty.
func (l *Loader) Load(ctx context.Context, req Request) []models.ArtworkRecord {
	for _, dept := range req.Departments {
		records := l.loadDepartment(ctx, dept, req.SampleSize)
		if len(records) > 0 {
			slog.Info("Loaded artworks from department", "department", dept, "count", len(records))
			return records
		}
		slog.Debug("Department yielded no artworks", "department", dept)
	}

	if len(req.FallbackIDs) == 0 {
		slog.Warn("No department yielded artworks and no fallback is configured")
		return []models.ArtworkRecord{}
	}

	slog.Warn("No department yielded artworks, loading fallback objects", "count", len(req.FallbackIDs))
	records := l.fetchAll(ctx, req.FallbackIDs)
	if len(records) == 0 {
		slog.Error("Fallback objects could not be loaded either")
	}
	return records
}

// CommitFunc applies a finished load. It must check tok and apply records as
// one step, returning false when tok has been superseded.
type CommitFunc func(tok *Token, records []models.ArtworkRecord) bool

// LoadInto runs Load and hands the result to commit, which is the only place
// the token is checked.
func (l *Loader) LoadInto(ctx context.Context, req Request, tok *Token, commit CommitFunc) bool {
	records := l.Load(ctx, req)
	if !commit(tok, records) {
		slog.Debug("Discarding superseded load", "count", len(records))
		return false
	}
	return true
}

func (l *Loader) loadDepartment(ctx context.Context, dept, sampleSize int) []models.ArtworkRecord {
	ids, err := l.source.DepartmentObjectIDs(ctx, dept)
	if err != nil {
		slog.Warn("Failed to list department objects", "department", dept, "error", err)
		return nil
	}
	if len(ids) == 0 || sampleSize <= 0 {
		return nil
	}

	if len(ids) > sampleSize {
		ids = ids[:sampleSize]
	}
	return l.fetchAll(ctx, ids)
}

// fetchAll requests every object at once and waits for all of them.
// Results keep the order of ids; failed fetches are left out.
func (l *Loader) fetchAll(ctx context.Context, ids []int) []models.ArtworkRecord {
	slots := make([]*models.ArtworkRecord, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			record, err := l.source.Object(ctx, id)
			if err != nil {
				slog.Debug("Skipping object", "object_id", id, "error", err)
				return nil
			}
			slots[i] = record
			return nil
		})
	}
	_ = g.Wait()

	records := make([]models.ArtworkRecord, 0, len(ids))
	for _, record := range slots {
		if record != nil {
			records = append(records, *record)
		}
	}
	return records
}
