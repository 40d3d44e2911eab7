package dashboard

import (
	"sync"

	"github.com/lehigh-university-libraries/artdash/internal/collection"
	"github.com/lehigh-university-libraries/artdash/internal/models"
)

// View is a point-in-time copy of the dashboard state
type View struct {
	Records []models.ArtworkRecord
	Loading bool
	// NoData is set once a load has finished with nothing to show
	NoData bool
}

// State owns the records currently shown by the dashboard
type State struct {
	records []models.ArtworkRecord
	loading bool
	loaded  bool
	current *collection.Token
	mu      sync.RWMutex
}

// NewState returns an empty state. Nothing has loaded yet, so it reports loading.
func NewState() *State {
	return &State{loading: true}
}

// Begin starts a new load, superseding whichever load was running before
func (s *State) Begin() *collection.Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Supersede()
	s.current = collection.NewToken()
	s.loading = true
	return s.current
}

// Commit replaces the visible records and ends the loading state, but only if
// tok belongs to the latest load and has not been superseded. The check and
// the write happen under the same lock, so a Begin cannot slip between them.
func (s *State) Commit(tok *collection.Token, records []models.ArtworkRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok != s.current || tok.Superseded() {
		return false
	}

	s.records = records
	s.loading = false
	s.loaded = true
	return true
}

// Close supersedes the running load so its result is never applied
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Supersede()
}

// Snapshot returns the current view. The record slice is shared and must not be modified.
func (s *State) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Records: s.records,
		Loading: s.loading,
		NoData:  s.loaded && !s.loading && len(s.records) == 0,
	}
}
