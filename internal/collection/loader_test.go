package collection

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/artdash/internal/models"
	"go.uber.org/goleak"
)

// fakeSource serves canned department lists and objects and records every call
type fakeSource struct {
	mu          sync.Mutex
	departments map[int][]int
	listErrs    map[int]error
	objects     map[int]models.ArtworkRecord
	listCalls   []int
	objectCalls []int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		departments: map[int][]int{},
		listErrs:    map[int]error{},
		objects:     map[int]models.ArtworkRecord{},
	}
}

func (f *fakeSource) addObjects(ids ...int) {
	for _, id := range ids {
		f.objects[id] = models.ArtworkRecord{ID: id, Title: models.Ptr("Object")}
	}
}

func (f *fakeSource) DepartmentObjectIDs(_ context.Context, departmentID int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, departmentID)
	if err := f.listErrs[departmentID]; err != nil {
		return nil, err
	}
	return f.departments[departmentID], nil
}

func (f *fakeSource) Object(_ context.Context, objectID int) (*models.ArtworkRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objectCalls = append(f.objectCalls, objectID)
	record, ok := f.objects[objectID]
	if !ok {
		return nil, errors.New("not found")
	}
	return &record, nil
}

func ids(records []models.ArtworkRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestLoadShortCircuitsOnFirstDepartment(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1, 2, 3}
	src.departments[6] = []int{4, 5}
	src.addObjects(1, 2, 3, 4, 5)

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11, 6},
		SampleSize:  20,
		FallbackIDs: []int{9},
	})

	if !reflect.DeepEqual(ids(records), []int{1, 2, 3}) {
		t.Errorf("Expected records [1 2 3], got %v", ids(records))
	}
	if !reflect.DeepEqual(src.listCalls, []int{11}) {
		t.Errorf("Expected only department 11 to be listed, got %v", src.listCalls)
	}
}

func TestLoadTruncatesToSampleSize(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1, 2, 3, 4, 5}
	src.addObjects(1, 2, 3, 4, 5)

	records := NewLoader(src).Load(context.Background(), Request{Departments: []int{11}, SampleSize: 2})

	if !reflect.DeepEqual(ids(records), []int{1, 2}) {
		t.Errorf("Expected first two objects, got %v", ids(records))
	}
	if len(src.objectCalls) != 2 {
		t.Errorf("Expected 2 object fetches, got %d", len(src.objectCalls))
	}
}

func TestLoadSkipsFailingAndEmptyDepartments(t *testing.T) {
	src := newFakeSource()
	src.listErrs[11] = errors.New("boom")
	src.departments[6] = nil
	src.departments[13] = []int{100, 101}
	src.departments[1] = []int{7}
	src.addObjects(7)

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11, 6, 13, 1, 4},
		SampleSize:  20,
		FallbackIDs: []int{8},
	})

	if !reflect.DeepEqual(ids(records), []int{7}) {
		t.Errorf("Expected record 7 from department 1, got %v", ids(records))
	}
	if !reflect.DeepEqual(src.listCalls, []int{11, 6, 13, 1}) {
		t.Errorf("Expected departments tried in order until success, got %v", src.listCalls)
	}
}

func TestLoadDropsFailedObjects(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1, 2, 3}
	src.addObjects(1, 3)

	records := NewLoader(src).Load(context.Background(), Request{Departments: []int{11}, SampleSize: 20})

	if !reflect.DeepEqual(ids(records), []int{1, 3}) {
		t.Errorf("Expected [1 3], got %v", ids(records))
	}
}

func TestLoadFallsBack(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := newFakeSource()
	src.departments[11] = []int{}
	src.departments[6] = nil
	src.addObjects(436121, 459123)

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11, 6},
		SampleSize:  20,
		FallbackIDs: []int{436121, 437133, 459123},
	})

	if !reflect.DeepEqual(ids(records), []int{436121, 459123}) {
		t.Errorf("Expected surviving fallback objects, got %v", ids(records))
	}
	if !reflect.DeepEqual(src.listCalls, []int{11, 6}) {
		t.Errorf("Expected one list call per department, got %v", src.listCalls)
	}
	if len(src.objectCalls) != 3 {
		t.Errorf("Expected only the 3 fallback fetches, got %v", src.objectCalls)
	}
}

func TestLoadFallsBackWhenSampledObjectsAllFail(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1, 2}
	src.addObjects(50)

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11},
		SampleSize:  20,
		FallbackIDs: []int{50},
	})

	if !reflect.DeepEqual(ids(records), []int{50}) {
		t.Errorf("Expected fallback object 50, got %v", ids(records))
	}
}

func TestLoadReturnsEmptyWhenEverythingFails(t *testing.T) {
	src := newFakeSource()
	src.listErrs[11] = errors.New("offline")

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11},
		SampleSize:  20,
		FallbackIDs: []int{1, 2},
	})

	if records == nil || len(records) != 0 {
		t.Errorf("Expected an empty, non-nil result, got %v", records)
	}
}

func TestLoadNonPositiveSampleSize(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1}
	src.addObjects(1, 2)

	records := NewLoader(src).Load(context.Background(), Request{
		Departments: []int{11},
		SampleSize:  0,
		FallbackIDs: []int{2},
	})

	if !reflect.DeepEqual(ids(records), []int{2}) {
		t.Errorf("Expected fallback object 2, got %v", ids(records))
	}
}

func TestLoadIntoCommits(t *testing.T) {
	src := newFakeSource()
	src.departments[11] = []int{1}
	src.addObjects(1)

	var committed []models.ArtworkRecord
	ok := NewLoader(src).LoadInto(context.Background(), Request{Departments: []int{11}, SampleSize: 5}, NewToken(),
		func(tok *Token, records []models.ArtworkRecord) bool {
			if tok.Superseded() {
				return false
			}
			committed = records
			return true
		})

	if !ok {
		t.Fatal("Expected the load to be committed")
	}
	if !reflect.DeepEqual(ids(committed), []int{1}) {
		t.Errorf("Expected committed [1], got %v", ids(committed))
	}
}

// blockingSource holds every object fetch until release is closed
type blockingSource struct {
	*fakeSource
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingSource) Object(ctx context.Context, objectID int) (*models.ArtworkRecord, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return b.fakeSource.Object(ctx, objectID)
}

func TestLoadIntoDiscardsSupersededResult(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := &blockingSource{
		fakeSource: newFakeSource(),
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	src.departments[11] = []int{1, 2}
	src.addObjects(1, 2)

	tok := NewToken()
	committed := false
	done := make(chan bool)

	go func() {
		done <- NewLoader(src).LoadInto(context.Background(), Request{Departments: []int{11}, SampleSize: 5}, tok,
			func(tok *Token, _ []models.ArtworkRecord) bool {
				if tok.Superseded() {
					return false
				}
				committed = true
				return true
			})
	}()

	<-src.started
	tok.Supersede()
	close(src.release)

	if ok := <-done; ok {
		t.Error("Expected LoadInto to report no commit")
	}
	if committed {
		t.Error("Expected superseded result to be discarded")
	}
}

func TestNilTokenIsNeverSuperseded(t *testing.T) {
	var tok *Token
	tok.Supersede()
	if tok.Superseded() {
		t.Error("Expected nil token to never be superseded")
	}
}

// barrierSource holds each object fetch until every expected fetch has started,
// so a load only finishes if the whole batch is requested at once
type barrierSource struct {
	*fakeSource
	arrived sync.WaitGroup
}

func (b *barrierSource) Object(ctx context.Context, objectID int) (*models.ArtworkRecord, error) {
	b.arrived.Done()
	b.arrived.Wait()
	return b.fakeSource.Object(ctx, objectID)
}

func TestLoadIssuesBatchFetchesTogether(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "department sample",
			req:  Request{Departments: []int{11}, SampleSize: 4},
		},
		{
			name: "fallback list",
			req:  Request{Departments: []int{99}, SampleSize: 4, FallbackIDs: []int{1, 2, 3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &barrierSource{fakeSource: newFakeSource()}
			src.departments[11] = []int{1, 2, 3, 4, 5}
			src.addObjects(1, 2, 3, 4, 5)
			src.arrived.Add(4)

			done := make(chan []models.ArtworkRecord, 1)
			go func() {
				done <- NewLoader(src).Load(context.Background(), tt.req)
			}()

			select {
			case records := <-done:
				if !reflect.DeepEqual(ids(records), []int{1, 2, 3, 4}) {
					t.Errorf("Expected [1 2 3 4], got %v", ids(records))
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Expected all fetches in the batch to be in flight at once")
			}
		})
	}
}
