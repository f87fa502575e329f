package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

// fakeCatalog is an httptest-backed TMDB stand-in. Handlers are registered
// per path; unregistered paths return 404. Call counts are tracked per path
// so tests can assert cache behavior.
type fakeCatalog struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	calls    map[string]int
	handlers map[string]http.HandlerFunc
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	f := &fakeCatalog{
		t:        t,
		calls:    make(map[string]int),
		handlers: make(map[string]http.HandlerFunc),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	h, ok := f.handlers[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
		return
	}
	h(w, r)
}

func (f *fakeCatalog) handle(path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = h
}

func (f *fakeCatalog) handleJSON(path string, v any) {
	f.handle(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(f.t, w, v)
	})
}

func (f *fakeCatalog) handleError(path string, status int) {
	f.handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"status_message":"upstream error"}`))
	})
}

func (f *fakeCatalog) callCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// newTestService wires a Service to a fakeCatalog with no collection store.
func newTestService(t *testing.T, f *fakeCatalog, opts ...Option) *Service {
	t.Helper()
	client := tmdb.NewClient("test-token", tmdb.WithBaseURL(f.server.URL))
	return New(client, nil, opts...)
}

// fixedRand returns a randInt that replays the given values in order, then
// keeps returning the last one.
func fixedRand(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		if v >= n {
			v = n - 1
		}
		return v
	}
}
