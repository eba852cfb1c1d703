package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeCMS is an in-memory stand-in for the content repository, speaking the
// subset of its REST API the application uses: list (with equality filter),
// create, patch, and ping, all wrapped in the {"data": ...} envelope.
type FakeCMS struct {
	t *testing.T

	mu          sync.Mutex
	collections map[string][]map[string]any
	nextID      int

	// FailWrites makes POST and PATCH return 500, for upstream-failure tests.
	FailWrites bool
	// FailReads makes GET return 500.
	FailReads bool

	srv *httptest.Server
}

// NewFakeCMS starts the fake repository and registers cleanup with t.
func NewFakeCMS(t *testing.T) *FakeCMS {
	t.Helper()
	f := &FakeCMS{
		t:           t,
		collections: map[string][]map[string]any{},
		nextID:      1,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// URL is the base URL to hand to cms.New.
func (f *FakeCMS) URL() string { return f.srv.URL }

// Seed appends items to a collection, assigning ids to items without one.
func (f *FakeCMS) Seed(collection string, items ...map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range items {
		if _, ok := item["id"]; !ok {
			item["id"] = f.nextID
			f.nextID++
		}
		f.collections[collection] = append(f.collections[collection], item)
	}
}

// Items returns a copy of a collection's current records.
func (f *FakeCMS) Items(collection string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, len(f.collections[collection]))
	copy(out, f.collections[collection])
	return out
}

func (f *FakeCMS) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/server/ping" {
		if f.FailReads {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("pong"))
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "items" {
		http.NotFound(w, r)
		return
	}
	collection := parts[1]

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet:
		if f.FailReads {
			http.Error(w, `{"errors":[{"message":"read failed"}]}`, http.StatusInternalServerError)
			return
		}
		f.list(w, r, collection)

	case r.Method == http.MethodPost:
		if f.FailWrites {
			http.Error(w, `{"errors":[{"message":"write failed"}]}`, http.StatusInternalServerError)
			return
		}
		var item map[string]any
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, ok := item["id"]; !ok {
			item["id"] = f.nextID
			f.nextID++
		}
		f.collections[collection] = append(f.collections[collection], item)
		writeData(w, item)

	case r.Method == http.MethodPatch && len(parts) == 3:
		if f.FailWrites {
			http.Error(w, `{"errors":[{"message":"write failed"}]}`, http.StatusInternalServerError)
			return
		}
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, item := range f.collections[collection] {
			if fmt.Sprint(item["id"]) != parts[2] {
				continue
			}
			for k, v := range patch {
				if v == nil {
					delete(item, k)
					continue
				}
				item[k] = v
			}
			writeData(w, item)
			return
		}
		http.NotFound(w, r)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *FakeCMS) list(w http.ResponseWriter, r *http.Request, collection string) {
	items := f.collections[collection]

	// Equality filters arrive as filter[field][_eq]=value.
	for key, vals := range r.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "][_eq]") || len(vals) == 0 {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, "filter["), "][_eq]")
		var matched []map[string]any
		for _, item := range items {
			if fmt.Sprint(item[field]) == vals[0] {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	if items == nil {
		items = []map[string]any{}
	}
	writeData(w, items)
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": data})
}
