package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jerops/prd-generator/internal/form"
	"github.com/jerops/prd-generator/internal/sqlite"
	"github.com/jerops/prd-generator/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "state.json"))
	db, err := sqlite.Open(filepath.Join(dir, "prds.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, sqlite.NewStore(db), log)
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func do(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	code, env := do(t, s.Handler(), http.MethodGet, "/health", nil)
	if code != http.StatusOK || !env.OK {
		t.Fatalf("health: code=%d ok=%v", code, env.OK)
	}
}

func TestFormRoundTrip(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	next := form.NewState()
	next.ProjectName = "Inventory Tracker"
	next.ProjectType = form.ProjectBrowser

	code, _ := do(t, h, http.MethodPut, "/api/form", next)
	if code != http.StatusOK {
		t.Fatalf("put form: code=%d", code)
	}

	code, env := do(t, h, http.MethodGet, "/api/form", nil)
	if code != http.StatusOK {
		t.Fatalf("get form: code=%d", code)
	}
	var got form.State
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if got.ProjectName != "Inventory Tracker" || got.ProjectType != form.ProjectBrowser {
		t.Errorf("state not round-tripped: %+v", got)
	}
}

func TestPutFormNormalizes(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	// A sparse body must come back with collections and time defaults filled.
	req := httptest.NewRequest(http.MethodPut, "/api/form", bytes.NewBufferString(`{"projectName":"Sparse"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put: code=%d", rec.Code)
	}

	_, env := do(t, h, http.MethodGet, "/api/form", nil)
	var got form.State
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CoreFeatures == nil || got.TimeUnit != "minutes" {
		t.Errorf("state not normalized: features=%v timeUnit=%q", got.CoreFeatures, got.TimeUnit)
	}
}

func TestProgressEndpoint(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	_, env := do(t, h, http.MethodGet, "/api/form/progress", nil)
	var got struct {
		Progress form.Progress `json:"progress"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Progress.Percent != 0 {
		t.Errorf("empty form percent = %d, want 0", got.Progress.Percent)
	}
}

func TestDocumentEndpoint(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	next := form.NewState()
	next.ProjectName = "Fleet Manager"
	do(t, h, http.MethodPut, "/api/form", next)

	_, env := do(t, h, http.MethodGet, "/api/document", nil)
	var got map[string]string
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["filename"] != "fleet-manager-prd.md" {
		t.Errorf("filename = %q", got["filename"])
	}
	if !bytes.Contains([]byte(got["markdown"]), []byte("# Project Requirements Document: Fleet Manager")) {
		t.Errorf("markdown missing title: %q", got["markdown"][:80])
	}
}

func TestSuggestEndpoint(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	next := form.NewState()
	next.TargetUsers = []form.TargetUser{form.UserYourself}
	do(t, h, http.MethodPut, "/api/form", next)

	code, env := do(t, h, http.MethodPost, "/api/suggest/projecttype", nil)
	if code != http.StatusOK {
		t.Fatalf("suggest: code=%d", code)
	}
	var got form.State
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ProjectType != form.ProjectBrowser {
		t.Errorf("suggested type = %q, want browser", got.ProjectType)
	}

	code, env = do(t, h, http.MethodPost, "/api/suggest/nonsense", nil)
	if code != http.StatusNotFound || env.OK {
		t.Errorf("unknown rule: code=%d ok=%v", code, env.OK)
	}
}

func TestPRDEndpoints(t *testing.T) {
	s := testServer(t)
	h := s.Handler()

	next := form.NewState()
	next.ProjectName = "Saved Project"
	do(t, h, http.MethodPut, "/api/form", next)

	code, env := do(t, h, http.MethodPost, "/api/prds", map[string]string{})
	if code != http.StatusCreated {
		t.Fatalf("save: code=%d", code)
	}
	var saved sqlite.PRD
	if err := json.Unmarshal(env.Data, &saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if saved.Title != "Saved Project" {
		t.Errorf("title defaulted to %q, want project name", saved.Title)
	}

	code, env = do(t, h, http.MethodGet, "/api/prds", nil)
	if code != http.StatusOK {
		t.Fatalf("list: code=%d", code)
	}
	var list []sqlite.Summary
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}

	code, _ = do(t, h, http.MethodPut, "/api/prds/1", map[string]string{"title": "Renamed"})
	if code != http.StatusOK {
		t.Fatalf("update: code=%d", code)
	}
	_, env = do(t, h, http.MethodGet, "/api/prds/1", nil)
	var got sqlite.PRD
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("title after update = %q", got.Title)
	}

	code, _ = do(t, h, http.MethodDelete, "/api/prds/999", nil)
	if code != http.StatusNotFound {
		t.Errorf("delete missing: code=%d, want 404", code)
	}
	code, _ = do(t, h, http.MethodDelete, "/api/prds/1", nil)
	if code != http.StatusOK {
		t.Errorf("delete: code=%d", code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(t)
	code, env := do(t, s.Handler(), http.MethodDelete, "/api/form", nil)
	if code != http.StatusMethodNotAllowed || env.OK {
		t.Errorf("code=%d ok=%v", code, env.OK)
	}
}
