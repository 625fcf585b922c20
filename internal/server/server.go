// Package server exposes the form, its progress, and the rendered document
// over a loopback-only HTTP API. It is an adapter over the same pure
// functions the CLI and TUI use; all state changes flow through the store.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jerops/prd-generator/internal/form"
	"github.com/jerops/prd-generator/internal/render"
	"github.com/jerops/prd-generator/internal/sqlite"
	"github.com/jerops/prd-generator/internal/store"
	"github.com/jerops/prd-generator/internal/suggest"
	"github.com/jerops/prd-generator/pkg/httpapi"
	"github.com/jerops/prd-generator/pkg/netguard"
)

type Server struct {
	mu    sync.Mutex
	state form.State
	st    *store.Store
	prds  *sqlite.Store
	mux   *http.ServeMux
	srv   *http.Server
	log   *slog.Logger
}

// New builds a server over the given persistence. prds may be nil; the
// snapshot endpoints then report not found.
func New(st *store.Store, prds *sqlite.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{st: st, prds: prds, mux: http.NewServeMux(), log: log}
	state, err := st.Load()
	if err != nil && !errors.Is(err, store.ErrNoState) {
		log.Warn("saved state unreadable, starting fresh", "error", err)
	}
	s.state = state
	s.routes()
	return s
}

// Handler returns the routed handler with middleware applied, for tests and
// embedding.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

func (s *Server) ListenAndServe(addr string) error {
	if err := netguard.EnsureLocalOnly(addr); err != nil {
		return err
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	s.log.Info("listening", "addr", addr)
	return s.srv.ListenAndServe()
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/form", s.handleForm)
	s.mux.HandleFunc("/api/form/progress", s.handleProgress)
	s.mux.HandleFunc("/api/document", s.handleDocument)
	s.mux.HandleFunc("/api/suggest/", s.handleSuggest)
	s.mux.HandleFunc("/api/prds", s.handlePRDs)
	s.mux.HandleFunc("/api/prds/", s.handlePRD)
}

// snapshot returns a copy of the current state under the lock.
func (s *Server) snapshot() form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// replace swaps in a new state and persists it. A failed save is logged but
// does not fail the request; the in-memory state is authoritative for the
// session and the next successful save wins.
func (s *Server) replace(next form.State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	if err := s.st.Save(next); err != nil {
		s.log.Warn("state save failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	httpapi.WriteOK(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httpapi.WriteOK(w, http.StatusOK, s.snapshot())
	case http.MethodPut:
		var next form.State
		if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "malformed form state", err.Error())
			return
		}
		s.replace(next.Normalize())
		httpapi.WriteOK(w, http.StatusOK, s.snapshot())
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	state := s.snapshot()
	httpapi.WriteOK(w, http.StatusOK, map[string]any{
		"progress":    form.Evaluate(state),
		"sections":    form.CheckAll(state),
		"fieldErrors": form.FieldErrors(state),
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	state := s.snapshot()
	httpapi.WriteOK(w, http.StatusOK, map[string]string{
		"filename": render.Filename(state.ProjectName),
		"markdown": render.Document(state),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	rule := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/suggest/"), "/")
	state := s.snapshot()
	switch rule {
	case "projecttype":
		state = suggest.ApplyProjectType(state)
	case "platform":
		state = suggest.ApplyPlatform(state)
	case "techstack":
		state = suggest.ApplyTechStack(state)
	case "technical":
		state = suggest.Technical(state)
	default:
		httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "unknown suggestion rule", rule)
		return
	}
	s.replace(state)
	httpapi.WriteOK(w, http.StatusOK, state)
}

type savePRDRequest struct {
	Title string      `json:"title"`
	Data  *form.State `json:"data,omitempty"`
}

func (s *Server) handlePRDs(w http.ResponseWriter, r *http.Request) {
	if s.prds == nil {
		httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "document store not enabled", nil)
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, err := s.prds.ListPRDs()
		if err != nil {
			s.log.Error("list prds failed", "error", err)
			httpapi.WriteError(w, http.StatusInternalServerError, httpapi.ErrInternal, "failed to list documents", nil)
			return
		}
		httpapi.WriteOK(w, http.StatusOK, list)
	case http.MethodPost:
		var req savePRDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "malformed request", err.Error())
			return
		}
		data := s.snapshot()
		if req.Data != nil {
			data = req.Data.Normalize()
		}
		title := req.Title
		if title == "" {
			title = data.ProjectName
		}
		if title == "" {
			title = "Untitled Project"
		}
		saved, err := s.prds.SavePRD(title, nil, data)
		if err != nil {
			s.log.Error("save prd failed", "error", err)
			httpapi.WriteError(w, http.StatusInternalServerError, httpapi.ErrInternal, "failed to save document", nil)
			return
		}
		httpapi.WriteOK(w, http.StatusCreated, saved)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handlePRD(w http.ResponseWriter, r *http.Request) {
	if s.prds == nil {
		httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "document store not enabled", nil)
		return
	}
	idText := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/prds/"), "/")
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "invalid document id", idText)
		return
	}
	switch r.Method {
	case http.MethodGet:
		prd, err := s.prds.GetPRD(id)
		if err != nil {
			if errors.Is(err, sqlite.ErrNotFound) {
				httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "document not found", id)
				return
			}
			s.log.Error("load prd failed", "id", id, "error", err)
			httpapi.WriteError(w, http.StatusInternalServerError, httpapi.ErrInternal, "failed to load document", nil)
			return
		}
		httpapi.WriteOK(w, http.StatusOK, prd)
	case http.MethodPut:
		var req savePRDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, httpapi.ErrInvalidRequest, "malformed request", err.Error())
			return
		}
		data := s.snapshot()
		if req.Data != nil {
			data = req.Data.Normalize()
		}
		if err := s.prds.UpdatePRD(id, req.Title, data); err != nil {
			if errors.Is(err, sqlite.ErrNotFound) {
				httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "document not found", id)
				return
			}
			s.log.Error("update prd failed", "id", id, "error", err)
			httpapi.WriteError(w, http.StatusInternalServerError, httpapi.ErrInternal, "failed to update document", nil)
			return
		}
		httpapi.WriteOK(w, http.StatusOK, map[string]int64{"updated": id})
	case http.MethodDelete:
		if err := s.prds.DeletePRD(id); err != nil {
			if errors.Is(err, sqlite.ErrNotFound) {
				httpapi.WriteError(w, http.StatusNotFound, httpapi.ErrNotFound, "document not found", id)
				return
			}
			s.log.Error("delete prd failed", "id", id, "error", err)
			httpapi.WriteError(w, http.StatusInternalServerError, httpapi.ErrInternal, "failed to delete document", nil)
			return
		}
		httpapi.WriteOK(w, http.StatusOK, map[string]int64{"deleted": id})
	default:
		methodNotAllowed(w)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	httpapi.WriteError(w, http.StatusMethodNotAllowed, httpapi.ErrInvalidRequest, "method not allowed", nil)
}
