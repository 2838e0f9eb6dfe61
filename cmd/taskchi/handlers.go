package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/internal/taskstore"
)

// server holds the task store and exposes the demo API.
type server struct {
	store *taskstore.Store
}

func newServer(store *taskstore.Store) *server {
	return &server{store: store}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Get("/{id}", s.handleGetTask)
		r.Put("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})
	r.Post("/convert", s.handleConvert)

	return r
}

type createTaskRequest struct {
	Title string `json:"title"`
}

type updateTaskRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type convertRequest struct {
	Value any    `json:"value"`
	Case  string `json:"case"`
}

type convertResponse struct {
	Case   string `json:"case"`
	Output string `json:"output"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var body createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Warn("create task: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.store.Create(body.Title)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var body updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Warn("update task: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.store.Update(chi.URLParam(r, "id"), body.Title, body.Done)
	switch {
	case errors.Is(err, taskstore.ErrNotFound):
		writeError(w, http.StatusNotFound, "task not found")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConvert exposes the case converters on decoded JSON. The value field
// is deliberately any: a non-string JSON value exercises the converters'
// strict input contract and maps to a 400.
func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var body convertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Warn("convert: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	variant, err := caseconv.ParseVariant(body.Case)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	output, err := caseconv.Convert(body.Value, variant)
	if err != nil {
		if errors.Is(err, caseerrors.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("convert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Case:   variant.String(),
		Output: output,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
