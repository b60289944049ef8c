/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package server exposes the operation registry over HTTP. The transport
// is thin plumbing: it enumerates contracts, decodes arguments, dispatches
// by key, and maps engine errors to status codes.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/suparena/alchemy"
	"github.com/suparena/alchemy/errors"
	"github.com/suparena/alchemy/operation"
	"github.com/suparena/alchemy/value"
)

// Server serves the operation surface of one engine.
type Server struct {
	engine *alchemy.Engine
	logger *slog.Logger
	addr   string
}

// New creates a Server for the engine at the given listen address.
func New(engine *alchemy.Engine, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, logger: logger, addr: addr}
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/operations", s.handleOperations)
	r.Post("/operations/{key}", s.handleCall)

	return r
}

// ListenAndServe runs the HTTP server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type argumentInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type fieldInfo struct {
	Kind   string `json:"kind"`
	Entity string `json:"entity"`
}

type operationInfo struct {
	Key       string         `json:"key"`
	Arguments []argumentInfo `json:"arguments"`
	Field     fieldInfo      `json:"field"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOperations enumerates the registered operations with their argument
// and field contracts, the same surface a schema-building collaborator
// consumes.
func (s *Server) handleOperations(w http.ResponseWriter, _ *http.Request) {
	registry := s.engine.Registry()

	infos := make([]operationInfo, 0)
	for _, key := range registry.Keys() {
		entry, ok := registry.Entry(key)
		if !ok {
			continue
		}

		args := make([]argumentInfo, 0)
		for _, a := range entry.Operation.Arguments() {
			args = append(args, argumentInfo{
				Name:     a.Name,
				Type:     string(a.Type),
				Required: a.Required,
			})
		}

		field := entry.Operation.Field(entry.Data)
		kind := "entity"
		if field.Kind == operation.FieldList {
			kind = "list"
		}

		infos = append(infos, operationInfo{
			Key:       key,
			Arguments: args,
			Field:     fieldInfo{Kind: kind, Entity: field.Entity.Name},
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"operations": infos})
}

type callRequest struct {
	Arguments map[string]interface{} `json:"arguments"`
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req callRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.engine.Call(r.Context(), key, operation.Arguments(req.Arguments))
	if err != nil {
		switch {
		case errors.IsUnknownOperation(err), errors.IsNotFound(err):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.IsValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("operation call failed", "operation", key, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]value.Value{"data": result})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
