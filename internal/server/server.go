// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"net/http"

	"github.com/neurodock/neurodock/internal/config"
	"github.com/neurodock/neurodock/internal/engine"
	"github.com/neurodock/neurodock/internal/registry"
	"github.com/neurodock/neurodock/internal/store"
)

// HTTPServer is the request gateway. It performs no business logic of its
// own: every route maps to exactly one store, engine or registry
// operation, and the tool-protocol routes go through the registry so both
// surfaces share handlers.
type HTTPServer struct {
	store    *store.Store
	engine   *engine.Engine
	registry *registry.Registry
	limits   config.LimitsConfig
}

// NewHTTPServer creates the gateway over an assembled store, engine and
// registry.
func NewHTTPServer(s *store.Store, eng *engine.Engine, reg *registry.Registry, limits config.LimitsConfig) *HTTPServer {
	return &HTTPServer{
		store:    s,
		engine:   eng,
		registry: reg,
		limits:   limits,
	}
}

// RegisterRoutes registers all HTTP routes on the mux.
func (h *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	// Liveness
	mux.HandleFunc("GET /health", h.HandleHealth)

	// REST resource surface
	mux.HandleFunc("GET /api/tools", h.HandleListTools)

	mux.HandleFunc("GET /api/memories", h.HandleListMemories)
	mux.HandleFunc("POST /api/memories", h.HandleCreateMemory)
	mux.HandleFunc("GET /api/memories/{id}", h.HandleGetMemory)
	mux.HandleFunc("DELETE /api/memories/{id}", h.HandleDeleteMemory)

	mux.HandleFunc("GET /api/tasks", h.HandleListTasks)
	mux.HandleFunc("POST /api/tasks", h.HandleCreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", h.HandleGetTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.HandleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.HandleDeleteTask)

	mux.HandleFunc("GET /api/projects", h.HandleListProjects)
	mux.HandleFunc("POST /api/projects", h.HandleCreateProject)
	mux.HandleFunc("GET /api/projects/{id}", h.HandleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.HandleUpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.HandleDeleteProject)

	// Tool-protocol surface
	mux.HandleFunc("POST /neuro-dock/memory", h.HandleProtocolMemory)
	mux.HandleFunc("POST /neuro-dock/task", h.HandleProtocolTask)
	mux.HandleFunc("POST /neuro-dock/context", h.HandleProtocolContext)
	mux.HandleFunc("POST /neuro-dock/editor-context", h.HandleProtocolEditorContext)
	mux.HandleFunc("GET /neuro-dock/tools", h.HandleProtocolTools)
	mux.HandleFunc("GET /neuro-dock/config", h.HandleProtocolConfig)
}

// Handler returns the fully wired handler with middleware applied.
func (h *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return RequestLogger(mux)
}
