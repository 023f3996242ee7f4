// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/neurodock/neurodock/internal/errs"
	"github.com/neurodock/neurodock/internal/registry"
)

// The tool-protocol surface accepts raw JSON payloads and dispatches
// them through the registry, so schema validation and handler logic are
// shared with MCP invocation rather than duplicated here.

func (h *HTTPServer) invokeTool(w http.ResponseWriter, r *http.Request, tool string) {
	args := map[string]interface{}{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			writeError(w, errs.Validation("body", "invalid JSON body: %v", err))
			return
		}
	}

	result, err := h.registry.Invoke(r.Context(), tool, args)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

// HandleProtocolMemory creates a memory via the add_memory tool.
func (h *HTTPServer) HandleProtocolMemory(w http.ResponseWriter, r *http.Request) {
	h.invokeTool(w, r, registry.ToolAddMemory)
}

// HandleProtocolTask creates a task via the add_task tool.
func (h *HTTPServer) HandleProtocolTask(w http.ResponseWriter, r *http.Request) {
	h.invokeTool(w, r, registry.ToolAddTask)
}

// HandleProtocolContext resolves context without editor state.
func (h *HTTPServer) HandleProtocolContext(w http.ResponseWriter, r *http.Request) {
	h.invokeTool(w, r, registry.ToolGetContext)
}

// HandleProtocolEditorContext resolves context with editor state.
func (h *HTTPServer) HandleProtocolEditorContext(w http.ResponseWriter, r *http.Request) {
	h.invokeTool(w, r, registry.ToolGetEditorContext)
}

// HandleProtocolTools serves tool discovery on the protocol surface.
func (h *HTTPServer) HandleProtocolTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.registry.List())
}

// HandleProtocolConfig reports the registry configuration.
func (h *HTTPServer) HandleProtocolConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.registry.GetConfig())
}
