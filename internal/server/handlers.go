// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"net/http"

	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/store"
)

// HandleHealth reports liveness and the active schema version.
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":         "OK",
		"schema_version": database.SchemaVersion,
	})
}

// HandleListTools serves tool discovery on the REST surface.
func (h *HTTPServer) HandleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.registry.List())
}

// --- Memories ---

func (h *HTTPServer) HandleListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.store.ListMemories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, memories)
}

func (h *HTTPServer) HandleCreateMemory(w http.ResponseWriter, r *http.Request) {
	var in store.CreateMemoryInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	mem, err := h.store.CreateMemory(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, mem)
}

func (h *HTTPServer) HandleGetMemory(w http.ResponseWriter, r *http.Request) {
	mem, err := h.store.GetMemory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, mem)
}

func (h *HTTPServer) HandleDeleteMemory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteMemory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"deleted": id})
}

// --- Tasks ---

func (h *HTTPServer) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tasks)
}

func (h *HTTPServer) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	var in store.CreateTaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.store.CreateTask(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, task)
}

func (h *HTTPServer) HandleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.store.GetTask(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, task)
}

func (h *HTTPServer) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateTaskInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.store.UpdateTask(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, task)
}

func (h *HTTPServer) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"deleted": id})
}

// --- Projects ---

func (h *HTTPServer) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, projects)
}

func (h *HTTPServer) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in store.CreateProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.store.CreateProject(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, project)
}

func (h *HTTPServer) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, project)
}

func (h *HTTPServer) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var in store.UpdateProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.store.UpdateProject(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, project)
}

func (h *HTTPServer) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteProject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"deleted": id})
}
