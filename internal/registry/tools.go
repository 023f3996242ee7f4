// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package registry

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neurodock/neurodock/internal/config"
	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/engine"
	"github.com/neurodock/neurodock/internal/store"
)

// Tool names. These double as the dispatch targets of the tool-protocol
// gateway, so both surfaces go through the same handlers.
const (
	ToolAddMemory        = "add_memory"
	ToolAddTask          = "add_task"
	ToolAddProject       = "add_project"
	ToolGetContext       = "get_context"
	ToolGetEditorContext = "get_editor_context"
	ToolListMemories     = "list_memories"
)

// BuildRegistry assembles the full tool catalog over the shared store and
// engine. Every handler delegates to the same operations the REST
// surface calls, which is what keeps the two surfaces equivalent.
func BuildRegistry(s *store.Store, eng *engine.Engine, limits config.LimitsConfig) (*Registry, error) {
	return New([]Tool{
		newAddMemoryTool(s),
		newAddTaskTool(s),
		newAddProjectTool(s),
		newGetContextTool(eng, limits),
		newGetEditorContextTool(eng, limits),
		newListMemoriesTool(s),
	})
}

func newAddMemoryTool(s *store.Store) Tool {
	return Tool{
		Def: mcp.NewTool(ToolAddMemory,
			mcp.WithDescription("Store a new memory. Memories are immutable facts or notes; use type 'decision' or 'insight' for entries that should outrank plain notes in context resolution."),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The text to remember"),
			),
			mcp.WithString("type",
				mcp.Description("Memory type: "+strings.Join(database.ValidMemoryTypes(), ", ")+". Default: normal"),
			),
			mcp.WithString("source",
				mcp.Description("Where this memory came from (e.g. 'conversation', 'editor')"),
			),
		),
		OutputSchema: entitySchema("memory"),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return s.CreateMemory(ctx, store.CreateMemoryInput{
				Content: getString(args, "content"),
				Type:    getString(args, "type"),
				Source:  getString(args, "source"),
			})
		},
	}
}

func newAddTaskTool(s *store.Store) Tool {
	return Tool{
		Def: mcp.NewTool(ToolAddTask,
			mcp.WithDescription("Create a task. Priority runs 0 (most urgent) to the configured maximum; out-of-range values are rejected."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Short task title"),
			),
			mcp.WithString("description",
				mcp.Description("Longer task description"),
			),
			mcp.WithNumber("priority",
				mcp.Description("Urgency, 0 (most urgent) to the configured maximum. Default: 2"),
			),
			mcp.WithString("project_id",
				mcp.Description("Project this task belongs to. Not existence-checked."),
			),
		),
		OutputSchema: entitySchema("task"),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			in := store.CreateTaskInput{
				Title:       getString(args, "title"),
				Description: getString(args, "description"),
				ProjectID:   getString(args, "project_id"),
			}
			if priority, ok := getNumber(args, "priority"); ok {
				p := int(priority)
				in.Priority = &p
			}
			return s.CreateTask(ctx, in)
		},
	}
}

func newAddProjectTool(s *store.Store) Tool {
	return Tool{
		Def: mcp.NewTool(ToolAddProject,
			mcp.WithDescription("Create a project that tasks can reference by id."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Project name"),
			),
			mcp.WithString("description",
				mcp.Description("Project description"),
			),
		),
		OutputSchema: entitySchema("project"),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return s.CreateProject(ctx, store.CreateProjectInput{
				Name:        getString(args, "name"),
				Description: getString(args, "description"),
			})
		},
	}
}

func newGetContextTool(eng *engine.Engine, limits config.LimitsConfig) Tool {
	return Tool{
		Def: mcp.NewTool(ToolGetContext,
			mcp.WithDescription("Resolve the memories most relevant to a query. An empty query returns the recency-only ranking."),
			mcp.WithString("query",
				mcp.Description("Free-text query. May be empty."),
			),
			mcp.WithNumber("max_memories",
				mcp.Description("Result bound. Must be positive. Default: configured limit."),
			),
		),
		OutputSchema: memoriesSchema(),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			maxMemories := limits.DefaultMaxMemories
			if n, ok := getNumber(args, "max_memories"); ok {
				maxMemories = int(n)
			}
			return eng.Resolve(ctx, getString(args, "query"), maxMemories, nil)
		},
	}
}

func newGetEditorContextTool(eng *engine.Engine, limits config.LimitsConfig) Tool {
	return Tool{
		Def: mcp.NewTool(ToolGetEditorContext,
			mcp.WithDescription("Resolve relevant memories with an additional boost for entries referencing the active or open files."),
			mcp.WithString("query",
				mcp.Description("Free-text query. May be empty."),
			),
			mcp.WithNumber("max_memories",
				mcp.Description("Result bound. Must be positive. Default: configured limit."),
			),
			mcp.WithString("current_file",
				mcp.Description("Path of the file being edited"),
			),
			mcp.WithNumber("cursor_line",
				mcp.Description("Cursor line in the current file"),
			),
			mcp.WithArray("open_files",
				mcp.Description("Paths of other open files"),
			),
		),
		OutputSchema: memoriesSchema(),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			maxMemories := limits.DefaultMaxMemories
			if n, ok := getNumber(args, "max_memories"); ok {
				maxMemories = int(n)
			}

			editor := &engine.EditorState{
				File:      getString(args, "current_file"),
				OpenFiles: getStringSlice(args, "open_files"),
			}
			if line, ok := getNumber(args, "cursor_line"); ok {
				editor.CursorLine = int(line)
			}

			return eng.Resolve(ctx, getString(args, "query"), maxMemories, editor)
		},
	}
}

func newListMemoriesTool(s *store.Store) Tool {
	return Tool{
		Def: mcp.NewTool(ToolListMemories,
			mcp.WithDescription("List every stored memory in creation order. Use when exploring what is stored."),
		),
		OutputSchema: memoriesSchema(),
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return s.ListMemories(ctx)
		},
	}
}

// entitySchema describes a single created entity result.
func entitySchema(kind string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "The stored " + kind + ", including its assigned id",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{"type": "string"},
		},
	}
}

// memoriesSchema describes an ordered memory list result.
func memoriesSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Memories ordered by descending relevance",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id":         map[string]interface{}{"type": "string"},
				"content":    map[string]interface{}{"type": "string"},
				"type":       map[string]interface{}{"type": "string"},
				"source":     map[string]interface{}{"type": "string"},
				"created_at": map[string]interface{}{"type": "string"},
			},
		},
	}
}

// getString reads an optional string argument, returning "" when absent.
func getString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// getNumber reads an optional numeric argument. JSON decoding produces
// float64; direct map construction in tests may use int.
func getNumber(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// getStringSlice reads an optional array-of-strings argument.
func getStringSlice(args map[string]interface{}, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
