// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package registry holds the catalog of callable tools. The registry is
// built once during bootstrap and never mutated afterwards, so request
// handlers read it without synchronization.
package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/errs"
)

// Handler executes a tool against an already-validated payload.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Tool pairs an MCP tool definition with its output schema and handler.
type Tool struct {
	Def          mcp.Tool
	OutputSchema map[string]interface{}
	Handler      Handler
}

// Descriptor is the discovery-surface view of a registered tool.
type Descriptor struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	InputSchema  mcp.ToolInputSchema    `json:"input_schema"`
	OutputSchema map[string]interface{} `json:"output_schema"`
}

// Config reports process-wide registration state.
type Config struct {
	ToolCount     int             `json:"tool_count"`
	SchemaVersion string          `json:"schema_version"`
	Capabilities  map[string]bool `json:"capabilities"`
}

// Registry is an ordered, read-only catalog of tools.
type Registry struct {
	tools  []Tool
	byName map[string]*Tool
}

// New builds a registry from tools in registration order. Duplicate names
// are a bootstrap error, not a runtime condition.
func New(tools []Tool) (*Registry, error) {
	r := &Registry{
		tools:  tools,
		byName: make(map[string]*Tool, len(tools)),
	}
	for i := range tools {
		name := tools[i].Def.Name
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("duplicate tool registration: %s", name)
		}
		r.byName[name] = &r.tools[i]
	}
	return r, nil
}

// List returns descriptors in stable registration order.
func (r *Registry) List() []Descriptor {
	descriptors := make([]Descriptor, len(r.tools))
	for i, t := range r.tools {
		descriptors[i] = Descriptor{
			Name:         t.Def.Name,
			Description:  t.Def.Description,
			InputSchema:  t.Def.InputSchema,
			OutputSchema: t.OutputSchema,
		}
	}
	return descriptors
}

// Tools returns the registered tools in order, for MCP registration.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Invoke validates the payload against the tool's input schema and
// dispatches to its handler.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	tool, ok := r.byName[name]
	if !ok {
		return nil, errs.UnknownTool(name)
	}

	if err := validateArgs(tool.Def.InputSchema, args); err != nil {
		return nil, err
	}

	return tool.Handler(ctx, args)
}

// GetConfig returns the registry configuration snapshot.
func (r *Registry) GetConfig() Config {
	return Config{
		ToolCount:     len(r.tools),
		SchemaVersion: database.SchemaVersion,
		Capabilities: map[string]bool{
			"memories":       true,
			"tasks":          true,
			"projects":       true,
			"context":        true,
			"editor_context": true,
		},
	}
}

// validateArgs checks required fields and primitive types against the
// declared schema and rejects fields the schema does not declare.
func validateArgs(schema mcp.ToolInputSchema, args map[string]interface{}) error {
	for _, required := range schema.Required {
		if _, ok := args[required]; !ok {
			return errs.Validation(required, "missing required field")
		}
	}

	for name, value := range args {
		propRaw, declared := schema.Properties[name]
		if !declared {
			return errs.Validation(name, "unknown field")
		}
		prop, ok := propRaw.(map[string]interface{})
		if !ok {
			continue
		}
		declaredType, _ := prop["type"].(string)
		if declaredType == "" || value == nil {
			continue
		}
		if !matchesType(declaredType, value) {
			return errs.Validation(name, "expected %s", declaredType)
		}
	}

	return nil
}

// matchesType checks a JSON-decoded value against a JSON schema type name.
func matchesType(declaredType string, value interface{}) bool {
	switch declaredType {
	case "string":
		_, ok := value.(string)
		return ok
	case "number", "integer":
		switch value.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		switch value.(type) {
		case []interface{}, []string:
			return true
		}
		return false
	case "object":
		_, ok := value.(map[string]interface{})
		return ok
	default:
		return true
	}
}
