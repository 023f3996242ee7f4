// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/neurodock/neurodock/internal/config"
	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/engine"
	"github.com/neurodock/neurodock/internal/registry"
	"github.com/neurodock/neurodock/internal/store"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	dbCfg := &database.Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		LogLevel:   logger.Silent,
	}

	db, err := database.Connect(dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	limits := config.LimitsConfig{DefaultMaxMemories: 10, MaxTaskPriority: 4}
	s := store.New(db, limits)
	eng := engine.New(s, config.RankingConfig{
		LexicalWeight: 10.0,
		RecencyWeight: 1.0,
		EditorWeight:  5.0,
		TypeWeights:   config.DefaultTypeWeights(),
	})
	reg, err := registry.BuildRegistry(s, eng, limits)
	require.NoError(t, err)
	return reg
}

func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func TestNewMCPServerRegistersTools(t *testing.T) {
	reg := newTestRegistry(t)

	srv := NewMCPServer(reg, "1.2.3")
	require.NotNil(t, srv)
}

func TestMCPToolHandlerSuccess(t *testing.T) {
	reg := newTestRegistry(t)
	handler := mcpToolHandler(reg, registry.ToolAddMemory)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"content": "created over mcp",
		"type":    "insight",
	}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError, "add_memory failed: %s", getResultText(result))

	var mem database.NeuroMemory
	require.NoError(t, json.Unmarshal([]byte(getResultText(result)), &mem))
	assert.NotEmpty(t, mem.ID)
	assert.Equal(t, "created over mcp", mem.Content)
	assert.Equal(t, database.MemoryTypeInsight, mem.Type)
}

func TestMCPToolHandlerValidationBecomesToolError(t *testing.T) {
	reg := newTestRegistry(t)
	handler := mcpToolHandler(reg, registry.ToolAddMemory)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	// Validation failures surface as tool-result errors, not protocol errors
	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, getResultText(result), "content")
}

func TestMCPToolHandlerContextResolution(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Invoke(ctx, registry.ToolAddMemory, map[string]interface{}{
		"content": "release notes draft",
	})
	require.NoError(t, err)

	handler := mcpToolHandler(reg, registry.ToolGetContext)
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"query": "release",
	}

	result, err := handler(ctx, request)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var memories []database.NeuroMemory
	require.NoError(t, json.Unmarshal([]byte(getResultText(result)), &memories))
	require.Len(t, memories, 1)
	assert.Equal(t, "release notes draft", memories[0].Content)
}
