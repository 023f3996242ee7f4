// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolMemory(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/memory", map[string]string{
		"content": "protocol-created memory",
		"type":    "decision",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeMap(t, raw)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Visible on the REST surface under the same id
	resp, raw = doJSON(t, ts, http.MethodGet, "/api/memories/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "protocol-created memory", decodeMap(t, raw)["content"])
}

func TestProtocolMemoryRejectsUnknownField(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/memory", map[string]interface{}{
		"content": "fine",
		"extra":   true,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errObj, _ := decodeMap(t, raw)["error"].(map[string]interface{})
	require.NotNil(t, errObj)
	assert.Equal(t, "validation_error", errObj["kind"])
	assert.Equal(t, "extra", errObj["field"])
}

func TestProtocolTask(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/task", map[string]interface{}{
		"title":    "protocol task",
		"priority": 0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	task := decodeMap(t, raw)
	assert.Equal(t, float64(0), task["priority"])
	assert.Equal(t, "open", task["status"])
}

func TestProtocolTaskMissingTitle(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/task", map[string]interface{}{
		"priority": 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errObj, _ := decodeMap(t, raw)["error"].(map[string]interface{})
	require.NotNil(t, errObj)
	assert.Equal(t, "title", errObj["field"])
}

func TestProtocolContext(t *testing.T) {
	ts := newTestServer(t)

	for _, content := range []string{"deploy checklist for staging", "team lunch friday"} {
		resp, _ := doJSON(t, ts, http.MethodPost, "/neuro-dock/memory", map[string]string{"content": content})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/context", map[string]interface{}{
		"query":        "deploy staging",
		"max_memories": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var memories []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &memories))
	require.Len(t, memories, 1)
	assert.Equal(t, "deploy checklist for staging", memories[0]["content"])
}

func TestProtocolContextRejectsNonPositiveBound(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/context", map[string]interface{}{
		"query":        "anything",
		"max_memories": 0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errObj, _ := decodeMap(t, raw)["error"].(map[string]interface{})
	require.NotNil(t, errObj)
	assert.Equal(t, "max_memories", errObj["field"])
}

func TestProtocolContextEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	// No body at all falls back to the empty query and default bound
	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/context", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var memories []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &memories))
	assert.Empty(t, memories)
}

func TestProtocolEditorContext(t *testing.T) {
	ts := newTestServer(t)

	for _, content := range []string{"refactor notes for engine.go", "unrelated trivia"} {
		resp, _ := doJSON(t, ts, http.MethodPost, "/neuro-dock/memory", map[string]string{"content": content})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, ts, http.MethodPost, "/neuro-dock/editor-context", map[string]interface{}{
		"current_file": "internal/engine/engine.go",
		"cursor_line":  42,
		"open_files":   []string{"internal/engine/score.go"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var memories []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &memories))
	require.Len(t, memories, 2)
	assert.Equal(t, "refactor notes for engine.go", memories[0]["content"])
}

func TestProtocolMemoryEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/neuro-dock/memory", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// add_memory requires content, so an empty payload is a validation error
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtocolConfig(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doJSON(t, ts, http.MethodGet, "/neuro-dock/config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cfg := decodeMap(t, raw)
	assert.Equal(t, float64(6), cfg["tool_count"])
	assert.NotEmpty(t, cfg["schema_version"])

	capabilities, ok := cfg["capabilities"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, capabilities["context"])
}
