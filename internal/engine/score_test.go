// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"deploy", "staging"}, tokenize("Deploy  STAGING!"))
	assert.Equal(t, []string{"fix", "bug", "42"}, tokenize("fix/bug #42"))
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("  ...  "))
}

func TestLexicalOverlap(t *testing.T) {
	content := "we should deploy the staging cluster tonight"

	assert.Equal(t, 1.0, lexicalOverlap([]string{"deploy"}, content))
	assert.Equal(t, 0.5, lexicalOverlap([]string{"deploy", "production"}, content))
	assert.Equal(t, 0.0, lexicalOverlap([]string{"kubernetes"}, content))
	// No terms contributes zero to every candidate equally
	assert.Equal(t, 0.0, lexicalOverlap(nil, content))
}

func TestRecencyScoreBands(t *testing.T) {
	newest := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2.0, recencyScore(newest, newest))
	assert.Equal(t, 2.0, recencyScore(newest.Add(-23*time.Hour), newest))
	assert.Equal(t, 1.5, recencyScore(newest.Add(-3*24*time.Hour), newest))
	assert.Equal(t, 1.0, recencyScore(newest.Add(-20*24*time.Hour), newest))
	assert.Equal(t, 0.5, recencyScore(newest.Add(-90*24*time.Hour), newest))
}

func TestMatchesEditor(t *testing.T) {
	editor := &EditorState{
		File:      "internal/server/handlers.go",
		OpenFiles: []string{"cmd/server/main.go"},
	}

	assert.True(t, matchesEditor("bug in internal/server/handlers.go", editor))
	assert.True(t, matchesEditor("handlers.go needs a rewrite", editor))
	assert.True(t, matchesEditor("main.go wires everything together", editor))
	assert.False(t, matchesEditor("completely unrelated note", editor))
	assert.False(t, matchesEditor("anything", &EditorState{}))
}
