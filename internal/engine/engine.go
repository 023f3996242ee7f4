// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package engine implements the context engine: given a free-text query
// and a result bound, it scores every stored memory and returns the
// top-ranked subset. Resolution is read-only and deterministic: repeated
// calls against an unchanged store return identical ordered results.
package engine

import (
	"context"
	"sort"

	"github.com/neurodock/neurodock/internal/config"
	"github.com/neurodock/neurodock/internal/database"
	"github.com/neurodock/neurodock/internal/errs"
	"github.com/neurodock/neurodock/internal/store"
)

// EditorState carries the caller's editor context for editor-aware
// resolution. A nil EditorState never changes the plain-query ranking.
type EditorState struct {
	File       string   `json:"file"`
	CursorLine int      `json:"cursor_line,omitempty"`
	OpenFiles  []string `json:"open_files,omitempty"`
}

// Engine ranks stored memories against context queries.
type Engine struct {
	store   *store.Store
	ranking config.RankingConfig
}

// New creates an engine reading from the given store with the given
// scoring coefficients.
func New(s *store.Store, ranking config.RankingConfig) *Engine {
	return &Engine{
		store:   s,
		ranking: ranking,
	}
}

// scored pairs a candidate memory with its computed relevance score.
type scored struct {
	memory database.NeuroMemory
	score  float64
}

// Resolve returns up to maxMemories memories ranked by relevance to the
// query. An empty query yields the recency-only ranking. The result is
// sorted by score descending, then creation time descending, then id
// ascending, so the order is total and never depends on map iteration.
func (e *Engine) Resolve(ctx context.Context, query string, maxMemories int, editor *EditorState) ([]database.NeuroMemory, error) {
	if maxMemories <= 0 {
		return nil, errs.Validation("max_memories", "max_memories must be positive, got %d", maxMemories)
	}

	candidates, err := e.store.ListMemories(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []database.NeuroMemory{}, nil
	}

	terms := tokenize(query)

	// Recency is measured relative to the newest candidate rather than
	// the wall clock, so a fixed store always produces the same scores.
	newest := candidates[0].CreatedAt
	for _, m := range candidates[1:] {
		if m.CreatedAt.After(newest) {
			newest = m.CreatedAt
		}
	}

	results := make([]scored, 0, len(candidates))
	for _, mem := range candidates {
		s := e.ranking.LexicalWeight * lexicalOverlap(terms, mem.Content)
		s += e.ranking.TypeWeight(mem.Type)
		s += e.ranking.RecencyWeight * recencyScore(mem.CreatedAt, newest)
		if editor != nil && matchesEditor(mem.Content, editor) {
			s += e.ranking.EditorWeight
		}
		results = append(results, scored{memory: mem, score: s})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		if !results[i].memory.CreatedAt.Equal(results[j].memory.CreatedAt) {
			return results[i].memory.CreatedAt.After(results[j].memory.CreatedAt)
		}
		return results[i].memory.ID < results[j].memory.ID
	})

	if len(results) > maxMemories {
		results = results[:maxMemories]
	}

	memories := make([]database.NeuroMemory, len(results))
	for i, r := range results {
		memories[i] = r.memory
	}
	return memories, nil
}
