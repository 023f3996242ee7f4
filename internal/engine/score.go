// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package engine

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// tokenize splits a query into lowercase terms on any non-alphanumeric
// boundary. An empty query produces no terms.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}

// lexicalOverlap returns the fraction of query terms contained in the
// memory content, in [0, 1]. With no terms every candidate scores zero,
// which degrades resolution to the recency-only ranking.
func lexicalOverlap(terms []string, content string) float64 {
	if len(terms) == 0 {
		return 0
	}

	lower := strings.ToLower(content)
	matched := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

// recencyScore assigns a banded score by age relative to the newest
// candidate: same bands the recall path has always used, so otherwise
// equal memories never rank below a newer sibling.
func recencyScore(createdAt, newest time.Time) float64 {
	age := newest.Sub(createdAt)
	switch {
	case age < 24*time.Hour:
		return 2.0
	case age < 7*24*time.Hour:
		return 1.5
	case age < 30*24*time.Hour:
		return 1.0
	default:
		return 0.5
	}
}

// matchesEditor reports whether the memory content references the active
// file or any open file, by full path or base name.
func matchesEditor(content string, editor *EditorState) bool {
	lower := strings.ToLower(content)

	paths := make([]string, 0, len(editor.OpenFiles)+1)
	if editor.File != "" {
		paths = append(paths, editor.File)
	}
	paths = append(paths, editor.OpenFiles...)

	for _, p := range paths {
		if p == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
		if base := filepath.Base(p); base != "." && base != "/" &&
			strings.Contains(lower, strings.ToLower(base)) {
			return true
		}
	}
	return false
}
