// Package search implements substring matching over document lines.
package search

import (
	"strings"

	"github.com/linegrep/linegrep"
)

// Ensure Engine implements linegrep.Searcher at compile time.
var _ linegrep.Searcher = (*Engine)(nil)

// Engine is a pure, stateless line matcher.
type Engine struct{}

// New creates a new Engine.
func New() *Engine {
	return &Engine{}
}

// Search returns the lines of text containing query, in source order.
// Matching is byte-wise substring containment; with ignoreCase both the
// query and each candidate line are lowercased before comparison, but the
// returned lines keep their original casing. Returned lines are subslices
// of text with the terminator stripped.
func (e *Engine) Search(query, text string, ignoreCase bool) []string {
	if ignoreCase {
		query = strings.ToLower(query)
	}

	var matches []string
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		line = strings.TrimSuffix(line, "\r")

		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			matches = append(matches, line)
		}
	}
	return matches
}
