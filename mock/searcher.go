package mock

import "github.com/linegrep/linegrep"

var _ linegrep.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of linegrep.Searcher.
type Searcher struct {
	SearchFn func(query, text string, ignoreCase bool) []string
}

func (s *Searcher) Search(query, text string, ignoreCase bool) []string {
	return s.SearchFn(query, text, ignoreCase)
}
