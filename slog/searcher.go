package slog

import (
	"log/slog"
	"time"

	"github.com/linegrep/linegrep"
)

// Ensure LoggingSearcher implements linegrep.Searcher.
var _ linegrep.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging for each search call.
type LoggingSearcher struct {
	next   linegrep.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next linegrep.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(query, text string, ignoreCase bool) []string {
	begin := time.Now()
	matches := s.next.Search(query, text, ignoreCase)
	s.logger.Info("search",
		"query", query,
		"ignoreCase", ignoreCase,
		"matches", len(matches),
		"duration", time.Since(begin),
	)
	return matches
}
