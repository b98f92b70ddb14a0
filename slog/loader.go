// Package slog provides logging decorators for linegrep services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/linegrep/linegrep"
)

// Ensure LoggingLoader implements linegrep.DocumentLoader.
var _ linegrep.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging for each load.
type LoggingLoader struct {
	next   linegrep.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next linegrep.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDocument delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) LoadDocument(ctx context.Context, path string) (*linegrep.Document, error) {
	begin := time.Now()
	doc, err := l.next.LoadDocument(ctx, path)
	if err != nil {
		l.logger.Error("load document",
			"path", path,
			"code", linegrep.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	l.logger.Info("load document",
		"path", path,
		"bytes", len(doc.Text),
		"contentHash", doc.ContentHash,
		"duration", time.Since(begin),
	)
	return doc, nil
}
