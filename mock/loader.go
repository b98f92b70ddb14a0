// Package mock provides mock implementations of linegrep interfaces.
package mock

import (
	"context"

	"github.com/linegrep/linegrep"
)

var _ linegrep.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of linegrep.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (*linegrep.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*linegrep.Document, error) {
	return l.LoadDocumentFn(ctx, path)
}
