// Package fs provides filesystem-backed document loading.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/linegrep/linegrep"
)

// Ensure Loader implements linegrep.DocumentLoader at compile time.
var _ linegrep.DocumentLoader = (*Loader)(nil)

// Loader reads documents from the local filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDocument reads the file at path fully into memory as text.
// The file handle is held only for the duration of the read.
func (l *Loader) LoadDocument(ctx context.Context, path string) (*linegrep.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, linegrep.Errorf(linegrep.ENOTFOUND, "file %q not found", path)
		case errors.Is(err, os.ErrPermission):
			return nil, linegrep.Errorf(linegrep.EUNAUTHORIZED, "file %q not readable: permission denied", path)
		default:
			return nil, linegrep.Errorf(linegrep.EINTERNAL, "read %q: %v", path, err)
		}
	}

	if !utf8.Valid(data) {
		return nil, linegrep.Errorf(linegrep.EINVALID, "file %q is not valid UTF-8 text", path)
	}

	text := string(data)
	return &linegrep.Document{
		Path:        path,
		Text:        text,
		ContentHash: computeHash(text),
	}, nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
