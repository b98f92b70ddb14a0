package linegrep

import "context"

// Document represents the full contents of a searched file, loaded into
// memory for the duration of one run.
type Document struct {
	// Path the document was loaded from.
	Path string `json:"path"`

	// Text is the complete file contents. Match results reference
	// subslices of this string, so it must outlive them.
	Text string `json:"text"`

	// ContentHash is an xxhash fingerprint of Text, for diagnostics.
	ContentHash string `json:"contentHash"`
}

// DocumentLoader reads a document from storage. Loading is the only
// operation in the system that can fail at runtime.
type DocumentLoader interface {
	// LoadDocument reads the file at path fully into memory.
	// Returns ENOTFOUND if the file does not exist, EUNAUTHORIZED if it
	// cannot be read, and EINVALID if the contents are not valid text.
	LoadDocument(ctx context.Context, path string) (*Document, error)
}
