package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/mock"
	lgslog "github.com/linegrep/linegrep/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_LoadDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the loaded document", func(t *testing.T) {
		t.Parallel()

		next := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, path string) (*linegrep.Document, error) {
				return &linegrep.Document{Path: path, Text: "hello", ContentHash: "abc123"}, nil
			},
		}

		buf := &bytes.Buffer{}
		logger := stdslog.New(stdslog.NewTextHandler(buf, nil))

		l := lgslog.NewLoggingLoader(next, logger)
		doc, err := l.LoadDocument(context.Background(), "poem.txt")

		require.NoError(t, err)
		assert.Equal(t, "hello", doc.Text)
		assert.Contains(t, buf.String(), "path=poem.txt")
		assert.Contains(t, buf.String(), "contentHash=abc123")
	})

	t.Run("propagates errors and logs the code", func(t *testing.T) {
		t.Parallel()

		next := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, path string) (*linegrep.Document, error) {
				return nil, linegrep.Errorf(linegrep.ENOTFOUND, "file %q not found", path)
			},
		}

		buf := &bytes.Buffer{}
		logger := stdslog.New(stdslog.NewTextHandler(buf, nil))

		l := lgslog.NewLoggingLoader(next, logger)
		doc, err := l.LoadDocument(context.Background(), "missing.txt")

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, linegrep.ENOTFOUND, linegrep.ErrorCode(err))
		assert.Contains(t, buf.String(), "code=not_found")
	})
}
