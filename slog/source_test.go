package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/mock"
	relslog "github.com/fwojciec/relscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSourceReader_ReadSource(t *testing.T) {
	t.Parallel()

	t.Run("logs successful reads at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SourceReader{
			ReadSourceFn: func(_ context.Context, path string) (*relscrape.Source, error) {
				return &relscrape.Source{Info: relscrape.SourceInfo{Path: path, Bytes: 42}}, nil
			},
		}

		src, err := relslog.NewLoggingSourceReader(inner, debugLogger(&buf)).ReadSource(context.Background(), "a.html")

		require.NoError(t, err)
		assert.Equal(t, int64(42), src.Info.Bytes)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "read source")
		assert.Contains(t, output, "path=a.html")
		assert.Contains(t, output, "bytes=42")
	})

	t.Run("logs failures as warnings with the error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SourceReader{
			ReadSourceFn: func(_ context.Context, path string) (*relscrape.Source, error) {
				return nil, relscrape.Errorf(relscrape.ENOTTEXT, "input is not valid UTF-8: %s", path)
			},
		}

		_, err := relslog.NewLoggingSourceReader(inner, debugLogger(&buf)).ReadSource(context.Background(), "b.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "read source failed")
		assert.Contains(t, output, "code=not_text")
		assert.Contains(t, output, `err="input is not valid UTF-8: b.html"`)
	})
}
