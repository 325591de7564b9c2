package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadSource(t *testing.T) {
	t.Parallel()

	t.Run("reads content with size and SHA-256", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.html")
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

		src, err := fs.NewReader().ReadSource(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "abc", src.HTML)
		assert.Equal(t, relscrape.SourceInfo{
			Path:   path,
			Bytes:  3,
			SHA256: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		}, src.Info)
	})

	t.Run("returns EUNREADABLE for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.html")

		_, err := fs.NewReader().ReadSource(context.Background(), path)

		assert.Equal(t, relscrape.EUNREADABLE, relscrape.ErrorCode(err))
		assert.Contains(t, relscrape.ErrorMessage(err), path)
	})

	t.Run("returns EUNREADABLE for a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReader().ReadSource(context.Background(), t.TempDir())

		assert.Equal(t, relscrape.EUNREADABLE, relscrape.ErrorCode(err))
	})

	t.Run("returns ENOTTEXT for invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bin.html")
		require.NoError(t, os.WriteFile(path, []byte{'<', 'p', '>', 0xff, 0xfe}, 0o644))

		_, err := fs.NewReader().ReadSource(context.Background(), path)

		assert.Equal(t, relscrape.ENOTTEXT, relscrape.ErrorCode(err))
		assert.Equal(t, "input is not valid UTF-8: "+path, relscrape.ErrorMessage(err))
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewReader().ReadSource(ctx, "a.html")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
