// Package fs provides file-based input discovery, source reading, and
// output storage.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/relscrape"
)

// Ensure Reader implements relscrape.SourceReader at compile time.
var _ relscrape.SourceReader = (*Reader)(nil)

// Reader reads input files from the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSource reads the whole file, records its size and SHA-256, and checks
// that it is valid UTF-8.
func (r *Reader) ReadSource(ctx context.Context, path string) (*relscrape.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, relscrape.Errorf(relscrape.EUNREADABLE, "read %s: %v", path, unwrapPathError(err))
	}

	sum := sha256.Sum256(data)
	info := relscrape.SourceInfo{
		Path:   path,
		Bytes:  int64(len(data)),
		SHA256: hex.EncodeToString(sum[:]),
	}

	if !utf8.Valid(data) {
		return nil, relscrape.Errorf(relscrape.ENOTTEXT, "input is not valid UTF-8: %s", path)
	}

	return &relscrape.Source{Info: info, HTML: string(data)}, nil
}

// unwrapPathError drops the operation and path from an *os.PathError, since
// the message already names the path.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
