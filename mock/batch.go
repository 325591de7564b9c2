package mock

import (
	"context"

	"github.com/fwojciec/relscrape"
)

var (
	_ relscrape.SourceReader = (*SourceReader)(nil)
	_ relscrape.BatchRunner  = (*BatchRunner)(nil)
)

// SourceReader is a mock implementation of relscrape.SourceReader.
type SourceReader struct {
	ReadSourceFn func(ctx context.Context, path string) (*relscrape.Source, error)
}

func (r *SourceReader) ReadSource(ctx context.Context, path string) (*relscrape.Source, error) {
	return r.ReadSourceFn(ctx, path)
}

// BatchRunner is a mock implementation of relscrape.BatchRunner.
type BatchRunner struct {
	RunFn func(ctx context.Context, paths []string) (*relscrape.BatchResult, error)
}

func (r *BatchRunner) Run(ctx context.Context, paths []string) (*relscrape.BatchResult, error) {
	return r.RunFn(ctx, paths)
}
