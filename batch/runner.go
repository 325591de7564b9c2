// Package batch drives document extraction over many input files.
package batch

import (
	"context"

	"github.com/fwojciec/relscrape"
	"golang.org/x/sync/errgroup"
)

// Ensure Runner implements relscrape.BatchRunner at compile time.
var _ relscrape.BatchRunner = (*Runner)(nil)

// Runner reads, classifies, and extracts every input file. A failing file
// is recorded in the result and never stops the others.
type Runner struct {
	Sources relscrape.SourceReader
	Parser  relscrape.DocumentParser

	// Concurrency bounds how many files are processed at once.
	// Values below 2 process files sequentially.
	Concurrency int

	// Progress, if set, is called after each file reaches a terminal state.
	// Calls may come from several goroutines when Concurrency > 1.
	Progress ProgressFunc
}

// ProgressEvent reports that one file finished.
type ProgressEvent struct {
	Path  string
	Index int
	Total int
	Error error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// outcome is the terminal state of one input.
type outcome struct {
	doc *relscrape.ParsedDocument
	err error
}

// Run processes paths and returns documents and errors in input order.
// It only fails when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (*relscrape.BatchResult, error) {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Each worker writes only its own slot, so no locking is needed.
	outcomes := make([]outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := r.parseOne(gctx, path)
			outcomes[i] = outcome{doc: doc, err: err}
			if r.Progress != nil {
				r.Progress(ProgressEvent{Path: path, Index: i, Total: len(paths), Error: err})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &relscrape.BatchResult{
		Tool:      relscrape.CurrentTool(),
		Documents: make([]*relscrape.ParsedDocument, 0, len(paths)),
		Errors:    []relscrape.ParseError{},
	}
	for i, o := range outcomes {
		if o.err != nil {
			result.Errors = append(result.Errors, relscrape.ParseError{
				Path:  paths[i],
				Error: relscrape.ErrorMessage(o.err),
			})
			continue
		}
		result.Documents = append(result.Documents, o.doc)
	}

	result.Stats = relscrape.Stats{
		InputCount: len(paths),
		ParsedOK:   len(result.Documents),
		ParsedErr:  len(result.Errors),
	}
	return result, nil
}

// parseOne reads and extracts a single file. A panic in the extraction
// rules fails only this file.
func (r *Runner) parseOne(ctx context.Context, path string) (doc *relscrape.ParsedDocument, err error) {
	src, err := r.Sources.ReadSource(ctx, path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if v := recover(); v != nil {
			doc, err = nil, relscrape.Errorf(relscrape.EINTERNAL, "extraction failed: %v", v)
		}
	}()

	doc, err = r.Parser.ParseDocument(src.HTML)
	if err != nil {
		return nil, err
	}
	doc.Source = src.Info
	return doc, nil
}
