package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/relscrape"
)

// Ensure LoggingSourceReader implements relscrape.SourceReader.
var _ relscrape.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader. Successful reads are logged at
// debug level and failures as warnings, since a failed file is dropped from
// the batch.
type LoggingSourceReader struct {
	next   relscrape.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next relscrape.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ReadSource delegates to the wrapped reader and logs the outcome.
func (r *LoggingSourceReader) ReadSource(ctx context.Context, path string) (src *relscrape.Source, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Warn("read source failed",
				"path", path,
				"code", relscrape.ErrorCode(err),
				"err", relscrape.ErrorMessage(err),
			)
			return
		}
		r.logger.Debug("read source",
			"path", path,
			"bytes", src.Info.Bytes,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.ReadSource(ctx, path)
}
