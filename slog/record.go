package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/relscrape"
)

// Ensure LoggingRecordService implements relscrape.RecordService.
var _ relscrape.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging of writes.
type LoggingRecordService struct {
	next   relscrape.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next relscrape.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// SaveRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) SaveRecord(ctx context.Context, doc *relscrape.ParsedDocument) (rec *relscrape.Record, err error) {
	defer func(begin time.Time) {
		id := ""
		if rec != nil {
			id = rec.ID
		}
		s.logger.Debug("save record",
			"path", doc.Source.Path,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecord(ctx, doc)
}

// FindRecordByPath delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByPath(ctx context.Context, path string) (*relscrape.Record, error) {
	return s.next.FindRecordByPath(ctx, path)
}

// FindRecords delegates to the wrapped service and logs the result size.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter relscrape.RecordFilter) (recs []*relscrape.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete record",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, path)
}
