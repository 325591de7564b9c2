package mock

import (
	"context"

	"github.com/fwojciec/relscrape"
)

var _ relscrape.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of relscrape.RecordService.
type RecordService struct {
	SaveRecordFn       func(ctx context.Context, doc *relscrape.ParsedDocument) (*relscrape.Record, error)
	FindRecordByPathFn func(ctx context.Context, path string) (*relscrape.Record, error)
	FindRecordsFn      func(ctx context.Context, filter relscrape.RecordFilter) ([]*relscrape.Record, error)
	DeleteRecordFn     func(ctx context.Context, path string) error
}

func (s *RecordService) SaveRecord(ctx context.Context, doc *relscrape.ParsedDocument) (*relscrape.Record, error) {
	return s.SaveRecordFn(ctx, doc)
}

func (s *RecordService) FindRecordByPath(ctx context.Context, path string) (*relscrape.Record, error) {
	return s.FindRecordByPathFn(ctx, path)
}

func (s *RecordService) FindRecords(ctx context.Context, filter relscrape.RecordFilter) ([]*relscrape.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, path string) error {
	return s.DeleteRecordFn(ctx, path)
}
