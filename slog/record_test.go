package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/mock"
	relslog "github.com/fwojciec/relscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs saved record id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordService{
			SaveRecordFn: func(_ context.Context, doc *relscrape.ParsedDocument) (*relscrape.Record, error) {
				return &relscrape.Record{ID: "rec-1", Path: doc.Source.Path}, nil
			},
		}

		doc := &relscrape.ParsedDocument{Source: relscrape.SourceInfo{Path: "a.html"}}
		rec, err := relslog.NewLoggingRecordService(inner, debugLogger(&buf)).SaveRecord(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", rec.ID)
		assert.Contains(t, buf.String(), "save record")
		assert.Contains(t, buf.String(), "path=a.html")
		assert.Contains(t, buf.String(), "id=rec-1")
	})

	t.Run("logs found record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordService{
			FindRecordsFn: func(context.Context, relscrape.RecordFilter) ([]*relscrape.Record, error) {
				return []*relscrape.Record{{}, {}}, nil
			},
		}

		recs, err := relslog.NewLoggingRecordService(inner, debugLogger(&buf)).FindRecords(context.Background(), relscrape.RecordFilter{})

		require.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("passes lookups through", func(t *testing.T) {
		t.Parallel()

		inner := &mock.RecordService{
			FindRecordByPathFn: func(_ context.Context, path string) (*relscrape.Record, error) {
				return &relscrape.Record{Path: path}, nil
			},
		}

		rec, err := relslog.NewLoggingRecordService(inner, debugLogger(&bytes.Buffer{})).FindRecordByPath(context.Background(), "a.html")

		require.NoError(t, err)
		assert.Equal(t, "a.html", rec.Path)
	})

	t.Run("logs delete errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordService{
			DeleteRecordFn: func(context.Context, string) error {
				return errors.New("locked")
			},
		}

		err := relslog.NewLoggingRecordService(inner, debugLogger(&buf)).DeleteRecord(context.Background(), "a.html")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "delete record")
		assert.Contains(t, buf.String(), "err=locked")
	})
}
