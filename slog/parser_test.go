package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/mock"
	relslog "github.com/fwojciec/relscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingParser_ParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs site bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentParser{
			ParseDocumentFn: func(string) (*relscrape.ParsedDocument, error) {
				return &relscrape.ParsedDocument{Site: relscrape.SiteWordPressRelease}, nil
			},
		}

		doc, err := relslog.NewLoggingParser(inner, debugLogger(&buf)).ParseDocument("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, relscrape.SiteWordPressRelease, doc.Site)
		output := buf.String()
		assert.Contains(t, output, "parse document")
		assert.Contains(t, output, "site=wordpress_release")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentParser{
			ParseDocumentFn: func(string) (*relscrape.ParsedDocument, error) {
				return nil, errors.New("bad tree")
			},
		}

		_, err := relslog.NewLoggingParser(inner, debugLogger(&buf)).ParseDocument("x")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "site=(none)")
		assert.Contains(t, buf.String(), `err="bad tree"`)
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentParser{
			ParseDocumentFn: func(string) (*relscrape.ParsedDocument, error) {
				return &relscrape.ParsedDocument{Site: relscrape.SiteGeneric}, nil
			},
		}

		_, err := relslog.NewLoggingParser(inner, slog.New(slog.NewTextHandler(&buf, nil))).ParseDocument("x")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingDetector_Detect(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.SiteDetector{
		DetectFn: func(string) relscrape.Site { return relscrape.SiteGeneric },
	}

	site := relslog.NewLoggingDetector(inner, debugLogger(&buf)).Detect("<p></p>")

	assert.Equal(t, relscrape.SiteGeneric, site)
	assert.Contains(t, buf.String(), "site detection")
	assert.Contains(t, buf.String(), "site=generic")
}
