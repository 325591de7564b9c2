package relscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := relscrape.Errorf(relscrape.ENOTFOUND, "record %q not found", "a.html")

	assert.Equal(t, relscrape.ENOTFOUND, relscrape.ErrorCode(err))
	assert.Equal(t, "record \"a.html\" not found", relscrape.ErrorMessage(err))
	assert.Equal(t, "relscrape error: code=not_found message=record \"a.html\" not found", err.Error())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, relscrape.ErrorCode(nil))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, relscrape.EINTERNAL, relscrape.ErrorCode(errors.New("boom")))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("reading: %w", relscrape.Errorf(relscrape.ENOTTEXT, "binary"))

		assert.Equal(t, relscrape.ENOTTEXT, relscrape.ErrorCode(err))
		assert.Equal(t, "binary", relscrape.ErrorMessage(err))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, relscrape.ErrorMessage(nil))
	})

	t.Run("returns raw text for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "boom", relscrape.ErrorMessage(errors.New("boom")))
	})
}
