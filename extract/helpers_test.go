package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/relscrape"
	"github.com/fwojciec/relscrape/goquery"
	"github.com/stretchr/testify/require"
)

// loadFixture returns the raw markup of testdata/name.
func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

// parseHTML returns the document root of src.
func parseHTML(t *testing.T, src string) relscrape.Selection {
	t.Helper()
	root, err := goquery.NewTreeParser().ParseTree(src)
	require.NoError(t, err)
	return root
}

func ptr[T any](v T) *T {
	return &v
}
