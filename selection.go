package relscrape

// Selection is a single element of a parsed HTML document that can be
// queried with CSS selectors. Extraction rules only depend on this
// capability, so they can run against any parser or a fake.
type Selection interface {
	// First returns the first descendant matching selector.
	First(selector string) (Selection, bool)

	// All returns every descendant matching selector in document order.
	All(selector string) []Selection

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the element's text nodes joined by spaces, with
	// whitespace collapsed by Normalize.
	Text() string
}

// TreeParser parses raw HTML into a queryable document tree.
type TreeParser interface {
	// ParseTree returns the root of the parsed document.
	ParseTree(html string) (Selection, error)
}
