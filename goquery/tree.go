// Package goquery implements the relscrape selector capability on top of
// goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/relscrape"
	"golang.org/x/net/html"
)

// Ensure TreeParser implements relscrape.TreeParser at compile time.
var _ relscrape.TreeParser = (*TreeParser)(nil)

// TreeParser parses HTML documents into goquery-backed selections.
type TreeParser struct{}

// NewTreeParser creates a new TreeParser.
func NewTreeParser() *TreeParser {
	return &TreeParser{}
}

// ParseTree parses html and returns the document root.
func (p *TreeParser) ParseTree(src string) (relscrape.Selection, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, relscrape.Errorf(relscrape.EINTERNAL, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	return &Node{sel: doc.Selection}, nil
}

// Ensure Node implements relscrape.Selection at compile time.
var _ relscrape.Selection = (*Node)(nil)

// Node wraps a goquery selection holding exactly one element (or the
// document root).
type Node struct {
	sel *goquery.Selection
}

// First returns the first descendant matching selector.
// Invalid selectors match nothing.
func (n *Node) First(selector string) (relscrape.Selection, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Node{sel: found}, true
}

// All returns every descendant matching selector in document order.
func (n *Node) All(selector string) []relscrape.Selection {
	found := n.sel.Find(selector)
	out := make([]relscrape.Selection, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Node{sel: s})
	})
	return out
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the text nodes under the element joined by single spaces.
// goquery's own Text concatenates adjacent nodes without a separator, which
// glues labels such as "Genres/Tags:" to the following link text.
func (n *Node) Text() string {
	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			parts = append(parts, cur.Data)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range n.sel.Nodes {
		walk(node)
	}
	return relscrape.Normalize(strings.Join(parts, " "))
}
