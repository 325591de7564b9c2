package mock

import "github.com/fwojciec/relscrape"

var (
	_ relscrape.Selection  = (*Selection)(nil)
	_ relscrape.TreeParser = (*TreeParser)(nil)
)

// Selection is a mock implementation of relscrape.Selection.
type Selection struct {
	FirstFn func(selector string) (relscrape.Selection, bool)
	AllFn   func(selector string) []relscrape.Selection
	AttrFn  func(name string) (string, bool)
	TextFn  func() string
}

func (s *Selection) First(selector string) (relscrape.Selection, bool) {
	return s.FirstFn(selector)
}

func (s *Selection) All(selector string) []relscrape.Selection {
	return s.AllFn(selector)
}

func (s *Selection) Attr(name string) (string, bool) {
	return s.AttrFn(name)
}

func (s *Selection) Text() string {
	return s.TextFn()
}

// TreeParser is a mock implementation of relscrape.TreeParser.
type TreeParser struct {
	ParseTreeFn func(html string) (relscrape.Selection, error)
}

func (p *TreeParser) ParseTree(html string) (relscrape.Selection, error) {
	return p.ParseTreeFn(html)
}
