package mock

import "github.com/fwojciec/relscrape"

var (
	_ relscrape.SiteDetector   = (*SiteDetector)(nil)
	_ relscrape.DocumentParser = (*DocumentParser)(nil)
)

// SiteDetector is a mock implementation of relscrape.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) relscrape.Site
}

func (d *SiteDetector) Detect(html string) relscrape.Site {
	return d.DetectFn(html)
}

// DocumentParser is a mock implementation of relscrape.DocumentParser.
type DocumentParser struct {
	ParseDocumentFn func(html string) (*relscrape.ParsedDocument, error)
}

func (p *DocumentParser) ParseDocument(html string) (*relscrape.ParsedDocument, error) {
	return p.ParseDocumentFn(html)
}
