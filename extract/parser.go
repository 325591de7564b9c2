package extract

import (
	"log/slog"

	"github.com/fwojciec/relscrape"
)

// Ensure Parser implements relscrape.DocumentParser at compile time.
var _ relscrape.DocumentParser = (*Parser)(nil)

// Parser assembles a ParsedDocument from one page. It classifies the raw
// markup, parses the tree once, and runs the rules enabled by Config for
// the detected site. Pages classified as generic only get page metadata and
// link output.
type Parser struct {
	Trees    relscrape.TreeParser
	Detector relscrape.SiteDetector
	Config   relscrape.Config

	// Logger receives diagnostics about pages that do not match the
	// expected structure. Nil discards them.
	Logger *slog.Logger
}

// NewParser creates a Parser for cfg using the given tree parser and the
// default substring Detector.
func NewParser(trees relscrape.TreeParser, cfg relscrape.Config, logger *slog.Logger) *Parser {
	return &Parser{
		Trees:    trees,
		Detector: NewDetector(cfg.Profile.WordPressReleaseLayout),
		Config:   cfg,
		Logger:   logger,
	}
}

// ParseDocument extracts a document from html. Source information is left
// empty for the caller to fill in.
func (p *Parser) ParseDocument(html string) (*relscrape.ParsedDocument, error) {
	site := p.Detector.Detect(html)

	root, err := p.Trees.ParseTree(html)
	if err != nil {
		return nil, err
	}

	cfg := p.Config
	doc := &relscrape.ParsedDocument{Site: site}
	doc.Page = ExtractPage(root, cfg.Page)

	if site == relscrape.SiteWordPressRelease {
		p.assembleRelease(doc, root)
	}

	p.assembleLinks(doc, root)
	return doc, nil
}

func (p *Parser) assembleRelease(doc *relscrape.ParsedDocument, root relscrape.Selection) {
	cfg := p.Config
	doc.Post = ExtractPost(root, cfg.Post)

	release := ExtractRelease(root, cfg.Release)
	doc.Release = release.Release
	if release.MissingDetails {
		p.logger().Warn("could not find Genres/Tags paragraph; release metadata may be partial")
	}

	if cfg.Sections.SpoilerSections {
		denylist := cfg.Denylist()
		doc.SpoilerSections = ExtractSpoilers(root, denylist)
		for _, title := range DeniedSpoilers(root, denylist) {
			p.logger().Debug("skipping spoiler due to denylist", "title", title)
		}
	}
	if cfg.Sections.DownloadSectionPresence {
		doc.DownloadSectionHeadings = ExtractDownloadHeadings(root)
	}
}

func (p *Parser) assembleLinks(doc *relscrape.ParsedDocument, root relscrape.Selection) {
	cfg := p.Config
	if !cfg.Links.DomainCounts && !cfg.Torrents.Any() {
		return
	}

	links := ClassifyLinks(root)
	if cfg.Links.DomainCounts {
		doc.LinkDomainCounts = links.DomainCounts
	}
	if cfg.Torrents.TorrentFile {
		present := len(links.TorrentLinks) > 0
		doc.TorrentFile = &present
	}
	if cfg.Torrents.TorrentFileNames {
		doc.TorrentFileNames = links.TorrentNames
	}
	if cfg.Torrents.TorrentFileLinks {
		doc.TorrentFileLinks = links.TorrentLinks
	}
	if cfg.Torrents.MagnetLinks {
		doc.MagnetLinks = links.MagnetLinks
	}
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
