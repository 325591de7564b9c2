// Package slog provides logging decorators for relscrape services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/relscrape"
)

// Ensure LoggingParser implements relscrape.DocumentParser.
var _ relscrape.DocumentParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocumentParser with debug logging of the detected
// site and timing.
type LoggingParser struct {
	next   relscrape.DocumentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next relscrape.DocumentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseDocument delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseDocument(html string) (doc *relscrape.ParsedDocument, err error) {
	defer func(begin time.Time) {
		site := "(none)"
		if doc != nil {
			site = string(doc.Site)
		}
		p.logger.Debug("parse document",
			"site", site,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseDocument(html)
}

// Ensure LoggingDetector implements relscrape.SiteDetector.
var _ relscrape.SiteDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a SiteDetector with debug logging of the result.
type LoggingDetector struct {
	next   relscrape.SiteDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next relscrape.SiteDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the detected site.
func (d *LoggingDetector) Detect(html string) relscrape.Site {
	begin := time.Now()
	site := d.next.Detect(html)
	d.logger.Debug("site detection",
		"site", string(site),
		"duration", time.Since(begin),
	)
	return site
}
