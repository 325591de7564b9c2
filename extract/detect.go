// Package extract implements the field extraction rules for saved release
// pages. Rules only depend on relscrape.Selection, so any TreeParser can
// back them.
package extract

import (
	"strings"

	"github.com/fwojciec/relscrape"
)

// Markers that identify a WordPress release page in raw markup.
const (
	articleMarker = `article id="post-`
	contentMarker = `entry-content`
)

// Ensure Detector implements relscrape.SiteDetector at compile time.
var _ relscrape.SiteDetector = (*Detector)(nil)

// Detector classifies pages with a substring test on the raw markup, before
// any parsing. Misclassification is tolerated: the extraction rules degrade
// to absent fields.
type Detector struct {
	// WordPressRelease enables detection of the WordPress release layout.
	// When false every page is generic.
	WordPressRelease bool
}

// NewDetector creates a new Detector.
func NewDetector(wordpressRelease bool) *Detector {
	return &Detector{WordPressRelease: wordpressRelease}
}

// Detect returns SiteWordPressRelease when both the article and content
// markers are present, SiteGeneric otherwise.
func (d *Detector) Detect(html string) relscrape.Site {
	if d.WordPressRelease &&
		strings.Contains(html, articleMarker) &&
		strings.Contains(html, contentMarker) {
		return relscrape.SiteWordPressRelease
	}
	return relscrape.SiteGeneric
}
