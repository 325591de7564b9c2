package extract

import (
	"strings"

	"github.com/fwojciec/relscrape"
)

const (
	titleLineSelector = "div.entry-content > h3"
	detailsSelector   = "div.entry-content p"
	genreLinkSelector = "a[href*='/tag/']"
	detailsMarker     = "Genres/Tags:"
)

// Labels of the release details paragraph, in document order.
const (
	labelCompanies    = "Companies:"
	labelLanguages    = "Languages:"
	labelOriginalSize = "Original Size:"
	labelRepackSize   = "Repack Size:"
)

// ReleaseResult is the outcome of ExtractRelease.
type ReleaseResult struct {
	Release *relscrape.ReleaseMeta

	// MissingDetails is set when detail fields were requested but no
	// paragraph contained the details marker.
	MissingDetails bool
}

// ExtractRelease reads the release title line and the details paragraph.
// Release is nil when every release toggle is off or nothing was found.
func ExtractRelease(root relscrape.Selection, toggles relscrape.ReleaseToggles) ReleaseResult {
	var result ReleaseResult
	if !toggles.Any() {
		return result
	}

	release := &relscrape.ReleaseMeta{}

	if toggles.GameTitleLine || toggles.ReleaseNumber {
		line := firstText(root, titleLineSelector)
		if toggles.GameTitleLine {
			release.GameTitleLine = line
		}
		if toggles.ReleaseNumber && line != "" {
			release.ReleaseNumber, _ = matchUint(releaseNumberPattern, line)
		}
	}

	if toggles.NeedsDetails() {
		if p, text, ok := findDetailsParagraph(root); ok {
			applyDetails(release, toggles, p, text)
		} else {
			result.MissingDetails = true
		}
	}

	if !release.IsEmpty() {
		result.Release = release
	}
	return result
}

// findDetailsParagraph returns the first content paragraph whose text
// contains the details marker.
func findDetailsParagraph(root relscrape.Selection) (relscrape.Selection, string, bool) {
	for _, p := range root.All(detailsSelector) {
		if text := p.Text(); strings.Contains(text, detailsMarker) {
			return p, text, true
		}
	}
	return nil, "", false
}

func applyDetails(release *relscrape.ReleaseMeta, toggles relscrape.ReleaseToggles, p relscrape.Selection, text string) {
	if toggles.GenresTags {
		release.GenresTags = relscrape.SortedUnique(allTexts(p, genreLinkSelector))
	}
	if toggles.Companies {
		if v, ok := relscrape.Segment(text, labelCompanies, []string{labelLanguages, labelOriginalSize, labelRepackSize}); ok {
			release.Companies = relscrape.SplitList(v)
		}
	}
	if toggles.Languages {
		release.LanguagesRaw, _ = relscrape.Segment(text, labelLanguages, []string{labelOriginalSize, labelRepackSize})
	}
	if toggles.OriginalSize {
		release.OriginalSizeRaw, _ = relscrape.Segment(text, labelOriginalSize, []string{labelRepackSize})
	}
	if toggles.RepackSize {
		release.RepackSizeRaw, _ = relscrape.Segment(text, labelRepackSize, nil)
	}
}
