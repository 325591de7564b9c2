package extract

import (
	"strings"

	"github.com/fwojciec/relscrape"
)

const (
	spoilerSelector        = "div.entry-content div.su-spoiler"
	spoilerTitleSelector   = "div.su-spoiler-title"
	spoilerContentSelector = "div.su-spoiler-content"
	downloadHeadingMarker  = "download mirrors"
)

// ExtractSpoilers returns the spoiler blocks of the post body. A block is
// dropped when its lowercased title contains any term of denylist, which
// must already be lowercase. Blocks with an empty title or body are dropped
// as well.
func ExtractSpoilers(root relscrape.Selection, denylist []string) []relscrape.SpoilerSection {
	var out []relscrape.SpoilerSection
	for _, sp := range root.All(spoilerSelector) {
		title := firstText(sp, spoilerTitleSelector)
		if isDenied(title, denylist) {
			continue
		}
		text := firstText(sp, spoilerContentSelector)
		if title != "" && text != "" {
			out = append(out, relscrape.SpoilerSection{Title: title, Text: text})
		}
	}
	return out
}

// DeniedSpoilers returns the titles of spoiler blocks removed by denylist.
func DeniedSpoilers(root relscrape.Selection, denylist []string) []string {
	var out []string
	for _, sp := range root.All(spoilerSelector) {
		if title := firstText(sp, spoilerTitleSelector); isDenied(title, denylist) {
			out = append(out, title)
		}
	}
	return out
}

func isDenied(title string, denylist []string) bool {
	lower := strings.ToLower(title)
	for _, term := range denylist {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// ExtractDownloadHeadings returns the content headings that introduce
// download mirror lists, in document order.
func ExtractDownloadHeadings(root relscrape.Selection) []string {
	var out []string
	for _, text := range allTexts(root, titleLineSelector) {
		if strings.Contains(strings.ToLower(text), downloadHeadingMarker) {
			out = append(out, text)
		}
	}
	return out
}
