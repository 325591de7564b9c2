package extract

import (
	"strings"

	"github.com/fwojciec/relscrape"
)

// ExtractPage reads head metadata. It returns nil when every page toggle is
// off or nothing was found.
func ExtractPage(root relscrape.Selection, toggles relscrape.PageToggles) *relscrape.PageMeta {
	if !toggles.Any() {
		return nil
	}

	page := &relscrape.PageMeta{}
	if toggles.Title {
		page.Title = firstText(root, "head > title")
	}
	if toggles.CanonicalURL {
		if href, ok := firstAttr(root, "link[rel='canonical']", "href"); ok {
			page.CanonicalURL = strings.TrimSpace(href)
		}
	}
	if toggles.MetaTags {
		page.Meta = ExtractMetaTags(root)
	}

	if page.IsEmpty() {
		return nil
	}
	return page
}

// ExtractMetaTags maps every meta element's property (or, failing that,
// name) to its content. The first occurrence of a key wins.
func ExtractMetaTags(root relscrape.Selection) map[string]string {
	out := make(map[string]string)
	for _, meta := range root.All("meta") {
		key, _ := meta.Attr("property")
		if key == "" {
			key, _ = meta.Attr("name")
		}
		content, ok := meta.Attr("content")
		if key == "" || !ok {
			continue
		}
		if _, exists := out[key]; !exists {
			out[key] = content
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
