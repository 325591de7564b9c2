package extract

import (
	"net/url"
	"strings"

	"github.com/fwojciec/relscrape"
)

// LinkReport is the classification of every hyperlink in a document.
// All lists are sorted and free of duplicates.
type LinkReport struct {
	DomainCounts map[string]int
	TorrentNames []string
	TorrentLinks []string
	MagnetLinks  []string
}

// ClassifyLinks scans every a[href] element. Magnet links are collected
// separately and never counted under a host. Links over http(s) that point
// at torrent files are collected with their visible text, and every http(s)
// link is counted under its lowercase host. Unparseable URLs are skipped.
func ClassifyLinks(root relscrape.Selection) LinkReport {
	counts := make(map[string]int)
	var names, torrents, magnets []string

	for _, a := range root.All("a[href]") {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		lower := strings.ToLower(href)

		if isMagnet(lower) {
			magnets = append(magnets, href)
			continue
		}
		if !isHTTP(lower) {
			continue
		}

		text := a.Text()
		if isTorrentLink(lower, strings.ToLower(text)) {
			torrents = append(torrents, href)
			if text != "" {
				names = append(names, text)
			}
		}

		if host, ok := hostOf(href); ok {
			counts[host]++
		}
	}

	report := LinkReport{
		TorrentNames: relscrape.SortedUnique(names),
		TorrentLinks: relscrape.SortedUnique(torrents),
		MagnetLinks:  relscrape.SortedUnique(magnets),
	}
	if len(counts) > 0 {
		report.DomainCounts = counts
	}
	return report
}

func isMagnet(lowerHref string) bool {
	return strings.HasPrefix(lowerHref, "magnet:")
}

func isHTTP(lowerHref string) bool {
	return strings.HasPrefix(lowerHref, "http://") || strings.HasPrefix(lowerHref, "https://")
}

func isTorrentLink(lowerHref, lowerText string) bool {
	return strings.Contains(lowerHref, ".torrent") ||
		strings.Contains(lowerText, ".torrent") ||
		strings.Contains(lowerText, "torrent file")
}

// hostOf returns the lowercase hostname of rawURL.
func hostOf(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	return host, true
}
