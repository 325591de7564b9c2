package extract

import "github.com/fwojciec/relscrape"

// firstText returns the text of the first element matching selector.
func firstText(root relscrape.Selection, selector string) string {
	sel, ok := root.First(selector)
	if !ok {
		return ""
	}
	return sel.Text()
}

// firstAttr returns an attribute of the first element matching selector.
func firstAttr(root relscrape.Selection, selector, name string) (string, bool) {
	sel, ok := root.First(selector)
	if !ok {
		return "", false
	}
	return sel.Attr(name)
}

// allTexts returns the non-empty texts of every element matching selector.
func allTexts(root relscrape.Selection, selector string) []string {
	var out []string
	for _, sel := range root.All(selector) {
		if text := sel.Text(); text != "" {
			out = append(out, text)
		}
	}
	return out
}
