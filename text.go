package relscrape

import (
	"sort"
	"strings"
)

// Normalize collapses every run of whitespace into a single space and trims
// both ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Segment returns the text between the first occurrence of label and the
// nearest following occurrence of any of next. When none of next occurs after
// the label the value runs to the end of text. The value is trimmed; an empty
// value or a missing label yields ok == false.
//
// Every label that may legally follow label must be listed in next, otherwise
// the value will run into the text of the omitted field.
func Segment(text, label string, next []string) (value string, ok bool) {
	idx := strings.Index(text, label)
	if idx < 0 {
		return "", false
	}
	start := idx + len(label)
	end := len(text)

	rest := text[start:]
	for _, n := range next {
		if n == "" {
			continue
		}
		if pos := strings.Index(rest, n); pos >= 0 && start+pos < end {
			end = start + pos
		}
	}

	value = strings.TrimSpace(text[start:end])
	if value == "" {
		return "", false
	}
	return value, true
}

// SplitList splits a comma-separated value, trimming items and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SortedUnique returns the distinct values of items in ascending order.
// It returns nil for an empty input.
func SortedUnique(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)

	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
