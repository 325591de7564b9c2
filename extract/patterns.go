package extract

import (
	"regexp"
	"strconv"
)

var (
	postIDPattern        = regexp.MustCompile(`post-(\d+)`)
	releaseNumberPattern = regexp.MustCompile(`#\s*(\d{1,6})`)
	firstNumberPattern   = regexp.MustCompile(`(\d+)`)
)

// matchUint returns the first capture group of re in s as a number.
func matchUint(re *regexp.Regexp, s string) (*uint64, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return nil, false
	}
	return &n, true
}
