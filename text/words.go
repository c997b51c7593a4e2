package text

import (
	"strings"
	"unicode"
)

// SkipWS returns s without its leading white space.
func SkipWS(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// NextWord skips leading white space in s and returns the following
// run of non-space characters along with the remainder of s, which
// begins with the white space that ended the word.
func NextWord(s string) (word, rest string) {
	s = SkipWS(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// Words splits s into its white-space separated words.
func Words(s string) []string {
	var res []string
	for {
		w, rest := NextWord(s)
		if w == "" {
			return res
		}
		res = append(res, w)
		s = rest
	}
}
