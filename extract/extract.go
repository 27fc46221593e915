// Package extract implements the per-variant record extractors. Each
// variant walks a document-tree node for one post or comment and
// assembles a domain record from text-shape, element-role, and
// positional heuristics, degrading gracefully when any signal is
// missing.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/foragehq/forage"
)

// ForLayout returns the extractor strategy for a layout variant. The
// modern strategy is the default for unknown layouts.
func ForLayout(layout forage.Layout) forage.Extractor {
	if layout == forage.LayoutBasic {
		return NewBasic()
	}
	return NewModern()
}

// minContentLen is the acceptance gate shared by all extractors: records
// whose final content is shorter than this are discarded, never emitted
// with near-empty content.
const minContentLen = 5

// relativeTokenRe matches bare relative-timestamp tokens like "6h" that
// show up as standalone text blocks.
var relativeTokenRe = regexp.MustCompile(`^\d+[hdwm]$`)

var (
	seeMoreSuffixRe = regexp.MustCompile(`\s*…?\s*See more\s*$`)
	seeMorePrefixRe = regexp.MustCompile(`^\s*…?\s*See more\s*`)
)

// stripSeeMore removes a leading or trailing "See more" ellipsis marker.
func stripSeeMore(s string) string {
	s = seeMoreSuffixRe.ReplaceAllString(s, "")
	s = seeMorePrefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// splitLines returns the trimmed non-empty lines of a node's visible
// text.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// head returns the first n runes of s.
func head(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// contentLen counts content length in characters, not bytes.
func contentLen(s string) int {
	return utf8.RuneCountInString(s)
}

// hasDigitIn reports whether any of the first n runes of s is a digit.
func hasDigitIn(s string, n int) bool {
	for i, r := range s {
		if i >= n {
			break
		}
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// authorMarkers are editorial phrases appended to author headers; the
// resolved name is truncated at the first one found.
var authorMarkers = []string{" is with ", " shared ", " updated "}

func trimAuthorMarkers(name string) string {
	for _, marker := range authorMarkers {
		if i := strings.Index(name, marker); i >= 0 {
			name = name[:i]
		}
	}
	return name
}
