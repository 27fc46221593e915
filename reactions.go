package forage

import (
	"regexp"
	"strconv"
	"strings"
)

var integerRunRe = regexp.MustCompile(`\d+`)

// ParseReactionsText converts free-text reaction counts ("42", "1,234
// reactions") into a Reactions value. Thousands separators are stripped
// and the first integer run becomes Total. No attempt is made to parse
// per-category counts from free text. Never fails; returns the zero
// value when no integer is present.
func ParseReactionsText(text string) Reactions {
	if text == "" {
		return Reactions{}
	}

	m := integerRunRe.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return Reactions{}
	}

	total, err := strconv.Atoi(m)
	if err != nil {
		return Reactions{}
	}
	return Reactions{Total: total}
}
