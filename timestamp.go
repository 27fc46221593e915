package forage

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativePatterns map shorthand timestamp tokens to their unit. Tried
// in order; the short single-letter forms are anchored at both ends so
// "10 min" falls through to the long form.
var relativePatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`(?i)^(\d+)\s*m$`), time.Minute},
	{regexp.MustCompile(`(?i)^(\d+)\s*h$`), time.Hour},
	{regexp.MustCompile(`(?i)^(\d+)\s*d$`), 24 * time.Hour},
	{regexp.MustCompile(`(?i)^(\d+)\s*w$`), 7 * 24 * time.Hour},
	{regexp.MustCompile(`(?i)^(\d+)\s*min`), time.Minute},
	{regexp.MustCompile(`(?i)^(\d+)\s*hr`), time.Hour},
}

var justNowRe = regexp.MustCompile(`(?i)^just now`)

// absoluteFormats are tried in order; the first layout that fully parses
// the text wins.
var absoluteFormats = []string{
	"January 2, 2006 at 3:04 PM",
	"January 2 at 3:04 PM",
	"Jan 2, 2006 at 3:04 PM",
	"Jan 2 at 3:04 PM",
	"1/2/2006",
	"1/2/06",
}

// ParseTimestamp converts a relative or absolute timestamp string to an
// absolute time, using the moment of the call as the reference for
// relative forms ("2h", "3d", "Just now", "Yesterday at 3:45 PM").
// Unparseable text is not an error; it returns nil, signaling "timestamp
// unknown" to the caller.
func ParseTimestamp(text string) *time.Time {
	return parseTimestampAt(text, time.Now())
}

func parseTimestampAt(text string, now time.Time) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	for _, p := range relativePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		t := now.Add(-time.Duration(n) * p.unit)
		return &t
	}

	if justNowRe.MatchString(text) {
		t := now
		return &t
	}

	// The time-of-day suffix on "Yesterday at 3:45 PM" is dropped.
	if strings.HasPrefix(strings.ToLower(text), "yesterday") {
		t := now.AddDate(0, 0, -1)
		return &t
	}

	for _, layout := range absoluteFormats {
		parsed, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		// Layouts without a year parse to the zero year; substitute the
		// current one.
		if parsed.Year() == 0 {
			parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), 0, 0, parsed.Location())
		}
		return &parsed
	}

	return nil
}
