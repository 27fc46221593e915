// Package scrape orchestrates a group scrape: it paces page
// interactions, walks feed nodes, runs the layout-appropriate extractor
// per node, and assembles the typed result.
package scrape

import (
	"strings"
	"time"

	"github.com/foragehq/forage"
)

// Options configures one scrape run.
type Options struct {
	// Group is a group URL, numeric id, or slug. See
	// NormalizeGroupIdentifier.
	Group string

	// Days bounds the scrape to posts from the last N days when no
	// explicit Since is given.
	Days int

	// Since and Until are explicit date bounds in YYYY-MM-DD form.
	Since string
	Until string

	// Limit caps the number of posts collected; 0 means no limit.
	Limit int

	// Delay is the base pause between page interactions, in seconds.
	Delay float64

	// DelayVariance is the uniform jitter applied around Delay, in
	// seconds.
	DelayVariance float64

	// SkipComments disables comment extraction entirely.
	SkipComments bool

	// MinReactions and TopComments are the comment filter thresholds;
	// zero disables the respective step.
	MinReactions int
	TopComments  int

	// Headless controls browser visibility.
	Headless bool
}

// DefaultOptions returns the options used when nothing is specified.
func DefaultOptions() Options {
	return Options{
		Days:          7,
		Delay:         2.0,
		DelayVariance: 0.5,
		Headless:      true,
	}
}

const dateLayout = "2006-01-02"

// NormalizeGroupIdentifier reduces a group reference to its bare
// identifier: full group URLs lose their host, path, and query; numeric
// ids, slugs, and dotted slugs pass through; whitespace is trimmed.
func NormalizeGroupIdentifier(s string) string {
	s = strings.TrimSpace(s)

	const marker = "/groups/"
	if i := strings.Index(s, marker); i >= 0 {
		s = s[i+len(marker):]
		if j := strings.IndexAny(s, "/?"); j >= 0 {
			s = s[:j]
		}
	}
	return s
}

// DateRange resolves the options' date bounds: explicit dates win,
// otherwise the range is the trailing Days window ending now.
// Returns EINVALID for unparseable dates.
func (o Options) DateRange() (forage.DateRange, error) {
	until := time.Now()
	if o.Until != "" {
		t, err := time.Parse(dateLayout, o.Until)
		if err != nil {
			return forage.DateRange{}, forage.Errorf(forage.EINVALID, "invalid until date %q", o.Until)
		}
		until = t
	}

	days := o.Days
	if days <= 0 {
		days = 7
	}
	since := until.AddDate(0, 0, -days)
	if o.Since != "" {
		t, err := time.Parse(dateLayout, o.Since)
		if err != nil {
			return forage.DateRange{}, forage.Errorf(forage.EINVALID, "invalid since date %q", o.Since)
		}
		since = t
	}

	return forage.DateRange{Since: since, Until: until}, nil
}
