package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/foragehq/forage"
)

// Ensure Detector implements forage.LayoutDetector at compile time.
var _ forage.LayoutDetector = (*Detector)(nil)

// Detector identifies which layout variant produced a page. It checks
// for structural markers that are unique to each surface.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified layout.
// Returns LayoutUnknown if no marker matches.
func (d *Detector) Detect(rawHTML string) forage.Layout {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return forage.LayoutUnknown
	}

	// The legacy surface is server-rendered with stable container ids
	// and data-ft metadata attributes.
	if d.hasSelector(doc, "#objects_container") ||
		d.hasSelector(doc, "#m_group_stories_container") ||
		(d.hasSelector(doc, "[data-ft]") && d.hasSelector(doc, "#viewport")) {
		return forage.LayoutBasic
	}

	// The modern surface mounts a React tree and tags feed content with
	// ARIA roles.
	if d.hasSelector(doc, `div[role="feed"]`) ||
		d.hasSelector(doc, `div[role="article"]`) ||
		d.hasSelector(doc, `[id^="mount_0_0"]`) {
		return forage.LayoutModern
	}

	return forage.LayoutUnknown
}

func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
