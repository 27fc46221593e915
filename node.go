package forage

import "context"

// Node is an opaque, queryable handle to one rendered element and its
// descendants, supplied by a rendering adapter (rod/ for live pages,
// goquery/ for static HTML).
//
// Implementations report absence rather than errors: a missing attribute
// is an empty string, a missing child is a nil Node. Adapters over live
// renderers must absorb traversal faults (detached elements, query
// timeouts) into absence, so a broken element can cost at most the
// record built from it, never the batch.
type Node interface {
	// Text returns the visible text of the element and its descendants,
	// with line breaks between block-level elements.
	Text() string

	// Attr returns the value of the named attribute, or "" when absent.
	Attr(name string) string

	// Query returns the first descendant matching the CSS selector, or
	// nil when none matches.
	Query(selector string) Node

	// QueryAll returns all descendants matching the CSS selector, in
	// document order.
	QueryAll(selector string) []Node

	// Closest returns the nearest element matching the CSS selector by
	// testing the element itself and walking up its ancestors, or nil.
	Closest(selector string) Node
}

// Layout identifies a document layout variant of the scraped service.
type Layout string

// Supported layout variants.
const (
	LayoutUnknown Layout = ""
	LayoutModern  Layout = "modern"
	LayoutBasic   Layout = "basic"
)

// Extractor assembles typed records from document-tree nodes. One
// concrete strategy exists per layout variant; the orchestration layer
// selects a strategy once per scrape.
//
// A nil result means the node holds no extractable record (noise,
// sponsored content, empty content, or a traversal fault). Extraction
// never fails the batch.
type Extractor interface {
	ExtractPost(node Node) *Post
	ExtractComment(node Node) *Comment
}

// Fetcher retrieves the rendered document tree for a URL.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and
	// returns the document root. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (Node, error)

	// Close releases rendering resources.
	Close() error
}

// LayoutDetector identifies the layout variant from raw HTML.
type LayoutDetector interface {
	Detect(html string) Layout
}
