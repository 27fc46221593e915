// Package goquery provides document-tree adapters backed by statically
// parsed HTML. It serves the legacy server-rendered layout, where no
// JavaScript runs, and extractor tests that build nodes from fixture
// HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/foragehq/forage"
	"golang.org/x/net/html"
)

// Ensure Node implements forage.Node at compile time.
var _ forage.Node = (*Node)(nil)

// Node adapts a goquery selection to the forage.Node interface.
type Node struct {
	sel *goquery.Selection
}

// Parse parses static HTML and returns the document root as a Node.
func Parse(rawHTML string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// NewNode wraps an existing selection.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel}
}

// Text approximates the rendered visible text of the element: block
// level elements and <br> introduce line breaks, which the line-based
// extraction heuristics depend on. goquery's own Text() concatenates
// text nodes without any structure.
func (n *Node) Text() string {
	var b strings.Builder
	for _, node := range n.sel.Nodes {
		writeVisibleText(&b, node)
	}
	return strings.TrimSpace(collapseBlankLines(b.String()))
}

// Attr returns the named attribute of the first matched element.
func (n *Node) Attr(name string) string {
	v, _ := n.sel.Attr(name)
	return v
}

// Query returns the first descendant matching the selector, or nil.
func (n *Node) Query(selector string) forage.Node {
	found := n.sel.Find(selector)
	if found.Length() == 0 {
		return nil
	}
	return &Node{sel: found.First()}
}

// QueryAll returns all descendants matching the selector.
func (n *Node) QueryAll(selector string) []forage.Node {
	var nodes []forage.Node
	n.sel.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &Node{sel: sel})
	})
	return nodes
}

// Closest returns the nearest element (self or ancestor) matching the
// selector, or nil.
func (n *Node) Closest(selector string) forage.Node {
	found := n.sel.Closest(selector)
	if found.Length() == 0 {
		return nil
	}
	return &Node{sel: found}
}

// blockTags are elements that terminate a visible line.
var blockTags = map[string]bool{
	"article": true, "aside": true, "blockquote": true, "div": true,
	"footer": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "li": true, "ol": true,
	"p": true, "section": true, "table": true, "tr": true, "ul": true,
}

func writeVisibleText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "br":
			b.WriteString("\n")
			return
		case "script", "style", "head":
			return
		}
	}
	// A block element starts and ends a visible line, so inline text on
	// either side never glues to its content.
	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeVisibleText(b, c)
	}
	if block {
		b.WriteString("\n")
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}
