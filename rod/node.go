package rod

import (
	"github.com/foragehq/forage"
	"github.com/go-rod/rod"
)

// Ensure Node implements forage.Node at compile time.
var _ forage.Node = (*Node)(nil)

// Node adapts a live browser element to the forage.Node interface.
//
// Every query failure — detached element, navigation mid-query, CDP
// timeout — is reported as absence, per the Node contract. A broken
// element costs the record built from it, never the batch.
type Node struct {
	el *rod.Element
}

// NewNode wraps an existing element.
func NewNode(el *rod.Element) *Node {
	return &Node{el: el}
}

// Text returns the element's rendered text.
func (n *Node) Text() string {
	text, err := n.el.Text()
	if err != nil {
		return ""
	}
	return text
}

// Attr returns the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	v, err := n.el.Attribute(name)
	if err != nil || v == nil {
		return ""
	}
	return *v
}

// Query returns the first descendant matching the selector, or nil.
func (n *Node) Query(selector string) forage.Node {
	has, el, err := n.el.Has(selector)
	if err != nil || !has {
		return nil
	}
	return &Node{el: el}
}

// QueryAll returns all descendants matching the selector.
func (n *Node) QueryAll(selector string) []forage.Node {
	els, err := n.el.Elements(selector)
	if err != nil {
		return nil
	}
	nodes := make([]forage.Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &Node{el: el})
	}
	return nodes
}

// Closest returns the nearest element (self or ancestor) matching the
// selector, or nil.
func (n *Node) Closest(selector string) forage.Node {
	el, err := n.el.ElementByJS(rod.Eval(`s => this.closest(s)`, selector))
	if err != nil || el == nil {
		return nil
	}
	return &Node{el: el}
}
