package mock

import "github.com/foragehq/forage"

var _ forage.Node = (*Node)(nil)

// Node is a mock implementation of forage.Node. Unset functions report
// absence, matching the Node contract, so tests only wire the signals
// the code under test should see.
type Node struct {
	TextFn     func() string
	AttrFn     func(name string) string
	QueryFn    func(selector string) forage.Node
	QueryAllFn func(selector string) []forage.Node
	ClosestFn  func(selector string) forage.Node
}

func (n *Node) Text() string {
	if n.TextFn == nil {
		return ""
	}
	return n.TextFn()
}

func (n *Node) Attr(name string) string {
	if n.AttrFn == nil {
		return ""
	}
	return n.AttrFn(name)
}

func (n *Node) Query(selector string) forage.Node {
	if n.QueryFn == nil {
		return nil
	}
	return n.QueryFn(selector)
}

func (n *Node) QueryAll(selector string) []forage.Node {
	if n.QueryAllFn == nil {
		return nil
	}
	return n.QueryAllFn(selector)
}

func (n *Node) Closest(selector string) forage.Node {
	if n.ClosestFn == nil {
		return nil
	}
	return n.ClosestFn(selector)
}
