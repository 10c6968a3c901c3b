package tree

import "github.com/atomicstack/stickytree/internal/sticky"

// Sticky exposes the view to the sticky header widget. Only displayed rows
// are visited; collapsed descendants never have geometry.
func (v *View) Sticky() sticky.TreeView {
	return stickyTree{v: v}
}

// StickyNode wraps n for the sticky header widget. It returns nil for a nil
// node.
func (v *View) StickyNode(n *Node) sticky.Node {
	if n == nil {
		return nil
	}
	return stickyNode{v: v, n: n}
}

type stickyTree struct {
	v *View
}

func (t stickyTree) Visit(fn func(sticky.Node) bool) {
	for _, n := range t.v.rows {
		if !fn(stickyNode{v: t.v, n: n}) {
			return
		}
	}
}

func (t stickyTree) NodesByID(id string) []sticky.Node {
	nodes := t.v.byID[id]
	if len(nodes) == 0 {
		return nil
	}
	out := make([]sticky.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, stickyNode{v: t.v, n: n})
	}
	return out
}

func (t stickyTree) SetFocus() { t.v.Focus() }

func (t stickyTree) SetActive(n sticky.Node) {
	if node, ok := Unwrap(n); ok {
		t.v.Activate(node)
	}
}

type stickyNode struct {
	v *View
	n *Node
}

func (s stickyNode) ID() string    { return s.n.ID }
func (s stickyNode) Title() string { return s.n.Title }
func (s stickyNode) Icon() string  { return s.n.Icon }
func (s stickyNode) Level() int    { return s.n.Level() }

func (s stickyNode) IsFolder() bool   { return s.n.IsFolder() }
func (s stickyNode) IsExpanded() bool { return s.n.IsFolder() && s.n.Expanded }

func (s stickyNode) IsVisible() bool {
	row, ok := s.v.rowOf[s.n]
	return ok && s.v.Rendered(row)
}

func (s stickyNode) Rect() (sticky.Rect, bool) {
	row, ok := s.v.rowOf[s.n]
	if !ok {
		return sticky.Rect{}, false
	}
	return s.v.RowRect(row)
}

func (s stickyNode) Parent() sticky.Node {
	if s.n.Parent == nil {
		return nil
	}
	return stickyNode{v: s.v, n: s.n.Parent}
}

func (s stickyNode) Children() []sticky.Node {
	out := make([]sticky.Node, 0, len(s.n.Children))
	for _, child := range s.n.Children {
		out = append(out, stickyNode{v: s.v, n: child})
	}
	return out
}

// Unwrap returns the tree node behind a sticky node created by this package.
func Unwrap(n sticky.Node) (*Node, bool) {
	sn, ok := n.(stickyNode)
	if !ok {
		return nil, false
	}
	return sn.n, true
}
