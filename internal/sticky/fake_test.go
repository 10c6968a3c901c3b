package sticky

import (
	"fmt"
	"time"
)

type fakeNode struct {
	id       string
	level    int
	folder   bool
	expanded bool
	parent   *fakeNode
	children []*fakeNode

	top    int
	height int
	hidden bool
}

func (n *fakeNode) ID() string       { return n.id }
func (n *fakeNode) Title() string    { return "title " + n.id }
func (n *fakeNode) Icon() string     { return "" }
func (n *fakeNode) Level() int       { return n.level }
func (n *fakeNode) IsFolder() bool   { return n.folder || len(n.children) > 0 }
func (n *fakeNode) IsExpanded() bool { return n.expanded }
func (n *fakeNode) IsVisible() bool  { return !n.hidden }

func (n *fakeNode) Rect() (Rect, bool) {
	if n.hidden || n.height <= 0 {
		return Rect{}, false
	}
	return Rect{Top: n.top, Bottom: n.top + n.height, Right: 200}, true
}

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Children() []Node {
	out := make([]Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

func folder(id string, children ...*fakeNode) *fakeNode {
	return &fakeNode{id: id, folder: true, expanded: true, children: children}
}

func collapsed(id string, children ...*fakeNode) *fakeNode {
	n := folder(id, children...)
	n.expanded = false
	return n
}

func note(id string) *fakeNode {
	return &fakeNode{id: id}
}

type fakeTree struct {
	nodes   []*fakeNode
	byID    map[string]*fakeNode
	focused bool
	active  Node
}

// layout links roots and places every displayed row itemHeight apart,
// starting at containerTop and shifted up by scroll. Rows under collapsed
// folders are hidden.
func layout(itemHeight, containerTop, scroll int, roots ...*fakeNode) *fakeTree {
	t := &fakeTree{byID: make(map[string]*fakeNode)}
	row := 0
	var place func(n *fakeNode, parent *fakeNode, level int, shown bool)
	place = func(n *fakeNode, parent *fakeNode, level int, shown bool) {
		n.parent = parent
		n.level = level
		n.hidden = !shown
		if shown {
			n.top = containerTop + row*itemHeight - scroll
			n.height = itemHeight
			row++
		}
		t.nodes = append(t.nodes, n)
		t.byID[n.id] = n
		for _, c := range n.children {
			place(c, n, level+1, shown && n.expanded)
		}
	}
	for _, root := range roots {
		place(root, nil, 1, true)
	}
	return t
}

func (t *fakeTree) hide(ids ...string) {
	for _, id := range ids {
		t.byID[id].hidden = true
	}
}

func (t *fakeTree) Visit(fn func(Node) bool) {
	for _, n := range t.nodes {
		if !fn(n) {
			return
		}
	}
}

func (t *fakeTree) NodesByID(id string) []Node {
	n, ok := t.byID[id]
	if !ok {
		return nil
	}
	return []Node{n}
}

func (t *fakeTree) SetFocus()        { t.focused = true }
func (t *fakeTree) SetActive(n Node) { t.active = n }

type fakeScroller struct {
	rect     Rect
	scroll   int
	padding  int
	target   int
	duration time.Duration
	scrolls  int
}

func (s *fakeScroller) Rect() Rect     { return s.rect }
func (s *fakeScroller) ScrollTop() int { return s.scroll }

func (s *fakeScroller) ScrollTo(offset int, d time.Duration) {
	s.target = offset
	s.duration = d
	s.scrolls++
}

func (s *fakeScroller) SetPaddingTop(px int) { s.padding = px }

type fakeOverlay struct {
	rowHeight int
	entries   []HeaderEntry
	baseLevel int
	visible   bool
	renders   int
}

func (o *fakeOverlay) Render(entries []HeaderEntry, baseLevel int) {
	o.entries = entries
	o.baseLevel = baseLevel
	o.renders++
}

func (o *fakeOverlay) Show()         { o.visible = true }
func (o *fakeOverlay) Hide()         { o.visible = false }
func (o *fakeOverlay) Visible() bool { return o.visible }

func (o *fakeOverlay) Height() int {
	if !o.visible {
		return 0
	}
	return len(o.entries) * o.rowHeight
}

type warnings struct {
	lines []string
}

func (w *warnings) warnf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func ids(entries []HeaderEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.NoteID)
	}
	return out
}
