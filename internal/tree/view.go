package tree

import "github.com/atomicstack/stickytree/internal/sticky"

// Window controls lazy rendering around the viewport. Rows more than Below
// lines under the viewport are not rendered. Above bounds the rows kept
// rendered over the viewport; a negative value keeps every row above.
type Window struct {
	Above int
	Below int
}

// DefaultWindow keeps scrolled-past rows rendered and a small lookahead.
var DefaultWindow = Window{Above: -1, Below: 2}

// View lays the expanded part of a tree out as one terminal row per node.
// Content lines are the injected top padding followed by the rows; the
// scroll offset counts content lines.
type View struct {
	roots  []*Node
	rows   []*Node
	rowOf  map[*Node]int
	byID   map[string][]*Node
	window Window

	cursor  int
	scroll  int
	padding int

	top    int
	left   int
	width  int
	height int

	active  *Node
	focused bool
}

// NewView creates a view over roots.
func NewView(roots []*Node, window Window) *View {
	v := &View{window: window}
	v.SetRoots(roots)
	return v
}

// SetRoots replaces the tree, resetting cursor and scroll.
func (v *View) SetRoots(roots []*Node) {
	Link(roots)
	v.roots = roots
	v.active = nil
	v.cursor = 0
	v.scroll = 0
	v.reindex()
	v.rebuild()
}

// Reload replaces the tree while keeping expansion state, the active node
// and the cursor for ids that still exist.
func (v *View) Reload(roots []*Node) {
	expanded := make(map[string]bool)
	Walk(v.roots, func(n *Node) bool {
		if n.IsFolder() {
			expanded[n.ID] = n.Expanded
		}
		return true
	})
	cursorID := ""
	if n := v.CursorNode(); n != nil {
		cursorID = n.ID
	}
	activeID := ""
	if v.active != nil {
		activeID = v.active.ID
	}
	scroll := v.scroll

	Link(roots)
	Walk(roots, func(n *Node) bool {
		if state, ok := expanded[n.ID]; ok {
			n.Expanded = state
		}
		return true
	})
	v.roots = roots
	v.active = nil
	v.reindex()
	v.rebuild()
	if nodes := v.byID[activeID]; activeID != "" && len(nodes) > 0 {
		v.active = nodes[0]
	}
	v.cursor = 0
	if nodes := v.byID[cursorID]; cursorID != "" && len(nodes) > 0 {
		if row, ok := v.rowOf[nodes[0]]; ok {
			v.cursor = row
		}
	}
	v.clampCursor()
	v.ScrollTo(scroll)
}

func (v *View) reindex() {
	v.byID = make(map[string][]*Node)
	Walk(v.roots, func(n *Node) bool {
		v.byID[n.ID] = append(v.byID[n.ID], n)
		return true
	})
}

// rebuild flattens the expanded part of the tree into rows.
func (v *View) rebuild() {
	var current *Node
	if v.cursor >= 0 && v.cursor < len(v.rows) {
		current = v.rows[v.cursor]
	}
	v.rows = v.rows[:0]
	v.rowOf = make(map[*Node]int)
	for _, root := range v.roots {
		v.appendVisible(root)
	}
	if current != nil {
		if row, ok := v.rowOf[current]; ok {
			v.cursor = row
		} else {
			v.cursor = v.nearestVisibleAncestorRow(current)
		}
	}
	v.clampCursor()
	v.clampScroll()
}

func (v *View) appendVisible(n *Node) {
	v.rowOf[n] = len(v.rows)
	v.rows = append(v.rows, n)
	if !n.Expanded || !n.IsFolder() {
		return
	}
	for _, child := range n.Children {
		v.appendVisible(child)
	}
}

func (v *View) nearestVisibleAncestorRow(n *Node) int {
	for p := n.Parent; p != nil; p = p.Parent {
		if row, ok := v.rowOf[p]; ok {
			return row
		}
	}
	return 0
}

func (v *View) clampCursor() {
	if len(v.rows) == 0 {
		v.cursor = 0
		return
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
}

func (v *View) clampScroll() {
	if v.scroll > v.MaxScroll() {
		v.scroll = v.MaxScroll()
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// Roots returns the top-level nodes.
func (v *View) Roots() []*Node { return v.roots }

// Rows returns the expanded nodes in display order.
func (v *View) Rows() []*Node { return v.rows }

// Len returns the number of rows.
func (v *View) Len() int { return len(v.rows) }

// RowOf returns the row index of n when n is displayed.
func (v *View) RowOf(n *Node) (int, bool) {
	row, ok := v.rowOf[n]
	return row, ok
}

// Lookup returns every node carrying id.
func (v *View) Lookup(id string) []*Node {
	return v.byID[id]
}

// SetBounds places the pane on screen.
func (v *View) SetBounds(top, left, width, height int) {
	v.top = top
	v.left = left
	v.width = width
	v.height = height
	v.clampScroll()
}

// Bounds returns the pane rectangle.
func (v *View) Bounds() sticky.Rect {
	return sticky.Rect{Top: v.top, Bottom: v.top + v.height, Left: v.left, Right: v.left + v.width}
}

// Height returns the pane height in rows.
func (v *View) Height() int { return v.height }

// Width returns the pane width in columns.
func (v *View) Width() int { return v.width }

// ContentHeight is the padding plus one line per row.
func (v *View) ContentHeight() int {
	return v.padding + len(v.rows)
}

// MaxScroll is the largest useful scroll offset.
func (v *View) MaxScroll() int {
	limit := v.ContentHeight() - v.height
	if limit < 0 {
		return 0
	}
	return limit
}

// ScrollTop returns the scroll offset in content lines.
func (v *View) ScrollTop() int { return v.scroll }

// ScrollTo clamps and applies offset. It reports whether the offset changed.
func (v *View) ScrollTo(offset int) bool {
	old := v.scroll
	v.scroll = offset
	v.clampScroll()
	return v.scroll != old
}

// ScrollBy moves the scroll offset by delta lines.
func (v *View) ScrollBy(delta int) bool {
	return v.ScrollTo(v.scroll + delta)
}

// Padding returns the injected top padding.
func (v *View) Padding() int { return v.padding }

// SetPadding changes the top padding and shifts the scroll offset by the
// same amount so rows keep their screen position where possible.
func (v *View) SetPadding(lines int) {
	if lines < 0 {
		lines = 0
	}
	delta := lines - v.padding
	if delta == 0 {
		return
	}
	v.padding = lines
	v.scroll += delta
	v.clampScroll()
}

// Rendered reports whether row currently has geometry.
func (v *View) Rendered(row int) bool {
	if row < 0 || row >= len(v.rows) || v.height <= 0 {
		return false
	}
	line := v.padding + row
	if line >= v.scroll+v.height+v.window.Below {
		return false
	}
	if v.window.Above >= 0 && line < v.scroll-v.window.Above {
		return false
	}
	return true
}

// RowRect returns the screen rectangle of row when it is rendered.
func (v *View) RowRect(row int) (sticky.Rect, bool) {
	if !v.Rendered(row) {
		return sticky.Rect{}, false
	}
	top := v.top + v.padding + row - v.scroll
	return sticky.Rect{Top: top, Bottom: top + 1, Left: v.left, Right: v.left + v.width}, true
}

// RowAtLine maps a pane line (0 = first pane row) to a row index.
func (v *View) RowAtLine(line int) (int, bool) {
	row := v.scroll + line - v.padding
	if line < 0 || line >= v.height || row < 0 || row >= len(v.rows) {
		return 0, false
	}
	return row, true
}

// Expand opens a folder. It reports whether anything changed.
func (v *View) Expand(n *Node) bool {
	if n == nil || !n.IsFolder() || n.Expanded {
		return false
	}
	n.Expanded = true
	v.rebuild()
	return true
}

// Collapse closes a folder. It reports whether anything changed.
func (v *View) Collapse(n *Node) bool {
	if n == nil || !n.IsFolder() || !n.Expanded {
		return false
	}
	n.Expanded = false
	v.rebuild()
	return true
}

// Toggle flips a folder's expansion.
func (v *View) Toggle(n *Node) bool {
	if n == nil || !n.IsFolder() {
		return false
	}
	if n.Expanded {
		return v.Collapse(n)
	}
	return v.Expand(n)
}

// ExpandAll opens every folder.
func (v *View) ExpandAll() bool {
	return v.setAll(true)
}

// CollapseAll closes every folder.
func (v *View) CollapseAll() bool {
	return v.setAll(false)
}

func (v *View) setAll(expanded bool) bool {
	changed := false
	Walk(v.roots, func(n *Node) bool {
		if n.IsFolder() && n.Expanded != expanded {
			n.Expanded = expanded
			changed = true
		}
		return true
	})
	if changed {
		v.rebuild()
	}
	return changed
}

// Activate expands the ancestors of n, marks it active, moves the cursor
// onto it and scrolls it into the pane.
func (v *View) Activate(n *Node) {
	if n == nil {
		return
	}
	changed := false
	for _, p := range n.Ancestors() {
		if !p.Expanded {
			p.Expanded = true
			changed = true
		}
	}
	if changed {
		v.rebuild()
	}
	v.active = n
	if row, ok := v.rowOf[n]; ok {
		v.cursor = row
		v.EnsureCursorVisible(0)
	}
}

// Active returns the active node.
func (v *View) Active() *Node { return v.active }

// Focus marks the tree as focused.
func (v *View) Focus() { v.focused = true }

// Blur clears the focus flag.
func (v *View) Blur() { v.focused = false }

// Focused reports the focus flag.
func (v *View) Focused() bool { return v.focused }
