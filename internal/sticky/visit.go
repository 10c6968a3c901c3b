package sticky

// rendered reports whether n currently occupies screen space.
func rendered(n Node) bool {
	if n == nil || !n.IsVisible() {
		return false
	}
	rect, ok := n.Rect()
	return ok && rect.Height() > 0
}

// VisitRendered walks the rendered nodes of tv in document order, stopping
// as soon as fn returns false. Nodes without geometry are passed over.
func VisitRendered(tv TreeView, fn func(Node) bool) {
	if tv == nil {
		return
	}
	tv.Visit(func(n Node) bool {
		if !rendered(n) {
			return true
		}
		return fn(n)
	})
}

// FirstRendered returns the first rendered node, or nil.
func FirstRendered(tv TreeView) Node {
	var first Node
	VisitRendered(tv, func(n Node) bool {
		first = n
		return false
	})
	return first
}

// LocateVisibleRoot returns the first rendered node and its level. ok is
// false when nothing is rendered.
func LocateVisibleRoot(tv TreeView) (root Node, baseLevel int, ok bool) {
	root = FirstRendered(tv)
	if root == nil {
		return nil, 0, false
	}
	return root, root.Level(), true
}
