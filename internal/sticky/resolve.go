package sticky

// contextOf returns the folder a row belongs to: the row itself when it is
// an expanded folder, its parent otherwise.
func contextOf(n Node) Node {
	if n.IsFolder() && n.IsExpanded() {
		return n
	}
	return n.Parent()
}

// PathLength counts context and its ancestors down to baseLevel.
func PathLength(context Node, baseLevel int) int {
	length := 0
	for cur := context; cur != nil && cur.Level() >= baseLevel; cur = cur.Parent() {
		length++
	}
	return length
}

// ResolveContext returns the innermost context node whose header stack has
// scrolled past viewportTop, or nil.
//
// Rows whose context is missing or shallower than baseLevel are skipped. The
// first row whose bottom edge is not above its predicted stack ends the walk.
func ResolveContext(tv TreeView, baseLevel, viewportTop int, predict HeightPredictor) Node {
	var final Node
	VisitRendered(tv, func(n Node) bool {
		ctx := contextOf(n)
		if ctx == nil || ctx.Level() < baseLevel {
			return true
		}
		line := viewportTop + predict(ctx, PathLength(ctx, baseLevel))
		rect, _ := n.Rect()
		if rect.Bottom < line {
			final = ctx
			return true
		}
		return false
	})
	return final
}
