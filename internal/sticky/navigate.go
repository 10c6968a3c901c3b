package sticky

import "github.com/atomicstack/stickytree/internal/logging/events"

// Navigate activates the first node carrying id and scrolls it just below
// the overlay. It reports whether a node was found.
func (w *Widget) Navigate(id string) bool {
	if w.tree == nil {
		return false
	}
	nodes := w.tree.NodesByID(id)
	if len(nodes) == 0 {
		w.opts.Warn("sticky headers: could not find any node with id %s", id)
		events.Sticky.NavigateMissing(id)
		return false
	}
	node := nodes[0]
	w.tree.SetFocus()
	w.tree.SetActive(node)

	rect, ok := node.Rect()
	if !ok || w.scroller == nil {
		events.Sticky.Navigate(id, -1)
		return true
	}
	container := w.scroller.Rect()
	relativeTop := rect.Top - container.Top
	stickyHeight := 0
	if w.overlay != nil && w.overlay.Visible() {
		stickyHeight = w.overlay.Height()
	}
	target := w.scroller.ScrollTop() + relativeTop - (stickyHeight + w.opts.Gap)
	w.scroller.ScrollTo(target, w.opts.ScrollDuration)
	events.Sticky.Navigate(id, target)
	return true
}
