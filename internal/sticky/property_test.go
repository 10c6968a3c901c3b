package sticky

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// genTree draws a random forest. Each node is at most one level deeper than
// the node before it, so the sequence always describes a valid outline.
func genTree(t *rapid.T) []*fakeNode {
	count := rapid.IntRange(1, 40).Draw(t, "count")
	var roots []*fakeNode
	var path []*fakeNode
	for i := 0; i < count; i++ {
		depth := rapid.IntRange(1, len(path)+1).Draw(t, fmt.Sprintf("depth%d", i))
		n := &fakeNode{
			id:       fmt.Sprintf("n%d", i),
			folder:   rapid.Bool().Draw(t, fmt.Sprintf("folder%d", i)),
			expanded: rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("expanded%d", i)) > 0,
		}
		path = path[:depth-1]
		if depth == 1 {
			roots = append(roots, n)
		} else {
			parent := path[depth-2]
			parent.children = append(parent.children, n)
		}
		path = append(path, n)
	}
	var fix func(n *fakeNode)
	fix = func(n *fakeNode) {
		if !n.IsFolder() {
			n.expanded = false
		}
		for _, c := range n.children {
			fix(c)
		}
	}
	for _, r := range roots {
		fix(r)
	}
	return roots
}

func TestUpdateProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roots := genTree(rt)
		scroll := rapid.IntRange(0, 400).Draw(rt, "scroll")
		tree := layout(rowH, 0, scroll, roots...)

		h := harness{
			overlay:  &fakeOverlay{rowHeight: rowH},
			scroller: &fakeScroller{rect: Rect{Top: 0, Bottom: 100}},
			warn:     &warnings{},
		}
		h.widget = New(h.overlay, Options{Measure: func() int { return rowH }, Warn: h.warn.warnf})
		h.widget.Attach(tree, h.scroller)

		first := h.widget.Update()
		padding := h.scroller.padding
		second := h.widget.Update()
		require.Equal(rt, first, second, "recompute is idempotent")
		require.Equal(rt, padding, h.scroller.padding)

		if !first.Visible {
			require.Empty(rt, first.Entries)
			require.Zero(rt, h.scroller.padding)
			return
		}
		require.Equal(rt, h.overlay.Height(), h.scroller.padding)
		require.Equal(rt, first.BaseLevel, first.Entries[0].Level)
		for i, e := range first.Entries {
			node := tree.byID[e.NoteID]
			require.True(rt, node.IsFolder(), "header %s is a folder", e.NoteID)
			if i == 0 {
				continue
			}
			require.Equal(rt, first.Entries[i-1].Level+1, e.Level, "levels increase by one")
			require.Equal(rt, first.Entries[i-1].NoteID, node.parent.id, "each header is the parent of the next")
		}
	})
}
