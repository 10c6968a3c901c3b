package tree

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/stickytree/internal/sticky"
)

func loadView(t *testing.T, window Window) *View {
	t.Helper()
	roots, err := LoadFile(filepath.Join("testdata", "notes.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v := NewView(roots, window)
	v.SetBounds(1, 0, 40, 4)
	return v
}

func rowTitles(v *View) []string {
	return titles(v.Rows())
}

func TestViewRows(t *testing.T) {
	v := loadView(t, DefaultWindow)
	want := []string{"Projects", "Roadmap", "Releases", "v1.0", "v1.1", "Archive", "Journal", "Monday", "Scratch"}
	if got := rowTitles(v); !equalStrings(got, want) {
		t.Fatalf("unexpected rows %v", got)
	}
	if v.MaxScroll() != 5 {
		t.Fatalf("expected max scroll 5, got %d", v.MaxScroll())
	}
}

func TestViewCollapseMovesCursorToAncestor(t *testing.T) {
	v := loadView(t, DefaultWindow)
	v.SetCursor(3)
	releases := v.Lookup("projects/releases")[0]
	if !v.Collapse(releases) {
		t.Fatalf("expected collapse to change rows")
	}
	if got := v.CursorNode(); got != releases {
		t.Fatalf("expected cursor on collapsed folder, got %v", got.Title)
	}
	if v.Collapse(releases) {
		t.Fatalf("expected second collapse to be a no-op")
	}
	if !v.Toggle(releases) || !releases.Expanded {
		t.Fatalf("expected toggle to expand again")
	}
	roadmap := v.Lookup("roadmap")[0]
	if v.Toggle(roadmap) {
		t.Fatalf("expected toggle on a note to do nothing")
	}
}

func TestViewExpandCollapseAll(t *testing.T) {
	v := loadView(t, DefaultWindow)
	if !v.CollapseAll() {
		t.Fatalf("expected collapse all to change state")
	}
	if got := rowTitles(v); !equalStrings(got, []string{"Projects", "Journal", "Scratch"}) {
		t.Fatalf("unexpected rows %v", got)
	}
	if !v.ExpandAll() {
		t.Fatalf("expected expand all to change state")
	}
	if v.Len() != 9 {
		t.Fatalf("expected 9 rows, got %d", v.Len())
	}
	if v.ExpandAll() {
		t.Fatalf("expected second expand all to be a no-op")
	}
}

func TestViewSetPaddingKeepsRowsInPlace(t *testing.T) {
	v := loadView(t, DefaultWindow)
	v.ScrollTo(2)
	before, ok := v.RowRect(3)
	if !ok {
		t.Fatalf("expected row 3 rendered")
	}
	v.SetPadding(2)
	if v.ScrollTop() != 4 {
		t.Fatalf("expected scroll compensated to 4, got %d", v.ScrollTop())
	}
	after, _ := v.RowRect(3)
	if before != after {
		t.Fatalf("expected row to stay put, before %+v after %+v", before, after)
	}
	v.SetPadding(0)
	if v.ScrollTop() != 2 || v.Padding() != 0 {
		t.Fatalf("expected padding removal to restore scroll, got %d", v.ScrollTop())
	}
}

func TestViewPaddingAtTopPushesRowsDown(t *testing.T) {
	v := loadView(t, DefaultWindow)
	v.SetPadding(2)
	if v.ScrollTop() != 2 {
		t.Fatalf("expected scroll 2, got %d", v.ScrollTop())
	}
	v.ScrollTo(0)
	rect, ok := v.RowRect(0)
	if !ok || rect.Top != 3 {
		t.Fatalf("expected first row below padding, got %+v %v", rect, ok)
	}
	if _, ok := v.RowAtLine(0); ok {
		t.Fatalf("expected padding line to map to no row")
	}
	if row, ok := v.RowAtLine(2); !ok || row != 0 {
		t.Fatalf("expected line 2 to map to row 0, got %d %v", row, ok)
	}
}

func TestViewRenderWindow(t *testing.T) {
	v := loadView(t, DefaultWindow)
	if !v.Rendered(5) {
		t.Fatalf("expected row inside lookahead to render")
	}
	if v.Rendered(6) {
		t.Fatalf("expected row past lookahead to stay unrendered")
	}
	v.ScrollTo(5)
	if !v.Rendered(0) {
		t.Fatalf("expected scrolled-past rows to stay rendered")
	}

	w := loadView(t, Window{Above: 1, Below: 0})
	w.ScrollTo(4)
	if w.Rendered(2) {
		t.Fatalf("expected row above the window to be unrendered")
	}
	if !w.Rendered(3) || !w.Rendered(7) {
		t.Fatalf("expected window rows to render")
	}
	if w.Rendered(8) {
		t.Fatalf("expected row below the pane to be unrendered")
	}
	if _, ok := w.RowRect(2); ok {
		t.Fatalf("expected no geometry for unrendered row")
	}
}

func TestViewReloadKeepsState(t *testing.T) {
	v := loadView(t, DefaultWindow)
	v.Collapse(v.Lookup("journal")[0])
	v.SetCursor(6)
	v.ScrollTo(3)

	roots, err := LoadFile(filepath.Join("testdata", "notes.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v.Reload(roots)
	if v.Lookup("journal")[0].Expanded {
		t.Fatalf("expected collapsed folder to stay collapsed")
	}
	if got := v.CursorNode(); got == nil || got.ID != "journal" {
		t.Fatalf("expected cursor kept on journal, got %+v", got)
	}
	if v.ScrollTop() != 3 {
		t.Fatalf("expected scroll kept, got %d", v.ScrollTop())
	}
}

func TestViewActivateExpandsAndReveals(t *testing.T) {
	v := loadView(t, DefaultWindow)
	v.CollapseAll()
	target := v.Lookup("projects/releases/v1.1")[0]
	v.Activate(target)
	if v.Active() != target || v.CursorNode() != target {
		t.Fatalf("expected target active under cursor")
	}
	if !v.Lookup("projects")[0].Expanded || !v.Lookup("projects/releases")[0].Expanded {
		t.Fatalf("expected ancestors expanded")
	}
	row, _ := v.RowOf(target)
	if _, ok := v.RowRect(row); !ok {
		t.Fatalf("expected activated row to be rendered")
	}
}

func TestStickyAdapter(t *testing.T) {
	v := loadView(t, DefaultWindow)
	tv := v.Sticky()

	var visited []string
	tv.Visit(func(n sticky.Node) bool {
		visited = append(visited, n.ID())
		return n.ID() != "projects/releases"
	})
	if !equalStrings(visited, []string{"projects", "roadmap", "projects/releases"}) {
		t.Fatalf("unexpected visit order %v", visited)
	}

	nodes := tv.NodesByID("projects")
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}
	root := nodes[0]
	if root.Parent() != nil {
		t.Fatalf("expected nil parent for a top-level node")
	}
	if !root.IsFolder() || !root.IsExpanded() || root.Level() != 1 {
		t.Fatalf("unexpected root flags")
	}
	if len(root.Children()) != 3 {
		t.Fatalf("expected 3 children, got %d", len(root.Children()))
	}
	archive := tv.NodesByID("projects/archive")[0]
	if archive.IsExpanded() {
		t.Fatalf("expected archive collapsed")
	}
	if !archive.IsVisible() {
		t.Fatalf("expected archive inside the lookahead to be visible")
	}
	if tv.NodesByID("journal")[0].IsVisible() {
		t.Fatalf("expected journal past the lookahead to be invisible")
	}
	rect, ok := root.Rect()
	if !ok || rect.Top != 1 || rect.Height() != 1 {
		t.Fatalf("unexpected root rect %+v %v", rect, ok)
	}
	if tv.NodesByID("missing") != nil {
		t.Fatalf("expected no nodes for unknown id")
	}

	tv.SetFocus()
	tv.SetActive(tv.NodesByID("journal/monday")[0])
	if !v.Focused() || v.Active() == nil || v.Active().ID != "journal/monday" {
		t.Fatalf("expected focus and activation to reach the view")
	}
	if got, ok := Unwrap(archive); !ok || got.ID != "projects/archive" {
		t.Fatalf("expected unwrap to return the tree node")
	}
}
