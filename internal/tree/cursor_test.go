package tree

import "testing"

func flatView(titles ...string) *View {
	roots := make([]*Node, len(titles))
	for i, title := range titles {
		roots[i] = &Node{ID: title, Title: title}
	}
	v := NewView(roots, DefaultWindow)
	v.SetBounds(0, 0, 20, 2)
	return v
}

func TestMoveCursorHomeEnd(t *testing.T) {
	v := flatView("a", "b", "c")
	if !v.MoveCursorEnd() || v.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", v.Cursor())
	}
	if v.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !v.MoveCursorHome() || v.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", v.Cursor())
	}

	empty := flatView()
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty view")
	}
	if empty.CursorNode() != nil {
		t.Fatalf("expected no cursor node for empty view")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	v := flatView("a", "b", "c", "d", "e")
	if !v.MoveCursorPageDown(2) || v.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", v.Cursor())
	}
	if !v.MoveCursorPageDown(2) || v.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", v.Cursor())
	}
	if v.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !v.MoveCursorPageUp(10) || v.Cursor() != 0 {
		t.Fatalf("expected oversized page to clamp to 0, got %d", v.Cursor())
	}
}

func TestMoveCursorUpDown(t *testing.T) {
	v := flatView("a", "b")
	if v.MoveCursorUp() {
		t.Fatalf("expected no movement above first row")
	}
	if !v.MoveCursorDown() || v.CursorNode().Title != "b" {
		t.Fatalf("expected cursor on b")
	}
	if v.MoveCursorDown() {
		t.Fatalf("expected no movement below last row")
	}
}

func TestMoveCursorToParent(t *testing.T) {
	parent := &Node{ID: "p", Title: "p", Expanded: true}
	child := parent.Add(&Node{ID: "c", Title: "c"})
	v := NewView([]*Node{parent}, DefaultWindow)
	row, _ := v.RowOf(child)
	v.SetCursor(row)
	if !v.MoveCursorToParent() || v.CursorNode() != parent {
		t.Fatalf("expected cursor on parent")
	}
	if v.MoveCursorToParent() {
		t.Fatalf("expected no parent for top-level row")
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	v := flatView("a", "b", "c", "d", "e")
	v.SetCursor(4)
	if !v.EnsureCursorVisible(0) || v.ScrollTop() != 3 {
		t.Fatalf("expected scroll 3, got %d", v.ScrollTop())
	}
	v.SetCursor(3)
	if v.EnsureCursorVisible(0) {
		t.Fatalf("expected visible cursor to leave scroll alone")
	}
	if !v.EnsureCursorVisible(1) || v.ScrollTop() != 2 {
		t.Fatalf("expected reserved line to pull scroll to 2, got %d", v.ScrollTop())
	}
}
