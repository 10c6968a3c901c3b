package sticky

import "time"

// Rect is a rendered bounding box in the coordinate space of the scroll
// container's parent (screen rows for the terminal, pixels for a browser).
type Rect struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Node is the read-only view of a tree row the resolver needs.
type Node interface {
	ID() string
	Title() string
	Icon() string
	Level() int
	IsFolder() bool
	IsExpanded() bool
	// IsVisible reports whether the row is currently rendered.
	IsVisible() bool
	// Rect returns the row geometry. ok is false when the row is not
	// rendered or has no extent.
	Rect() (rect Rect, ok bool)
	// Parent returns nil for top-level nodes.
	Parent() Node
	Children() []Node
}

// TreeView is the hierarchical list widget the headers are derived from.
type TreeView interface {
	// Visit walks every node in document order until fn returns false.
	Visit(fn func(Node) bool)
	NodesByID(id string) []Node
	SetFocus()
	SetActive(n Node)
}

// Scroller is the scroll container hosting the tree.
type Scroller interface {
	Rect() Rect
	ScrollTop() int
	// ScrollTo moves the container to offset. A positive duration animates
	// the move.
	ScrollTo(offset int, d time.Duration)
	SetPaddingTop(px int)
}

// Overlay is the presentation surface for the header stack.
type Overlay interface {
	Render(entries []HeaderEntry, baseLevel int)
	Show()
	Hide()
	Visible() bool
	// Height is the rendered height of the overlay, zero while hidden.
	Height() int
}

// HeaderEntry is one pinned ancestor row.
type HeaderEntry struct {
	NoteID           string
	Title            string
	Icon             string
	Level            int
	ChildFolderCount int
}

// Result captures the outcome of one recompute.
type Result struct {
	Entries   []HeaderEntry
	BaseLevel int
	Visible   bool
}

func (r Result) equal(other Result) bool {
	if r.Visible != other.Visible || r.BaseLevel != other.BaseLevel || len(r.Entries) != len(other.Entries) {
		return false
	}
	for i := range r.Entries {
		if r.Entries[i] != other.Entries[i] {
			return false
		}
	}
	return true
}
