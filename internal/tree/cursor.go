package tree

// Cursor returns the cursor row.
func (v *View) Cursor() int { return v.cursor }

// CursorNode returns the node under the cursor.
func (v *View) CursorNode() *Node {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return v.rows[v.cursor]
}

// SetCursor moves the cursor to row, clamped to the row range.
func (v *View) SetCursor(row int) bool {
	old := v.cursor
	v.cursor = row
	v.clampCursor()
	return old != v.cursor
}

// MoveCursorHome moves the cursor to the first row.
func (v *View) MoveCursorHome() bool {
	if len(v.rows) == 0 {
		v.cursor = 0
		return false
	}
	old := v.cursor
	v.cursor = 0
	return old != v.cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (v *View) MoveCursorEnd() bool {
	n := len(v.rows)
	if n == 0 {
		v.cursor = 0
		return false
	}
	old := v.cursor
	v.cursor = n - 1
	return old != v.cursor
}

// MoveCursorUp moves the cursor one row up.
func (v *View) MoveCursorUp() bool {
	return v.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor one row down.
func (v *View) MoveCursorDown() bool {
	return v.moveCursorBy(1)
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (v *View) MoveCursorPageUp(maxVisible int) bool {
	return v.moveCursorBy(-v.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (v *View) MoveCursorPageDown(maxVisible int) bool {
	return v.moveCursorBy(v.pageSize(maxVisible))
}

// MoveCursorToParent moves the cursor onto the parent of the current row.
func (v *View) MoveCursorToParent() bool {
	n := v.CursorNode()
	if n == nil || n.Parent == nil {
		return false
	}
	row, ok := v.rowOf[n.Parent]
	if !ok {
		return false
	}
	return v.SetCursor(row)
}

func (v *View) moveCursorBy(delta int) bool {
	if len(v.rows) == 0 {
		v.cursor = 0
		return false
	}
	old := v.cursor
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.cursor += delta
	v.clampCursor()
	return v.cursor != old
}

func (v *View) pageSize(maxVisible int) int {
	total := len(v.rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible scrolls so the cursor row sits inside the pane and
// below the top reserved lines. It reports whether the scroll offset
// changed.
func (v *View) EnsureCursorVisible(reserved int) bool {
	if len(v.rows) == 0 {
		v.cursor = 0
		return v.ScrollTo(0)
	}
	v.clampCursor()
	if v.height <= 0 {
		return false
	}
	if reserved < 0 {
		reserved = 0
	}
	if reserved >= v.height {
		reserved = v.height - 1
	}
	old := v.scroll
	line := v.padding + v.cursor
	if line < v.scroll+reserved {
		v.scroll = line - reserved
	}
	if upper := v.scroll + v.height - 1; line > upper {
		v.scroll = line - v.height + 1
	}
	v.clampScroll()
	return v.scroll != old
}
