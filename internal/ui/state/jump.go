package state

import (
	"strings"
	"unicode"
)

// Item is one jump target: a folder or note with its breadcrumb label.
type Item struct {
	ID    string
	Label string
	Level int
}

// Jump holds the state of the jump-to-node prompt.
type Jump struct {
	Full        []Item
	Items       []Item
	Query       string
	QueryCursor int
	Cursor      int
}

// NewJump returns a prompt listing items.
func NewJump(items []Item) *Jump {
	j := &Jump{}
	j.SetItems(items)
	return j
}

// SetItems replaces the candidates and reapplies the query.
func (j *Jump) SetItems(items []Item) {
	j.Full = make([]Item, len(items))
	copy(j.Full, items)
	j.SetQuery(j.Query, j.QueryCursor)
}

// SetQuery updates the query and moves the cursor onto the best match.
func (j *Jump) SetQuery(query string, cursor int) {
	j.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	j.QueryCursor = cursor
	j.Items = FilterItems(j.Full, query)
	j.Cursor = 0
	if idx := BestMatchIndex(j.Items, query); idx > 0 {
		j.Cursor = idx
	}
}

// Selected returns the item under the cursor.
func (j *Jump) Selected() (Item, bool) {
	if j.Cursor < 0 || j.Cursor >= len(j.Items) {
		return Item{}, false
	}
	return j.Items[j.Cursor], true
}

// MoveUp moves the match cursor up.
func (j *Jump) MoveUp() bool {
	if j.Cursor <= 0 {
		return false
	}
	j.Cursor--
	return true
}

// MoveDown moves the match cursor down.
func (j *Jump) MoveDown() bool {
	if j.Cursor >= len(j.Items)-1 {
		return false
	}
	j.Cursor++
	return true
}

// QueryCursorPos returns the rune offset of the query cursor.
func (j *Jump) QueryCursorPos() int {
	n := len([]rune(j.Query))
	switch {
	case j.QueryCursor < 0:
		return 0
	case j.QueryCursor > n:
		return n
	}
	return j.QueryCursor
}

// Insert types text at the query cursor.
func (j *Jump) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	j.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the query cursor.
func (j *Jump) DeleteRuneBackward() bool {
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	j.SetQuery(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word before the query cursor.
func (j *Jump) DeleteWordBackward() bool {
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	start := wordStart(runes, pos)
	if start == pos {
		return false
	}
	updated := append(runes[:start:start], runes[pos:]...)
	j.SetQuery(string(updated), start)
	return true
}

// Clear empties the query.
func (j *Jump) Clear() bool {
	if j.Query == "" {
		return false
	}
	j.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (j *Jump) MoveQueryCursorStart() bool {
	return j.moveQueryCursor(0)
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (j *Jump) MoveQueryCursorEnd() bool {
	return j.moveQueryCursor(len([]rune(j.Query)))
}

// MoveQueryCursorLeft moves the query cursor one rune left.
func (j *Jump) MoveQueryCursorLeft() bool {
	return j.moveQueryCursor(j.QueryCursorPos() - 1)
}

// MoveQueryCursorRight moves the query cursor one rune right.
func (j *Jump) MoveQueryCursorRight() bool {
	return j.moveQueryCursor(j.QueryCursorPos() + 1)
}

// MoveQueryCursorWordLeft moves the query cursor to the previous word start.
func (j *Jump) MoveQueryCursorWordLeft() bool {
	return j.moveQueryCursor(wordStart([]rune(j.Query), j.QueryCursorPos()))
}

// MoveQueryCursorWordRight moves the query cursor past the next word.
func (j *Jump) MoveQueryCursorWordRight() bool {
	runes := []rune(j.Query)
	i := j.QueryCursorPos()
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return j.moveQueryCursor(i)
}

func (j *Jump) moveQueryCursor(pos int) bool {
	n := len([]rune(j.Query))
	if pos < 0 || pos > n || pos == j.QueryCursorPos() {
		return false
	}
	j.QueryCursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// Breadcrumb joins titles into a jump label.
func Breadcrumb(titles []string) string {
	return strings.Join(titles, " / ")
}
