package ui

import (
	"unicode"

	"github.com/atomicstack/stickytree/internal/logging/events"
	"github.com/atomicstack/stickytree/internal/tree"
	uistate "github.com/atomicstack/stickytree/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpItems lists every node with its breadcrumb.
func jumpItems(roots []*tree.Node) []uistate.Item {
	var items []uistate.Item
	tree.Walk(roots, func(n *tree.Node) bool {
		ancestors := n.Ancestors()
		titles := make([]string, 0, len(ancestors)+1)
		for i := len(ancestors) - 1; i >= 0; i-- {
			titles = append(titles, ancestors[i].Title)
		}
		titles = append(titles, n.Title)
		items = append(items, uistate.Item{
			ID:    n.ID,
			Label: uistate.Breadcrumb(titles),
			Level: n.Level(),
		})
		return true
	})
	return items
}

func (m *Model) openJump() {
	m.jump = uistate.NewJump(jumpItems(m.view.Roots()))
	m.errMsg = ""
	m.infoMsg = ""
	events.Jump.Open()
}

func (m *Model) closeJump() {
	m.jump = nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	j := m.jump
	switch msg.String() {
	case "esc":
		m.closeJump()
		return nil
	case "enter":
		item, ok := j.Selected()
		m.closeJump()
		if !ok {
			return nil
		}
		events.Jump.Select(item.ID, item.Label)
		return m.navigate(item.ID)
	case "up", "ctrl+p":
		j.MoveUp()
		return nil
	case "down", "ctrl+n":
		j.MoveDown()
		return nil
	case "ctrl+c":
		return m.quit()
	case "ctrl+u":
		if j.Clear() {
			events.Jump.Cleared()
		}
		return nil
	case "ctrl+w":
		if j.DeleteWordBackward() {
			m.noteQuery()
		}
		return nil
	case "ctrl+a":
		j.MoveQueryCursorStart()
		return nil
	case "ctrl+e":
		j.MoveQueryCursorEnd()
		return nil
	case "alt+b":
		j.MoveQueryCursorWordLeft()
		return nil
	case "alt+f":
		j.MoveQueryCursorWordRight()
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if j.DeleteRuneBackward() {
			m.noteQuery()
		}
	case tea.KeyLeft:
		j.MoveQueryCursorLeft()
	case tea.KeyRight:
		j.MoveQueryCursorRight()
	case tea.KeySpace:
		if j.Insert(" ") {
			m.noteQuery()
		}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		if j.Insert(string(msg.Runes)) {
			m.noteQuery()
		}
	}
	return nil
}

func (m *Model) noteQuery() {
	events.Jump.Query(m.jump.Query, len(m.jump.Items))
}

func (m *Model) jumpPrompt() string {
	j := m.jump
	if j == nil {
		return ""
	}
	render := func(value string) string {
		if styles.Filter == nil || value == "" {
			return value
		}
		return styles.Filter.Render(value)
	}
	prompt := "jump: "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if j.Query == "" {
		placeholder := []rune("(type to search)")
		rest := string(placeholder[1:])
		if styles.FilterPlaceholder != nil {
			rest = styles.FilterPlaceholder.Render(rest)
		}
		return prompt + m.renderJumpCursor(string(placeholder[0])) + rest
	}
	runes := []rune(j.Query)
	pos := j.QueryCursorPos()
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = render(string(runes[pos+1:]))
	}
	line := prompt + render(string(runes[:pos])) + m.renderJumpCursor(caret) + after
	if item, ok := j.Selected(); ok {
		match := "  → " + item.Label
		if styles.FilterMatch != nil {
			match = styles.FilterMatch.Render(match)
		}
		line += match
	} else {
		line += "  (no match)"
	}
	return line
}

func (m *Model) renderJumpCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.jumpCursor.SetChar(char)
	base := m.jumpCursor.TextStyle.Copy().Inline(true)
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Render(char)
	}
	return base.Reverse(true).Render(char)
}
