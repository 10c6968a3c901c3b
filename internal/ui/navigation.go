package ui

import (
	"fmt"

	"github.com/atomicstack/stickytree/internal/logging/events"
	"github.com/atomicstack/stickytree/internal/sticky"
	"github.com/atomicstack/stickytree/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

type yankedMsg struct {
	id  string
	err error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), m.jump != nil)
	if m.jump != nil {
		return m.handleJumpKey(keyMsg)
	}
	m.infoMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Up):
		return m.cursorMoved(m.view.MoveCursorUp())
	case key.Matches(keyMsg, m.keys.Down):
		return m.cursorMoved(m.view.MoveCursorDown())
	case key.Matches(keyMsg, m.keys.PageUp):
		return m.cursorMoved(m.view.MoveCursorPageUp(m.pageSize()))
	case key.Matches(keyMsg, m.keys.PageDown):
		return m.cursorMoved(m.view.MoveCursorPageDown(m.pageSize()))
	case key.Matches(keyMsg, m.keys.Home):
		return m.cursorMoved(m.view.MoveCursorHome())
	case key.Matches(keyMsg, m.keys.End):
		return m.cursorMoved(m.view.MoveCursorEnd())
	case key.Matches(keyMsg, m.keys.ScrollUp):
		return m.scrollBy(-1)
	case key.Matches(keyMsg, m.keys.ScrollDown):
		return m.scrollBy(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		return m.toggleNode(m.view.CursorNode())
	case key.Matches(keyMsg, m.keys.Expand):
		n := m.view.CursorNode()
		if n == nil || n.Expanded {
			return nil
		}
		return m.toggleNode(n)
	case key.Matches(keyMsg, m.keys.Collapse):
		n := m.view.CursorNode()
		if n != nil && n.IsFolder() && n.Expanded {
			return m.toggleNode(n)
		}
		return m.cursorMoved(m.view.MoveCursorToParent())
	case key.Matches(keyMsg, m.keys.ExpandAll):
		if m.view.ExpandAll() {
			return m.schedule(sticky.ReasonExpand)
		}
	case key.Matches(keyMsg, m.keys.CollapseAll):
		if m.view.CollapseAll() {
			return m.schedule(sticky.ReasonCollapse)
		}
	case key.Matches(keyMsg, m.keys.Header):
		if len(keyMsg.Runes) == 1 {
			return m.navigateHeader(int(keyMsg.Runes[0] - '1'))
		}
	case key.Matches(keyMsg, m.keys.Jump):
		m.openJump()
	case key.Matches(keyMsg, m.keys.Sticky):
		return m.toggleSticky()
	case key.Matches(keyMsg, m.keys.Yank):
		return m.yank()
	case key.Matches(keyMsg, m.keys.Reload):
		return m.loadTreeCmd(true)
	}
	return nil
}

// cursorMoved keeps the cursor clear of the overlay and schedules a
// recompute when that scrolled the pane.
func (m *Model) cursorMoved(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	m.scroller.stop()
	if n := m.view.CursorNode(); n != nil {
		events.UI.Cursor(n.ID, m.view.Cursor())
	}
	if m.view.EnsureCursorVisible(m.overlay.Height()) {
		events.UI.Scroll(m.view.ScrollTop())
		return m.schedule(sticky.ReasonScroll)
	}
	return nil
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	m.scroller.stop()
	if !m.view.ScrollBy(delta) {
		return nil
	}
	events.UI.Scroll(m.view.ScrollTop())
	return m.schedule(sticky.ReasonScroll)
}

func (m *Model) toggleNode(n *tree.Node) tea.Cmd {
	if n == nil || !m.view.Toggle(n) {
		return nil
	}
	events.Tree.Toggle(n.ID, n.Expanded)
	if n.Expanded {
		return m.schedule(sticky.ReasonExpand)
	}
	return m.schedule(sticky.ReasonCollapse)
}

func (m *Model) pageSize() int {
	size := m.view.Height() - m.overlay.Height()
	if size < 1 {
		return 1
	}
	return size
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.jump != nil {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelStep)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		line := ev.Y - m.view.Bounds().Top
		if entry, ok := m.overlay.entryAt(line); ok {
			return m.navigate(entry.NoteID)
		}
		if line < m.overlay.Height() {
			return nil
		}
		row, ok := m.view.RowAtLine(line)
		if !ok {
			return nil
		}
		if row == m.view.Cursor() {
			return m.toggleNode(m.view.CursorNode())
		}
		return m.cursorMoved(m.view.SetCursor(row))
	}
	return nil
}

func (m *Model) yank() tea.Cmd {
	n := m.view.Active()
	if n == nil {
		n = m.view.CursorNode()
	}
	if n == nil {
		return nil
	}
	id := n.ID
	write := m.clipboardWrite
	return func() tea.Msg {
		return yankedMsg{id: id, err: write(id)}
	}
}

func (m *Model) handleYankedMsg(msg tea.Msg) tea.Cmd {
	yanked, ok := msg.(yankedMsg)
	if !ok {
		return nil
	}
	events.UI.Yank(yanked.id, yanked.err)
	if yanked.err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", yanked.err)
		return nil
	}
	m.infoMsg = fmt.Sprintf("copied %s", yanked.id)
	return nil
}
