package ui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atomicstack/stickytree/internal/logging/events"
	"github.com/atomicstack/stickytree/internal/sticky"
	"github.com/atomicstack/stickytree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const scrollFrameInterval = 16 * time.Millisecond

type recomputeMsg struct {
	ticket sticky.Ticket
}

type readyMsg struct {
	tree sticky.TreeView
}

type scrollFrameMsg struct {
	gen uint64
}

// overlay renders the header stack as a block drawn over the top rows of the
// tree pane, one line per entry.
type overlay struct {
	width     int
	entries   []sticky.HeaderEntry
	baseLevel int
	block     string
	visible   bool
}

func (o *overlay) Render(entries []sticky.HeaderEntry, baseLevel int) {
	o.entries = entries
	o.baseLevel = baseLevel
	if len(entries) == 0 {
		o.block = ""
		return
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, renderHeaderLine(e, baseLevel, o.width, i == len(entries)-1))
	}
	o.block = strings.Join(lines, "\n")
}

func (o *overlay) Show()         { o.visible = true }
func (o *overlay) Hide()         { o.visible = false }
func (o *overlay) Visible() bool { return o.visible }

func (o *overlay) Height() int {
	if !o.visible || o.block == "" {
		return 0
	}
	return lipgloss.Height(o.block)
}

// Lines returns the rendered rows, or nil while hidden.
func (o *overlay) Lines() []string {
	if o.Height() == 0 {
		return nil
	}
	return strings.Split(o.block, "\n")
}

// entryAt maps a pane line to the header drawn there.
func (o *overlay) entryAt(line int) (sticky.HeaderEntry, bool) {
	if !o.visible || line < 0 || line >= len(o.entries) {
		return sticky.HeaderEntry{}, false
	}
	return o.entries[line], true
}

// renderHeaderLine draws one entry. The last entry is underlined to mark
// where the pinned stack ends.
func renderHeaderLine(e sticky.HeaderEntry, baseLevel, width int, last bool) string {
	header, badgeStyle := styles.StickyHeader, styles.StickyBadge
	if last {
		header, badgeStyle = styles.StickyHeaderLast, styles.StickyBadgeLast
	}
	depth := e.Level - baseLevel
	if depth < 0 {
		depth = 0
	}
	icon := e.Icon
	if icon == "" {
		icon = "▾"
	}
	left := strings.Repeat("  ", depth) + icon + " "
	badge := ""
	if e.ChildFolderCount > 0 {
		badge = fmt.Sprintf(" %d ", e.ChildFolderCount)
	}
	if width <= 0 {
		return header.Render(left+e.Title) + badgeStyle.Render(badge)
	}
	avail := width - runewidth.StringWidth(left) - runewidth.StringWidth(badge)
	title := e.Title
	if avail <= 0 {
		title = ""
	} else if runewidth.StringWidth(title) > avail {
		title = runewidth.Truncate(title, avail, "…")
	}
	text := left + title
	if gap := width - runewidth.StringWidth(text) - runewidth.StringWidth(badge); gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	line := header.Render(text) + badgeStyle.Render(badge)
	return ansi.Truncate(line, width, "")
}

// measureHeaderHeight renders a representative header row.
func measureHeaderHeight() int {
	sample := sticky.HeaderEntry{NoteID: "sample", Title: "Sample", Level: 1, ChildFolderCount: 1}
	return lipgloss.Height(renderHeaderLine(sample, 1, 40, true))
}

// scroller adapts the tree view to the widget's scroll container and runs
// the navigation animation.
type scroller struct {
	view *tree.View
	now  func() time.Time
	gen  uint64
	anim *scrollAnimation
}

type scrollAnimation struct {
	gen      uint64
	from     int
	to       int
	start    time.Time
	duration time.Duration
}

func (s *scroller) Rect() sticky.Rect { return s.view.Bounds() }
func (s *scroller) ScrollTop() int    { return s.view.ScrollTop() }

func (s *scroller) ScrollTo(offset int, d time.Duration) {
	s.gen++
	if d <= 0 {
		s.anim = nil
		s.view.ScrollTo(offset)
		return
	}
	s.anim = &scrollAnimation{
		gen:      s.gen,
		from:     s.view.ScrollTop(),
		to:       offset,
		start:    s.now(),
		duration: d,
	}
}

func (s *scroller) SetPaddingTop(lines int) {
	before := s.view.Padding()
	s.view.SetPadding(lines)
	if s.anim != nil {
		delta := s.view.Padding() - before
		s.anim.from += delta
		s.anim.to += delta
	}
}

// stop abandons a running animation.
func (s *scroller) stop() {
	if s.anim != nil {
		s.gen++
		s.anim = nil
	}
}

// step advances the animation identified by gen. It reports whether the
// scroll offset moved and whether more frames are needed.
func (s *scroller) step(gen uint64) (moved, more bool) {
	a := s.anim
	if a == nil || a.gen != gen {
		return false, false
	}
	progress := 1.0
	if a.duration > 0 {
		progress = float64(s.now().Sub(a.start)) / float64(a.duration)
	}
	if progress >= 1 {
		s.anim = nil
		return s.view.ScrollTo(a.to), false
	}
	if progress < 0 {
		progress = 0
	}
	offset := a.from + int(math.Round(float64(a.to-a.from)*swing(progress)))
	return s.view.ScrollTo(offset), true
}

func swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

func scrollFrameCmd(gen uint64) tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

func (m *Model) handleScrollFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(scrollFrameMsg)
	if !ok {
		return nil
	}
	moved, more := m.scroller.step(frame.gen)
	var cmds []tea.Cmd
	if moved {
		events.UI.Scroll(m.view.ScrollTop())
		cmds = append(cmds, m.schedule(sticky.ReasonScroll))
	}
	if more {
		cmds = append(cmds, scrollFrameCmd(frame.gen))
	}
	return tea.Batch(cmds...)
}

// schedule requests a debounced recompute. Only the newest request runs.
func (m *Model) schedule(reason sticky.Reason) tea.Cmd {
	ticket := m.scheduler.Schedule(reason)
	events.UI.Schedule(string(reason), ticket.Gen)
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return recomputeMsg{ticket: ticket}
	})
}

func (m *Model) handleRecomputeMsg(msg tea.Msg) tea.Cmd {
	rm, ok := msg.(recomputeMsg)
	if !ok || !m.scheduler.Due(rm.ticket) {
		return nil
	}
	m.recompute()
	return nil
}

func (m *Model) recompute() sticky.Result {
	m.overlay.width = m.overlayWidth()
	return m.widget.Update()
}

func waitForReady(ctx context.Context, ready *sticky.Readiness) tea.Cmd {
	return func() tea.Msg {
		tv, err := ready.Wait(ctx)
		if err != nil {
			return nil
		}
		return readyMsg{tree: tv}
	}
}

// resolveReady publishes the tree once it is loaded and the pane has a size.
func (m *Model) resolveReady() {
	if !m.loaded || m.view.Height() <= 0 {
		return
	}
	m.ready.Resolve(m.view.Sticky())
}

func (m *Model) handleReadyMsg(msg tea.Msg) tea.Cmd {
	ready, ok := msg.(readyMsg)
	if !ok || ready.tree == nil || m.widget.Attached() {
		return nil
	}
	m.widget.Attach(ready.tree, m.scroller)
	if m.stickyEnabled {
		m.recompute()
	}
	return nil
}

// navigate activates id below the overlay and animates the scroll.
func (m *Model) navigate(id string) tea.Cmd {
	if !m.widget.Attached() {
		return nil
	}
	if !m.widget.Navigate(id) {
		m.errMsg = fmt.Sprintf("no node with id %s", id)
		return nil
	}
	m.errMsg = ""
	var cmds []tea.Cmd
	if a := m.scroller.anim; a != nil {
		cmds = append(cmds, scrollFrameCmd(a.gen))
	}
	cmds = append(cmds, m.schedule(sticky.ReasonScroll))
	return tea.Batch(cmds...)
}

func (m *Model) navigateHeader(index int) tea.Cmd {
	entries := m.widget.Last().Entries
	if !m.overlay.Visible() || index < 0 || index >= len(entries) {
		return nil
	}
	return m.navigate(entries[index].NoteID)
}

func (m *Model) toggleSticky() tea.Cmd {
	m.stickyEnabled = !m.stickyEnabled
	events.UI.Toggle(m.stickyEnabled)
	if m.stickyEnabled {
		m.infoMsg = "sticky headers on"
	} else {
		m.infoMsg = "sticky headers off"
	}
	return m.schedule(sticky.ReasonToggle)
}
