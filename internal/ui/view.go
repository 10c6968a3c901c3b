package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/stickytree/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	titleRows     = 1
	statusRows    = 1
	footerRows    = 1
	scrollbarCols = 1
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// layout places the tree pane between the title and the status line. One
// column is kept for the scrollbar.
func (m *Model) layout() {
	height := m.height - titleRows - statusRows
	if m.cfg.ShowFooter {
		height -= footerRows
	}
	if height < 0 {
		height = 0
	}
	width := m.width
	if width > scrollbarCols {
		width -= scrollbarCols
	}
	m.view.SetBounds(titleRows, 0, width, height)
}

func (m *Model) overlayWidth() int {
	return m.view.Width()
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.titleLine())
	lines = append(lines, m.paneLines()...)
	lines = append(lines, m.statusLine())
	if m.cfg.ShowFooter {
		footer := applyWidth([]styledLine{{text: m.keys.footerHelp(), style: styles.Footer}}, m.width)
		lines = append(lines, renderLines(footer))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) titleLine() string {
	name := " stickytree "
	if styles.Title != nil {
		name = styles.Title.Render(name)
	}
	source := filepath.Base(m.cfg.Source)
	var detail string
	switch {
	case m.loading && !m.loaded:
		detail = fmt.Sprintf(" %s  loading…", source)
	default:
		detail = fmt.Sprintf(" %s  (%d nodes)", source, m.nodeCount)
	}
	if !m.stickyEnabled {
		detail += "  sticky off"
	}
	if styles.TitleMuted != nil {
		detail = styles.TitleMuted.Render(detail)
	}
	return fitWidth(name+detail, m.width)
}

// paneLines renders the tree pane with the header overlay drawn over its top
// lines.
func (m *Model) paneLines() []string {
	height := m.view.Height()
	width := m.view.Width()
	if height <= 0 {
		return nil
	}
	out := make([]string, height)
	if !m.loaded || m.view.Len() == 0 {
		msg := "loading…"
		style := styles.Loading
		if m.loaded {
			msg, style = "(empty tree)", styles.Info
		}
		out[0] = renderLines(applyWidth([]styledLine{{text: msg, style: style}}, width))
		for i := 1; i < height; i++ {
			out[i] = strings.Repeat(" ", width)
		}
		return m.withScrollbar(out)
	}
	header := m.overlay.Lines()
	for i := 0; i < height; i++ {
		if i < len(header) {
			out[i] = fitWidth(header[i], width)
			continue
		}
		row, ok := m.view.RowAtLine(i)
		if !ok {
			out[i] = strings.Repeat(" ", width)
			continue
		}
		out[i] = renderLines(applyWidth([]styledLine{m.buildRowLine(row, width)}, width))
	}
	return m.withScrollbar(out)
}

// buildRowLine renders one tree row. The cursor row carries an indicator and
// a background spanning the pane.
func (m *Model) buildRowLine(row, width int) styledLine {
	n := m.view.Rows()[row]
	marker := "•"
	if n.IsFolder() {
		marker = "▸"
		if n.Expanded {
			marker = "▾"
		}
	}
	label := n.Title
	if n.Icon != "" {
		label = n.Icon + " " + label
	}
	text := " " + strings.Repeat("  ", n.Level()-1) + marker + " " + label
	if width > 0 {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	line := styledLine{text: text, style: rowStyle(n)}
	if n == m.view.Active() {
		line.style = styles.ActiveRow
	}
	if row == m.view.Cursor() {
		line.text = "▌" + text[1:]
		line.style = styles.CursorRow
		line.prefixStyle = styles.RowIndicator
		line.highlightFrom = 1
	}
	return line
}

func rowStyle(n *tree.Node) *lipgloss.Style {
	if n.IsFolder() {
		return styles.FolderRow
	}
	return styles.Row
}

func (m *Model) withScrollbar(lines []string) []string {
	if m.width <= scrollbarCols {
		return lines
	}
	bar := scrollbar(len(lines), m.view.ContentHeight(), m.view.ScrollTop())
	for i := range lines {
		lines[i] += bar[i]
	}
	return lines
}

// scrollbar returns one cell per pane line.
func scrollbar(height, content, scroll int) []string {
	track, thumb := "│", "┃"
	if styles.ScrollTrack != nil {
		track = styles.ScrollTrack.Render(track)
	}
	if styles.ScrollThumb != nil {
		thumb = styles.ScrollThumb.Render(thumb)
	}
	cells := make([]string, height)
	for i := range cells {
		cells[i] = track
	}
	if height <= 0 || content <= height {
		return cells
	}
	size := height * height / content
	if size < 1 {
		size = 1
	}
	maxScroll := content - height
	if scroll > maxScroll {
		scroll = maxScroll
	}
	start := 0
	if maxScroll > 0 {
		start = scroll * (height - size) / maxScroll
	}
	for i := start; i < start+size && i < height; i++ {
		cells[i] = thumb
	}
	return cells
}

func (m *Model) statusLine() string {
	switch {
	case m.jump != nil:
		return fitWidth(m.jumpPrompt(), m.width)
	case m.errMsg != "":
		return renderLines(applyWidth([]styledLine{{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}}, m.width))
	case m.infoMsg != "":
		return renderLines(applyWidth([]styledLine{{text: m.infoMsg, style: styles.Info}}, m.width))
	}
	if m.view.Len() == 0 {
		return ""
	}
	pos := fmt.Sprintf("%d/%d", m.view.Cursor()+1, m.view.Len())
	if n := m.view.CursorNode(); n != nil {
		pos += "  " + n.ID
	}
	return renderLines(applyWidth([]styledLine{{text: pos, style: styles.Footer}}, m.width))
}

// fitWidth truncates an ANSI-styled line to width and pads it with spaces.
func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts plain text to width display cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
