package ui

import (
	"fmt"

	"github.com/atomicstack/stickytree/internal/backend"
	"github.com/atomicstack/stickytree/internal/logging"
	"github.com/atomicstack/stickytree/internal/logging/events"
	"github.com/atomicstack/stickytree/internal/sticky"
	"github.com/atomicstack/stickytree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

type treeLoadedMsg struct {
	roots  []*tree.Node
	err    error
	reload bool
}

// loadTreeCmd reads the source off the update loop.
func (m *Model) loadTreeCmd(reload bool) tea.Cmd {
	source := m.cfg.Source
	load := m.cfg.Loader
	m.loading = true
	return func() tea.Msg {
		roots, err := load(source)
		return treeLoadedMsg{roots: roots, err: err, reload: reload}
	}
}

func (m *Model) handleTreeLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(treeLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		logging.Error(loaded.err)
		m.errMsg = fmt.Sprintf("load %s: %v", m.cfg.Source, loaded.err)
		if !m.loaded && !loaded.reload {
			// an unreadable source still gets an empty pane
			m.loaded = true
			m.resolveReady()
		}
		return nil
	}
	m.errMsg = ""
	m.nodeCount = tree.Count(loaded.roots)
	if !m.loaded {
		m.view.SetRoots(loaded.roots)
		m.loaded = true
		events.Tree.Loaded(m.cfg.Source, m.nodeCount)
		m.resolveReady()
		return nil
	}
	m.view.Reload(loaded.roots)
	events.Tree.Reloaded(m.cfg.Source, m.nodeCount)
	if m.jump != nil {
		m.jump.SetItems(jumpItems(m.view.Roots()))
	}
	if loaded.reload {
		m.infoMsg = "reloaded"
	}
	return m.schedule(sticky.ReasonReload)
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	events.Tree.Watch(evt.Path, evt.Err)
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return nil
	}
	return m.loadTreeCmd(true)
}
