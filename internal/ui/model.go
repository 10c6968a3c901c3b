package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/stickytree/internal/backend"
	"github.com/atomicstack/stickytree/internal/sticky"
	"github.com/atomicstack/stickytree/internal/theme"
	"github.com/atomicstack/stickytree/internal/tree"
	uistate "github.com/atomicstack/stickytree/internal/ui/state"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config carries the options the model is built with.
type Config struct {
	Source string
	// Width and Height pin the layout when positive.
	Width  int
	Height int
	// Sticky is the initial "show sticky headers" preference.
	Sticky     bool
	ShowFooter bool
	Window     tree.Window
	// ScrollDuration is the navigation animation length. Zero selects
	// sticky.DefaultScrollDuration; sticky.Instant jumps.
	ScrollDuration time.Duration
	Watcher        *backend.Watcher
	// Loader reads the tree source. Nil selects tree.Load.
	Loader func(source string) ([]*tree.Node, error)
}

// Model implements the Bubble Tea model for the tree browser.
type Model struct {
	cfg  Config
	keys KeyMap

	view      *tree.View
	overlay   *overlay
	scroller  *scroller
	widget    *sticky.Widget
	scheduler *sticky.Scheduler
	ready     *sticky.Readiness

	ctx    context.Context
	cancel context.CancelFunc

	stickyEnabled bool
	loaded        bool
	loading       bool
	nodeCount     int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	errMsg  string
	infoMsg string

	jump       *uistate.Jump
	jumpCursor cursor.Model

	backend *backend.Watcher

	clipboardWrite func(string) error
	now            func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model. The tree is loaded by the command returned from
// Init.
func NewModel(cfg Config) *Model {
	if cfg.Loader == nil {
		cfg.Loader = tree.Load
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:            cfg,
		keys:           DefaultKeyMap(),
		view:           tree.NewView(nil, cfg.Window),
		overlay:        &overlay{},
		scheduler:      sticky.NewScheduler(sticky.DebounceDelay, sticky.ReloadDelay),
		ready:          sticky.NewReadiness(),
		ctx:            ctx,
		cancel:         cancel,
		stickyEnabled:  cfg.Sticky,
		loading:        true,
		backend:        cfg.Watcher,
		clipboardWrite: clipboard.WriteAll,
		now:            time.Now,
	}
	m.scroller = &scroller{view: m.view, now: func() time.Time { return m.now() }}
	m.widget = sticky.New(m.overlay, sticky.Options{
		Enabled:        func() bool { return m.stickyEnabled },
		Measure:        measureHeaderHeight,
		Gap:            sticky.NoGap,
		ScrollDuration: cfg.ScrollDuration,
	})
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetMode(cursor.CursorStatic)
	m.jumpCursor = c
	m.layout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTreeCmd(false)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	cmds = append(cmds, waitForReady(m.ctx, m.ready))
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(treeLoadedMsg{}):     m.handleTreeLoadedMsg,
		reflect.TypeOf(readyMsg{}):          m.handleReadyMsg,
		reflect.TypeOf(recomputeMsg{}):      m.handleRecomputeMsg,
		reflect.TypeOf(scrollFrameMsg{}):    m.handleScrollFrameMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(yankedMsg{}):         m.handleYankedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Tree exposes the tree view.
func (m *Model) Tree() *tree.View { return m.view }

// Sticky exposes the sticky header widget.
func (m *Model) Sticky() *sticky.Widget { return m.widget }

// StickyEnabled reports the session preference.
func (m *Model) StickyEnabled() bool { return m.stickyEnabled }

// Jumping reports whether the jump prompt is open.
func (m *Model) Jumping() bool { return m.jump != nil }

// Err returns the message shown in the status line.
func (m *Model) Err() string { return m.errMsg }

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	m.resolveReady()
	return m.schedule(sticky.ReasonResize)
}
