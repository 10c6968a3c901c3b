package sticky

import (
	"time"

	"github.com/atomicstack/stickytree/internal/logging"
	"github.com/atomicstack/stickytree/internal/logging/events"
)

const (
	// DefaultGap separates a navigated-to row from the bottom of the overlay.
	DefaultGap = 8
	// DefaultScrollDuration is the length of the navigation scroll animation.
	DefaultScrollDuration = 300 * time.Millisecond

	// NoGap places a navigation target directly under the overlay.
	NoGap = -1
	// Instant scrolls to a navigation target without animating.
	Instant time.Duration = -1
)

// Options configures a Widget.
type Options struct {
	// Enabled reads the "show sticky headers" preference. Nil means enabled.
	Enabled func() bool
	// Measure renders a representative header row and returns its outer
	// height. It is called at most once per widget.
	Measure func() int
	// Predictor builds the height predictor from the measured row height.
	// Nil selects Uniform.
	Predictor func(itemHeight int) HeightPredictor
	// Gap is the space left between the overlay and a navigation target.
	// Zero selects DefaultGap; NoGap (any negative value) leaves none.
	Gap int
	// ScrollDuration is the navigation animation length. Zero selects
	// DefaultScrollDuration; Instant (any negative value) jumps.
	ScrollDuration time.Duration
	// Warn receives diagnostic warnings. Nil routes them to the log file.
	Warn func(format string, args ...interface{})
}

// Widget is the stateful sticky-header component. It is driven from a single
// event loop and is not safe for concurrent use.
type Widget struct {
	opts     Options
	overlay  Overlay
	tree     TreeView
	scroller Scroller
	height   *RowHeight
	last     Result
}

// New creates a widget rendering into overlay. The widget stays inert until
// Attach is called.
func New(overlay Overlay, opts Options) *Widget {
	if opts.Warn == nil {
		opts.Warn = logging.Warnf
	}
	switch {
	case opts.Gap == 0:
		opts.Gap = DefaultGap
	case opts.Gap < 0:
		opts.Gap = 0
	}
	switch {
	case opts.ScrollDuration == 0:
		opts.ScrollDuration = DefaultScrollDuration
	case opts.ScrollDuration < 0:
		opts.ScrollDuration = 0
	}
	return &Widget{
		opts:    opts,
		overlay: overlay,
		height:  NewRowHeight(opts.Measure, opts.Warn),
	}
}

// Attach binds the widget to a ready tree and its scroll container and
// measures the row height.
func (w *Widget) Attach(tv TreeView, scroller Scroller) {
	w.tree = tv
	w.scroller = scroller
	events.Sticky.Measured(w.height.Get())
}

// Detach releases the collaborators, hides the overlay and removes the
// injected padding.
func (w *Widget) Detach() {
	if w.overlay != nil {
		w.overlay.Hide()
	}
	if w.scroller != nil {
		w.scroller.SetPaddingTop(0)
	}
	w.tree = nil
	w.scroller = nil
	w.last = Result{}
}

// Attached reports whether the widget has a tree to work with.
func (w *Widget) Attached() bool {
	return w.tree != nil && w.scroller != nil
}

// Enabled reads the preference.
func (w *Widget) Enabled() bool {
	if w.opts.Enabled == nil {
		return true
	}
	return w.opts.Enabled()
}

// ItemHeight returns the cached row height, measuring if needed.
func (w *Widget) ItemHeight() int {
	return w.height.Get()
}

// Last returns the result of the most recent effective recompute.
func (w *Widget) Last() Result {
	return w.last
}

// Update recomputes the header stack, renders it and reconciles the overlay
// visibility and the container padding. It never fails: missing
// collaborators leave the previous state in place.
func (w *Widget) Update() Result {
	if !w.Enabled() {
		w.hide("disabled")
		return w.last
	}
	if !w.Attached() || w.overlay == nil {
		return w.last
	}
	itemHeight := w.height.Get()

	root, baseLevel, ok := LocateVisibleRoot(w.tree)
	if !ok || root == nil {
		w.hide("no-visible-node")
		return w.last
	}

	predict := Uniform(itemHeight)
	if w.opts.Predictor != nil {
		if p := w.opts.Predictor(itemHeight); p != nil {
			predict = p
		}
	}
	top := w.scroller.Rect().Top
	context := ResolveContext(w.tree, baseLevel, top, predict)

	var entries []HeaderEntry
	if context != nil {
		entries = BuildStack(context, baseLevel)
	}
	result := Result{Entries: entries, BaseLevel: baseLevel, Visible: len(entries) > 0}

	w.overlay.Render(entries, baseLevel)
	if result.Visible {
		w.overlay.Show()
	} else {
		w.overlay.Hide()
	}
	w.syncPadding()
	if !result.equal(w.last) {
		events.Sticky.Recompute(baseLevel, len(entries), root.ID())
	}
	w.last = result
	return result
}

func (w *Widget) hide(reason string) {
	if w.overlay != nil {
		w.overlay.Hide()
	}
	w.syncPadding()
	if w.last.Visible {
		events.Sticky.Hidden(reason)
	}
	w.last = Result{}
}

func (w *Widget) syncPadding() {
	if w.scroller == nil {
		return
	}
	if w.Enabled() && w.overlay != nil && w.overlay.Visible() {
		w.scroller.SetPaddingTop(w.overlay.Height())
		return
	}
	w.scroller.SetPaddingTop(0)
}
