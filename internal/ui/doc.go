// Package ui contains the Bubble Tea program that browses a note tree with
// sticky folder headers pinned over the top of the pane.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry so every message is handled by a focused
//     function (navigation.go for keys and the mouse, backend.go for loads
//     and watcher events, sticky.go for recomputes and scroll frames).
//   - Anything that moves rows requests a recompute through the scheduler.
//     The request comes back as a recomputeMsg after the debounce delay and
//     only the newest ticket runs the widget.
//
// State ownership:
//   - tree.View owns rows, cursor, scroll and the injected top padding.
//   - sticky.Widget owns the header stack. The overlay type here only draws
//     what the widget hands it, and the scroller adapter turns the widget's
//     scroll requests into animated frames.
//   - The jump prompt keeps its query and matches in internal/ui/state.
//
// Backend interactions:
//   - A backend.Watcher reports changes to the source; Update waits for those
//     events and reloads the tree, keeping expansion state.
package ui
