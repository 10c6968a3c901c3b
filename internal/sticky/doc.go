// Package sticky derives the "sticky headers" overlay of a lazily rendered
// tree: the chain of ancestor folders the rows at the top of the scroll
// container are nested under.
//
// Recompute flow:
//   - LocateVisibleRoot finds the first rendered node; its level is the
//     baseline and nothing shallower is ever pinned.
//   - ResolveContext walks rendered nodes in document order. For each node it
//     predicts where a header stack for that node's context would end
//     (HeightPredictor, uniform row height by default) and compares the
//     prediction with the node's real bottom edge. The walk stops at the first
//     node that has not scrolled past its predicted stack.
//   - BuildStack turns the resolved context into HeaderEntry values, outermost
//     first.
//
// Widget ties these together with the row-height cache and the overlay and
// scroll container collaborators. Scheduler and Readiness carry the timing
// contract: notifications are coalesced by generation, and attachment waits
// on a single readiness signal instead of polling.
//
// Geometry is unit-agnostic. The defaults (DefaultItemHeight, DefaultGap) are
// expressed in browser pixels; terminal callers override them.
package sticky
