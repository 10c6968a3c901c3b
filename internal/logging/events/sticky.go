package events

import "github.com/atomicstack/stickytree/internal/logging"

type StickyTracer struct{}

var Sticky = StickyTracer{}

func (StickyTracer) Measured(height int) {
	logging.Trace("sticky.measured", map[string]interface{}{"itemHeight": height})
}

func (StickyTracer) Recompute(baseLevel, headers int, root string) {
	logging.Trace("sticky.recompute", map[string]interface{}{
		"baseLevel": baseLevel,
		"headers":   headers,
		"root":      root,
	})
}

func (StickyTracer) Hidden(reason string) {
	logging.Trace("sticky.hidden", map[string]interface{}{"reason": reason})
}

func (StickyTracer) Navigate(id string, scrollTop int) {
	logging.Trace("sticky.navigate", map[string]interface{}{"id": id, "scrollTop": scrollTop})
}

func (StickyTracer) NavigateMissing(id string) {
	logging.Trace("sticky.navigate-missing", map[string]interface{}{"id": id})
}
