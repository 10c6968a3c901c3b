package events

import "github.com/atomicstack/stickytree/internal/logging"

type UITracer struct{}

type JumpTracer struct{}

var (
	UI   = UITracer{}
	Jump = JumpTracer{}
)

func (UITracer) Schedule(reason string, gen uint64) {
	logging.Trace("ui.schedule", map[string]interface{}{"reason": reason, "gen": gen})
}

func (UITracer) Scroll(offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"offset": offset})
}

func (UITracer) Cursor(id string, row int) {
	logging.Trace("ui.cursor", map[string]interface{}{"id": id, "row": row})
}

func (UITracer) Toggle(enabled bool) {
	logging.Trace("ui.sticky-toggle", map[string]interface{}{"enabled": enabled})
}

func (UITracer) Yank(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("ui.yank", payload)
}

func (JumpTracer) Open() {
	logging.Trace("jump.open", nil)
}

func (JumpTracer) Query(query string, matches int) {
	logging.Trace("jump.query", map[string]interface{}{"query": query, "matches": matches})
}

func (JumpTracer) Cleared() {
	logging.Trace("jump.clear", nil)
}

func (JumpTracer) Select(id, label string) {
	logging.Trace("jump.select", map[string]interface{}{"id": id, "label": label})
}

func (UITracer) Key(key string, jumping bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "jumping": jumping})
}
