package events

import "github.com/atomicstack/stickytree/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Loaded(source string, nodes int) {
	logging.Trace("tree.loaded", map[string]interface{}{"source": source, "nodes": nodes})
}

func (TreeTracer) Reloaded(source string, nodes int) {
	logging.Trace("tree.reloaded", map[string]interface{}{"source": source, "nodes": nodes})
}

func (TreeTracer) Toggle(id string, expanded bool) {
	logging.Trace("tree.toggle", map[string]interface{}{"id": id, "expanded": expanded})
}

func (TreeTracer) Watch(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tree.watch", payload)
}
