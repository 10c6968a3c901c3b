package sticky

import (
	"context"
	"sync"
)

// Readiness resolves once when the tree view becomes usable.
type Readiness struct {
	once sync.Once
	done chan struct{}
	tree TreeView
}

// NewReadiness returns an unresolved readiness signal.
func NewReadiness() *Readiness {
	return &Readiness{done: make(chan struct{})}
}

// Resolve publishes tv. Only the first call has an effect.
func (r *Readiness) Resolve(tv TreeView) bool {
	resolved := false
	r.once.Do(func() {
		r.tree = tv
		close(r.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the tree is ready.
func (r *Readiness) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the tree is ready or ctx ends.
func (r *Readiness) Wait(ctx context.Context) (TreeView, error) {
	select {
	case <-r.done:
		return r.tree, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
