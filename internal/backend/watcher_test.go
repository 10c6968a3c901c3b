package backend

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	var last int32
	for i := 1; i <= 5; i++ {
		i := int32(i)
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, i)
		})
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one call, got %d", got)
	}
	if got := atomic.LoadInt32(&last); got != 5 {
		t.Fatalf("expected the last trigger to win, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("expected cancelled trigger not to run, got %d", got)
	}
	if d.Duration() != 20*time.Millisecond {
		t.Fatalf("unexpected duration %v", d.Duration())
	}
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed early")
		}
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherFileSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.yaml")
	if err := os.WriteFile(file, []byte("- title: a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(file, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	if err := os.WriteFile(file, []byte("- title: b\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	evt := waitEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error event: %v", evt.Err)
	}
	if filepath.Base(evt.Path) != "notes.yaml" {
		t.Fatalf("expected event for the source file, got %q", evt.Path)
	}
}

func TestWatcherDirectorySource(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "projects"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w, err := NewWatcher(root, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(filepath.Join(root, "projects", "plan.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt := waitEvent(t, w)
	if evt.Err != nil || filepath.Base(evt.Path) != "plan.md" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected events channel to be closed")
	}
}

func TestWatcherMissingSource(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Fatalf("expected error for missing source")
	}
}
