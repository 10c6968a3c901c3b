package app

import (
	"testing"

	"github.com/atomicstack/stickytree/internal/tree"
)

func TestModelConfigMapsOptions(t *testing.T) {
	cfg := Config{Width: 80, Height: 24, ShowFooter: true, Sticky: true, Overscan: 4}
	got := cfg.ModelConfig("/tmp/notes.yaml", nil)
	if got.Source != "/tmp/notes.yaml" || got.Width != 80 || got.Height != 24 {
		t.Fatalf("unexpected model config %#v", got)
	}
	if !got.Sticky || !got.ShowFooter {
		t.Fatalf("expected sticky and footer to carry over, got %#v", got)
	}
	if got.Window.Above != 4 || got.Window.Below != tree.DefaultWindow.Below {
		t.Fatalf("unexpected window %#v", got.Window)
	}
	if got.ScrollDuration != 0 {
		t.Fatalf("expected the default scroll animation, got %v", got.ScrollDuration)
	}
}

func TestRunRejectsMissingSourceWhenWatching(t *testing.T) {
	err := Run(Config{Source: t.TempDir() + "/missing.yaml", Watch: true})
	if err == nil {
		t.Fatalf("expected error for a missing watched source")
	}
}
