package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/stickytree/internal/app"
	"github.com/atomicstack/stickytree/internal/config"
)

func TestProbeTerminalChecksOutputThenInput(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 2 {
		t.Fatalf("expected 2 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdout", "stdin"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestDescribeSourceKinds(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.yaml")
	if err := os.WriteFile(file, []byte("- title: a\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if got := describeSource(file, true); got.Kind != "yaml" || !got.Watch || got.Error != "" {
		t.Fatalf("unexpected file source %#v", got)
	}
	if got := describeSource(dir, false); got.Kind != "directory" || got.Watch {
		t.Fatalf("unexpected directory source %#v", got)
	}
	missing := describeSource(filepath.Join(dir, "gone.yaml"), true)
	if missing.Kind != "missing" || missing.Error == "" {
		t.Fatalf("expected missing source with error, got %#v", missing)
	}
	if !filepath.IsAbs(missing.Resolved) {
		t.Fatalf("expected resolved path to be absolute, got %q", missing.Resolved)
	}
}

func TestDescribeLayoutPrefersPinnedSize(t *testing.T) {
	tty := terminalInfo{Detected: &terminalSize{Source: "stdout", Width: 120, Height: 40}}

	got := describeLayout(app.Config{Height: 24, ShowFooter: true}, tty)
	if got.Width != 120 || got.WidthSource != "stdout" {
		t.Fatalf("expected width from the terminal, got %#v", got)
	}
	if got.Height != 24 || got.HeightSource != "flag" {
		t.Fatalf("expected pinned height, got %#v", got)
	}
	if !got.Footer {
		t.Fatalf("expected footer to carry over")
	}

	none := describeLayout(app.Config{}, terminalInfo{})
	if none.Width != 0 || none.WidthSource != "unknown" || none.HeightSource != "unknown" {
		t.Fatalf("expected unknown size without a terminal, got %#v", none)
	}
}

func TestStartupTracePayloadDescribesTree(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		App: app.Config{
			Source:   dir,
			Width:    80,
			Height:   24,
			Sticky:   true,
			Overscan: 4,
			Watch:    true,
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags:   map[string]string{"source": dir, "sticky": "true"},
		Args:    []string{"--source", dir},
	}

	payload := startupTracePayload(cfg, terminalInfo{})

	source, ok := payload["source"].(sourceDetails)
	if !ok {
		t.Fatalf("expected source details in payload")
	}
	if source.Kind != "directory" || !source.Watch {
		t.Fatalf("unexpected source details %#v", source)
	}
	sticky, ok := payload["sticky"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected sticky section in payload")
	}
	if sticky["enabled"] != true || sticky["overscanAbove"] != 4 || sticky["renderBelow"] != 2 {
		t.Fatalf("unexpected sticky section %#v", sticky)
	}
	layout, ok := payload["layout"].(layoutDetails)
	if !ok || layout.Width != 80 || layout.Height != 24 || layout.WidthSource != "flag" {
		t.Fatalf("unexpected layout %#v", payload["layout"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["source"] != dir {
		t.Fatalf("expected raw flags in payload, got %#v", payload["flags"])
	}
	if payload["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", payload["logFile"])
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
}
