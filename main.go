package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/stickytree/internal/app"
	"github.com/atomicstack/stickytree/internal/config"
	"github.com/atomicstack/stickytree/internal/logging"
	"github.com/atomicstack/stickytree/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, probeTerminal()))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the browser is about to open and the
// geometry it will start with.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	window := cfg.App.ModelConfig(cfg.App.Source, nil).Window
	return map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  cfg.Flags,
		"source": describeSource(cfg.App.Source, cfg.App.Watch),
		"sticky": map[string]interface{}{
			"enabled":       cfg.App.Sticky,
			"overscanAbove": window.Above,
			"renderBelow":   window.Below,
		},
		"layout":   describeLayout(cfg.App, tty),
		"terminal": tty,
		"logFile":  cfg.Logging.FilePath,
	}
}

type sourceDetails struct {
	Path     string `json:"path"`
	Resolved string `json:"resolved,omitempty"`
	Kind     string `json:"kind"`
	Watch    bool   `json:"watch"`
	Error    string `json:"error,omitempty"`
}

// describeSource reports how the tree will be read: a YAML document, a
// directory walk, or nothing yet.
func describeSource(path string, watch bool) sourceDetails {
	details := sourceDetails{Path: path, Watch: watch, Kind: "missing"}
	if abs, err := filepath.Abs(path); err == nil {
		details.Resolved = abs
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		details.Error = err.Error()
	case info.IsDir():
		details.Kind = "directory"
	default:
		details.Kind = "yaml"
	}
	return details
}

type layoutDetails struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	WidthSource  string `json:"widthSource"`
	HeightSource string `json:"heightSource"`
	Footer       bool   `json:"footer"`
}

// describeLayout picks the starting size: pinned flags win, then the
// detected terminal. Unpinned axes follow later resizes.
func describeLayout(cfg app.Config, tty terminalInfo) layoutDetails {
	layout := layoutDetails{WidthSource: "unknown", HeightSource: "unknown", Footer: cfg.ShowFooter}
	if tty.Detected != nil {
		layout.Width, layout.WidthSource = tty.Detected.Width, tty.Detected.Source
		layout.Height, layout.HeightSource = tty.Detected.Height, tty.Detected.Source
	}
	if cfg.Width > 0 {
		layout.Width, layout.WidthSource = cfg.Width, "flag"
	}
	if cfg.Height > 0 {
		layout.Height, layout.HeightSource = cfg.Height, "flag"
	}
	return layout
}

type terminalInfo struct {
	Detected *terminalSize   `json:"detected,omitempty"`
	Probes   []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the descriptors the program draws to and reads input
// from. The first one with a size wins.
func probeTerminal() terminalInfo {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stdin", os.Stdin},
	}
	info := terminalInfo{Probes: make([]terminalProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		probe := terminalProbe{Name: d.name}
		fd := int(d.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Detected == nil:
				info.Detected = &terminalSize{Source: d.name, Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
