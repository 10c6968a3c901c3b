package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/stickytree/internal/backend"
	"github.com/atomicstack/stickytree/internal/logging/events"
	"github.com/atomicstack/stickytree/internal/tree"
	"github.com/atomicstack/stickytree/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	Source     string
	Width      int
	Height     int
	ShowFooter bool
	Sticky     bool
	// Overscan is the number of rows kept rendered above the viewport; -1
	// keeps every row.
	Overscan int
	Watch    bool
}

// ModelConfig translates the options into the UI model configuration.
func (c Config) ModelConfig(source string, watcher *backend.Watcher) ui.Config {
	window := tree.DefaultWindow
	window.Above = c.Overscan
	return ui.Config{
		Source:         source,
		Width:          c.Width,
		Height:         c.Height,
		Sticky:         c.Sticky,
		ShowFooter:     c.ShowFooter,
		Window:         window,
		Watcher:        watcher,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()

	source, err := filepath.Abs(cfg.Source)
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(source, backend.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("watch source: %w", err)
		}
	}

	model := ui.NewModel(cfg.ModelConfig(source, watcher))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	var g errgroup.Group
	g.Go(func() error {
		_, runErr := program.Run()
		if watcher != nil {
			watcher.Stop()
		}
		if errors.Is(runErr, tea.ErrProgramKilled) {
			return nil
		}
		return runErr
	})
	if watcher != nil {
		// drains until the program goroutine stops the watcher
		g.Go(func() error {
			watcher.Wait()
			return nil
		})
	}
	return g.Wait()
}
