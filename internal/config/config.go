package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/stickytree/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSource     = "STICKYTREE_SOURCE"
	envSticky     = "STICKYTREE_STICKY"
	envOverscan   = "STICKYTREE_OVERSCAN"
	envWidth      = "STICKYTREE_WIDTH"
	envHeight     = "STICKYTREE_HEIGHT"
	envShowFooter = "STICKYTREE_FOOTER"
	envWatch      = "STICKYTREE_WATCH"
	envTrace      = "STICKYTREE_TRACE"
	envLogFile    = "STICKYTREE_LOG_FILE"
)

// ErrNoSource is returned by Validate when no tree source was given.
var ErrNoSource = errors.New("no tree source given (use -source or pass a path)")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. A positional
// argument names the source when -source is not set.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("stickytree", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	source := fs.String("source", envOrDefault(env, envSource, ""), "YAML tree file or directory to browse")
	sticky := fs.Bool("sticky", envOrBool(env, envSticky, true), "pin the folder headers of scrolled-past rows")
	overscan := fs.Int("overscan", envOrInt(env, envOverscan, -1), "rows kept rendered above the viewport (-1 keeps all)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the tree when the source changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *source == "" && fs.NArg() > 0 {
		*source = fs.Arg(0)
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *overscan < -1 {
		return Config{}, fmt.Errorf("overscan must be >= -1 (got %d)", *overscan)
	}

	cfg := Config{
		App: app.Config{
			Source:     *source,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Sticky:     *sticky,
			Overscan:   *overscan,
			Watch:      *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":   *source,
			"sticky":   strconv.FormatBool(*sticky),
			"overscan": strconv.Itoa(*overscan),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"watch":    strconv.FormatBool(*watch),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the source exists.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Source) == "" {
		return ErrNoSource
	}
	if _, err := os.Stat(cfg.App.Source); err != nil {
		return fmt.Errorf("tree source: %w", err)
	}
	return nil
}
