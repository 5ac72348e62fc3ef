package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/lcdmenu/internal/app"
	"github.com/atomicstack/lcdmenu/internal/engine"
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
	envRows    = "LCD_MENU_ROWS"
	envCols    = "LCD_MENU_COLS"
	envTimeout = "LCD_MENU_TIMEOUT"
	envMenu    = "LCD_MENU_FILE"
	envFocus   = "LCD_MENU_FOCUS"
	envTrace   = "LCD_MENU_TRACE"
	envLogFile = "LCD_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lcdmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	rows := fs.Int("rows", envOrInt(env, envRows, 4), "display rows")
	cols := fs.Int("cols", envOrInt(env, envCols, 20), "display columns")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, engine.DefaultTimeout), "idle time before the display sleeps (0 disables)")
	menuFile := fs.String("menu", envOrDefault(env, envMenu, ""), "path to a YAML menu definition (empty uses the built-in demo)")
	focus := fs.String("focus", envOrDefault(env, envFocus, ""), "item to focus at startup, matched fuzzily against label paths")
	cursorIcon := fs.Int("cursor-icon", 0, "glyph code of the browsing cursor (0 uses the right arrow)")
	editIcon := fs.Int("edit-icon", 0, "glyph code of the edit cursor (0 uses the left arrow)")
	list := fs.Bool("list", false, "print the menu tree and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Rows:       *rows,
			Cols:       *cols,
			Timeout:    *timeout,
			MenuFile:   *menuFile,
			Focus:      *focus,
			CursorIcon: *cursorIcon,
			EditIcon:   *editIcon,
			List:       *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"rows":       strconv.Itoa(*rows),
			"cols":       strconv.Itoa(*cols),
			"timeout":    timeout.String(),
			"menu":       *menuFile,
			"focus":      *focus,
			"cursorIcon": strconv.Itoa(*cursorIcon),
			"editIcon":   strconv.Itoa(*editIcon),
			"list":       strconv.FormatBool(*list),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
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

// envOrDuration accepts Go duration syntax or a bare number of seconds.
func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	parsed, err := time.ParseDuration(v)
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

// Validate rejects geometry and glyph values the display cannot honour.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Rows < 1 {
		return fmt.Errorf("rows must be >= 1 (got %d)", a.Rows)
	}
	if a.Cols < 4 {
		return fmt.Errorf("cols must be >= 4 (got %d)", a.Cols)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", a.Timeout)
	}
	if a.CursorIcon < 0 || a.CursorIcon > 255 {
		return fmt.Errorf("cursor-icon must be within 0..255 (got %d)", a.CursorIcon)
	}
	if a.EditIcon < 0 || a.EditIcon > 255 {
		return fmt.Errorf("edit-icon must be within 0..255 (got %d)", a.EditIcon)
	}
	return nil
}
