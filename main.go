package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/lcdmenu/internal/app"
	"github.com/atomicstack/lcdmenu/internal/config"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"golang.org/x/term"
)

// Lines the front end draws around the display: the panel border on each
// side, plus a title above and a status line below.
const (
	panelChromeCols = 2
	panelChromeRows = 4
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	screen := detectTerminal(stdDescriptors(), termSize)
	events.App.Start(startupTracePayload(runtimeCfg, screen))

	if err := checkPanel(screen, runtimeCfg.App); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the resolved configuration and the terminal
// the display will be drawn on.
func startupTracePayload(cfg config.Config, screen terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	need := panelSize(cfg.App.Rows, cfg.App.Cols)
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": screen,
		"panel":    need,
	}
	if screen.Found() {
		payload["panelFits"] = screen.Fits(need)
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

// descriptor names a file descriptor to probe for a terminal.
type descriptor struct {
	name string
	fd   int
}

func stdDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// sizeFunc reports the cell size of the terminal behind fd. ok is false when
// fd is not a terminal.
type sizeFunc func(fd int) (width, height int, ok bool, err error)

func termSize(fd int) (int, int, bool, error) {
	if fd < 0 || !term.IsTerminal(fd) {
		return 0, 0, false, nil
	}
	w, h, err := term.GetSize(fd)
	return w, h, true, err
}

// extent is a width x height in terminal cells.
type extent struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func panelSize(rows, cols int) extent {
	return extent{Width: cols + panelChromeCols, Height: rows + panelChromeRows}
}

// terminal is the first sized terminal found among the probed descriptors.
type terminal struct {
	Source string   `json:"source,omitempty"`
	Size   extent   `json:"size"`
	Probed []string `json:"probed"`
	Errors []string `json:"errors,omitempty"`
}

// Found reports whether any descriptor had a measurable terminal.
func (t terminal) Found() bool { return t.Source != "" }

// Fits reports whether a panel of the given extent fits the terminal.
func (t terminal) Fits(panel extent) bool {
	return t.Found() && t.Size.Width >= panel.Width && t.Size.Height >= panel.Height
}

func detectTerminal(descs []descriptor, size sizeFunc) terminal {
	var screen terminal
	for _, d := range descs {
		screen.Probed = append(screen.Probed, d.name)
		w, h, ok, err := size(d.fd)
		if !ok {
			continue
		}
		if err != nil {
			screen.Errors = append(screen.Errors, d.name+": "+err.Error())
			continue
		}
		if !screen.Found() {
			screen.Source = d.name
			screen.Size = extent{Width: w, Height: h}
		}
	}
	return screen
}

// checkPanel rejects an interactive session whose display cannot be drawn
// in the detected terminal. Listing the menu and running without a
// measurable terminal are always allowed.
func checkPanel(screen terminal, cfg app.Config) error {
	if cfg.List || !screen.Found() {
		return nil
	}
	need := panelSize(cfg.Rows, cfg.Cols)
	if screen.Fits(need) {
		return nil
	}
	return fmt.Errorf("a %dx%d display needs a %dx%d terminal, %s is %dx%d",
		cfg.Cols, cfg.Rows, need.Width, need.Height,
		screen.Source, screen.Size.Width, screen.Size.Height)
}
