// Package ui hosts the menu engine in a Bubble Tea program. The terminal
// stands in for the LCD module: key presses become engine events and the
// virtual display buffer is drawn as a bordered panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, window size, idle ticks).
//   - Key handling (internal/ui/keys.go) maps each key to exactly one engine
//     operation depending on whether the engine is browsing or editing.
//   - A periodic tick polls the engine's idle timer so the panel blanks after
//     the configured timeout.
//
// Side effects raised by menu items (status text, quit requests) reach the
// model through the Host interface, keeping the model free of knowledge about
// any particular menu definition.
package ui
