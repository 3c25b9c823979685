// Package tui provides the Terminal User Interface for smscctl.
//
// This package implements the interactive operator console using the Bubble
// Tea framework: a table of the gateway's messaging operators, a create/edit
// dialog, a single notification line and overlays for help and the activity
// log.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model/): Bubble Tea state, key bindings and the
//     console store the screen renders from
//   - View (internal/tui/view/): renders the table, dialog, status line and
//     overlays
//   - Controller (internal/tui/controller/): processes keyboard input, feeds
//     settled requests to the console controller and owns the program lifecycle
//
// All store mutations happen inside Update. HTTP round-trips run as tea.Cmd
// values and come back as messages, so the list is only ever replaced by the
// response of a list fetch.
//
// # Key Bindings
//
// Operator list:
//   - a: add operator
//   - e / Enter: edit selected operator
//   - d: delete selected operator
//   - r: refresh from the gateway
//   - y: copy selected operator as JSON
//   - L: activity log, h: help, x: dismiss notification, q: quit
//
// Editor dialog:
//   - Tab / Shift+Tab: move between inputs
//   - Enter / Ctrl+S: save
//   - Esc: cancel
package tui
