// Package ui is the windowing engine: it lays panes out on the
// terminal, routes keys to the focused pane, and coordinates the
// asynchronous callback protocol between producer windows (ListWindow)
// and consumer windows (TextWindow).
//
// Core abstractions:
//   - Window: the capability set {produce content, handle input, render}
//   - Geometry / ComputeLayout: left/right column split, stacked panes
//   - FocusManager: exclusive focus, rotated across drawable windows
//   - Callback / Binding: background units of work pushing results into
//     a window's sink, superseded on re-activation
//   - Session: the single-threaded input/redraw loop (Bubble Tea root)
//
// One rule holds everywhere: background units touch nothing but a
// syncval.Value. The render path reads cached snapshots and never
// blocks.
package ui
