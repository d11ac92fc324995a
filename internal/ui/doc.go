// Package ui contains the Bubble Tea program that powers the session selector.
// The Model type only orchestrates messages; the selection rules live in
// internal/ui/state.Selector and rendering lives in view.go.
//
// Message flow:
//   - Init schedules a tick every pollInterval. Ticks carry no work; they only
//     cause another render, which bounds how stale the screen can get without
//     a background refresh.
//   - Key presses are classified into one action (quit, next, previous,
//     confirm, refresh) and applied to the selector before the next render.
//     Refresh calls the session lister synchronously inside Update.
//   - After every message the quit latch is checked; once set, Update returns
//     tea.Quit and Selected reports the confirmed session name, if any.
//
// State ownership:
//   - Selector is owned by the Model and never shared.
//   - The viewport offset is the only state View writes; it follows the
//     selection so the highlighted row stays visible.
package ui
