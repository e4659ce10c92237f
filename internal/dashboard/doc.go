// Package dashboard renders the apex metrics feed as a full-screen Bubble
// Tea program.
//
// # Architecture
//
// The package follows The Elm Architecture:
//
//   - Model: the last feed.Update, metric history, spinner and help state
//   - Update: processes key presses, window size, spinner/pulse ticks and
//     UpdateMsg values carrying feed updates
//   - View: renders header, metric cards and footer
//
// Feed updates arrive from the scheduler goroutine through a Bridge, which
// forwards each feed.Update into the running program with program.Send.
//
// # Layout
//
//	< 80 cols   - every card stacked in a single column
//	>= 80 cols  - 2x2 metric grid with the strategy card spanning both columns
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	?           - Toggle help overlay
//	Esc         - Close help overlay
package dashboard
