// Package viz provides the terminal front end for sortviz.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: algorithm menu, run settings and the live view
//   - [Model]: the live view over a [player.Player]
//   - [Canvas]: column canvas with eighth-cell vertical resolution
//   - Theme selection with 6 built-in colour schemes
//
// # Key Bindings
//
//	1-5   - Switch algorithm, keeping the data
//	R     - Shuffle and restart
//	+/-   - Faster / slower
//	Space - Pause/Resume
//	.     - Single step
//	[]    - Scrub through recent steps
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Full help
//
// # Recording
//
// G starts and stops recording. Frames are rasterised from the canvas with
// the active theme and written to sortviz.gif in the working directory.
package viz
