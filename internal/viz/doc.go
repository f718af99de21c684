// Package viz presents recorded histories in the terminal.
//
// The package implements an interactive player using the Bubble Tea
// framework:
//
//   - [Model]: steps through a history driven by a [player.Player]
//   - [Picker]: menu for choosing an algorithm to play
//   - [Printer]: colored, non-interactive frame dump
//   - [Sparkline] and [WriteChart]: plots of the structure size over steps
//
// # Key Bindings
//
//	Space     - Play/Pause
//	Right/l   - Next step
//	Left/h    - Previous step
//	g/G       - First/Last step
//	+/-       - Faster/Slower
//	L         - Toggle looping
//	r         - Rewind and pause
//	R         - Rerun the algorithm
//	?         - Show help overlay
//	q         - Quit
package viz
