// Package cli runs a pipebomb-sweeper round inside a real terminal.
// It owns everything the game core does not: raw-mode setup and
// guaranteed restore, key-byte input with escape-sequence decoding, and
// ANSI rendering of the field snapshot.
//
// # Basic Usage
//
//	sess, err := cli.New(cli.Options{Rows: 8, Cols: 8, Density: 16})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start enters raw mode; Stop restores the terminal and is safe to
//	// call on every exit path.
//	if err := sess.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Stop()
//
//	outcome, err := sess.Run()
//
// # Controls
//
//   - W/A/S/D or the arrow keys: move the cursor
//   - Space: open the cursor cell
//   - F: toggle a flag on the cursor cell
//   - R: reset and re-randomize the field (asks Y/N)
//   - Q: quit (asks Y/N)
//
// Letters are case-insensitive. Opening a flagged cell also asks for
// Y/N confirmation. Any other key leaves the game unchanged and shows
// an "unrecognised command" notice.
//
// # Architecture
//
// The package consists of three components:
//
//   - Session: enters/leaves raw mode and drives the command loop, one
//     keypress at a time, against a sweeper.Field
//   - InputHandler: reads raw bytes and translates them into commands,
//     decoding CSI/SS3 arrow-key sequences
//   - Renderer: draws the field snapshot with ANSI escape codes, border
//     and status bar included, batching output into a single write
//
// The Session performs no game logic itself; every state transition
// goes through the sweeper package.
package cli
