// Package terminal owns the tcell screen for the lifetime of a run.
//
// Open checks that stdout is a terminal, initializes the screen with the cursor hidden and
// starts a single reader goroutine that forwards screen events into a buffered channel.
// TryEvent never blocks. Stop is idempotent and always finalizes the screen, restoring the
// terminal mode; it is also registered as the crash restore hook.
package terminal
