package messages

// Error is sent when an operation fails and the user should know.
// Logged indicates the error was already written to the log file.
type Error struct {
	Err     error
	Context string
	Logged  bool
}

// SettingsReloaded is sent when the config watcher picks up a change.
// The app reloads the store on receipt.
type SettingsReloaded struct{}

// Repaint asks the program to redraw. Sent from background goroutines
// (the scroll animation) via the program's Send function.
type Repaint struct{}

// DragScrollTick is sent once per auto-scroll tick so the drop target
// can be re-evaluated on the UI goroutine while rows move under the
// stationary pointer.
type DragScrollTick struct{}

// ItemMoved is sent when a reorder is committed.
type ItemMoved struct {
	ID   string
	From int
	To   int
}

// Yanked reports a clipboard copy of the selected item.
type Yanked struct {
	Title string
	Err   error
}
