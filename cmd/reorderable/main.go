package main

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/azrael8576/Reorderable/internal/app"
	"github.com/azrael8576/Reorderable/internal/config"
	"github.com/azrael8576/Reorderable/internal/logging"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("reorderable %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	itemsPath := ""
	if len(os.Args) > 1 {
		itemsPath = os.Args[1]
	}

	if paths, err := config.DefaultPaths(); err == nil {
		if err := logging.Initialize(paths.LogsRoot, logging.LevelDebug); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	}
	defer logging.Close()

	logging.Info("Starting reorderable")

	a, err := app.New(version, itemsPath)
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing app: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		a,
		tea.WithFilter(mouseEventFilter),
	)
	a.SetMsgSender(p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		a.Shutdown()
		os.Exit(1)
	}
	a.Shutdown()

	logging.Info("reorderable shutdown complete")
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseWheelEvent    time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter throttles repeated mouse events so a fast terminal
// cannot flood the update loop mid-drag.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		// Always allow if position changed
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		// Same position - apply time throttle
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	case tea.MouseWheelMsg:
		now := time.Now()
		if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseWheelEvent = now
	}
	return msg
}
