package app

import (
	"context"
	"fmt"
	"sync"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/azrael8576/Reorderable/internal/config"
	"github.com/azrael8576/Reorderable/internal/list"
	"github.com/azrael8576/Reorderable/internal/logging"
	"github.com/azrael8576/Reorderable/internal/messages"
	"github.com/azrael8576/Reorderable/internal/safego"
	"github.com/azrael8576/Reorderable/internal/ui/common"
)

// App is the root Bubble Tea model. It owns the reorderable list, the
// settings store with its file watcher, and the toast overlay.
type App struct {
	paths *config.Paths
	store *config.Store

	watcher       *config.Watcher
	watcherErr    error
	watcherCancel context.CancelFunc

	list  *list.Model
	toast *common.ToastModel

	zones  *zone.Manager
	styles common.Styles
	keymap KeyMap

	// Items loaded from itemsPath, written back on exit when dirty.
	itemsPath string
	dirty     bool

	width, height int
	ready         bool
	quitting      bool

	send func(tea.Msg)

	shutdownOnce sync.Once
	version      string
}

// New creates the application. itemsPath is the optional file whose
// lines the list reorders; empty means a built-in sample list.
func New(version, itemsPath string) (*App, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, err
	}

	store := config.NewStore(paths.ConfigPath)

	a := &App{
		paths:     paths,
		store:     store,
		list:      list.New(store.ScrollSpeed, store.EdgeZone),
		toast:     common.NewToastModel(),
		zones:     zone.New(),
		styles:    common.DefaultStyles(),
		keymap:    DefaultKeyMap(),
		itemsPath: itemsPath,
		version:   version,
	}

	items, err := a.loadItems()
	if err != nil {
		return nil, err
	}
	a.list.SetItems(items)
	a.list.SetStyles(a.styles)
	a.list.SetZone(a.zones)
	a.list.SetOffset(listOriginX, listOriginY)
	a.list.Focus()

	a.watcher, a.watcherErr = config.NewWatcher(paths.ConfigPath, func() {
		if send := a.send; send != nil {
			send(messages.SettingsReloaded{})
		}
	})
	if a.watcherErr != nil {
		logging.Warn("settings watcher disabled: %v", a.watcherErr)
	}

	return a, nil
}

// SetMsgSender installs the program Send function. The scroll loop and
// the settings watcher deliver messages through it from their own
// goroutines.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	a.send = send
	a.list.SetSend(send)
}

// Init starts the settings watcher.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.list.Init()}
	if a.watcher != nil {
		ctx, cancel := context.WithCancel(context.Background())
		a.watcherCancel = cancel
		watcher := a.watcher
		safego.Go("settings-watcher", func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				logging.Warn("settings watcher stopped: %v", err)
			}
		})
	} else if a.watcherErr != nil {
		cmds = append(cmds, a.toast.ShowWarning("Settings hot-reload disabled"))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(a.listWidth(), a.listHeight())
		a.ready = true
		return a, nil

	case tea.KeyPressMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case messages.SettingsReloaded:
		a.store.Reload()
		logging.Info("settings reloaded: speed=%.1f edge=%d",
			a.store.ScrollSpeed(), a.store.EdgeZone())
		return a, a.toast.ShowInfo("Settings reloaded")

	case messages.ItemMoved:
		a.dirty = true
		logging.Debug("item %q moved %d -> %d", msg.ID, msg.From, msg.To)
		return a, nil

	case messages.Yanked:
		if msg.Err != nil {
			return a, a.toast.ShowError("Copy failed")
		}
		return a, a.toast.ShowSuccess(fmt.Sprintf("Copied %q", msg.Title))

	case messages.Error:
		if !msg.Logged {
			logging.Error("%s: %v", msg.Context, msg.Err)
		}
		return a, a.toast.ShowError(msg.Context)

	case messages.Repaint:
		// Offset changed under an auto-scroll tick; rendering picks
		// up the new offset, nothing to update.
		return a, nil
	}

	newToast, cmd := a.toast.Update(msg)
	a.toast = newToast
	cmds = append(cmds, cmd)

	newList, cmd := a.list.Update(msg)
	a.list = newList
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// handleKey handles app-level keys. Returns handled=false for keys the
// list should see.
func (a *App) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return tea.Quit, true
	case key.Matches(msg, a.keymap.Help):
		_ = a.store.Update(func(s *config.Settings) {
			s.ShowKeymapHints = !s.ShowKeymapHints
		})
		return nil, true
	}
	return nil, false
}

// Shutdown releases resources that outlive the Bubble Tea program and
// flushes reordered items back to disk.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcherCancel != nil {
			a.watcherCancel()
		}
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		a.list.Shutdown()
		if err := a.saveItems(); err != nil {
			logging.Error("failed to save items: %v", err)
		}
	})
}
