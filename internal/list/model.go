package list

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/azrael8576/Reorderable/internal/logging"
	"github.com/azrael8576/Reorderable/internal/messages"
	"github.com/azrael8576/Reorderable/internal/scroller"
	"github.com/azrael8576/Reorderable/internal/ui/common"
)

// Item is a single reorderable row.
type Item struct {
	ID    string
	Title string
}

// dragState tracks an in-progress mouse drag of a row.
type dragState struct {
	active     bool
	startIndex int
	index      int // current index of the dragged item
	lastY      int // last pointer row in list coordinates, unclamped
}

// Model is the Bubbletea model for a drag-to-reorder list. Dragging a
// row past the viewport edge auto-scrolls via the scroller package so
// items can be dropped outside the visible range.
type Model struct {
	items  []Item
	cursor int

	focused bool
	width   int
	height  int

	// Screen coordinates of the list's top-left cell.
	offsetX int
	offsetY int

	styles common.Styles
	zone   *zone.Manager

	surface  *rowSurface
	scroller *scroller.Scroller
	edgeZone func() int
	send     func(tea.Msg)

	drag dragState
}

// New creates a list model. speed is the auto-scroll speed source in
// rows per second and edgeZone the activation zone in rows; both are
// read fresh so settings reloads apply to in-flight drags.
func New(speed func() float64, edgeZone func() int) *Model {
	surface := &rowSurface{}
	return &Model{
		styles:   common.DefaultStyles(),
		surface:  surface,
		scroller: scroller.New(surface, speed),
		edgeZone: edgeZone,
	}
}

// Init initializes the list.
func (m *Model) Init() tea.Cmd { return nil }

// SetSend installs the program's Send function. The scroll animation
// goroutine uses it to request repaints and drop re-evaluation.
func (m *Model) SetSend(send func(tea.Msg)) {
	m.send = send
	m.surface.SetNotify(func() {
		if send != nil {
			send(messages.Repaint{})
		}
	})
}

// SetZone sets the shared zone manager for click targets.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetStyles replaces the styles (theme changes).
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetSize sets the viewport size in cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.syncScrollBound()
}

// SetOffset sets the absolute screen coordinates of the list's
// top-left cell.
func (m *Model) SetOffset(x, y int) {
	m.offsetX = x
	m.offsetY = y
}

// SetItems replaces the list contents.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.clampCursor()
	m.syncScrollBound()
}

// Items returns the current items in display order.
func (m *Model) Items() []Item { return m.items }

// Cursor returns the selected row index.
func (m *Model) Cursor() int { return m.cursor }

// ScrollOffset returns the first visible row index.
func (m *Model) ScrollOffset() int { return m.surface.Offset() }

// IsDragging reports whether a row is being dragged.
func (m *Model) IsDragging() bool { return m.drag.active }

// IsAutoScrolling reports whether the edge auto-scroll loop is running.
func (m *Model) IsAutoScrolling() bool { return m.scroller.IsScrolling() }

// Focus sets focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus, cancelling any drag and auto-scroll.
func (m *Model) Blur() {
	m.focused = false
	m.drag = dragState{}
	m.scroller.Stop()
}

// Focused returns focus state.
func (m *Model) Focused() bool { return m.focused }

// Shutdown stops the auto-scroll loop. Call on app teardown.
func (m *Model) Shutdown() {
	m.scroller.Stop()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		return m.handleWheel(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case messages.DragScrollTick:
		m.syncDragTarget()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.MoveDown):
		return m, m.moveItem(m.cursor, m.cursor+1)
	case key.Matches(msg, keys.MoveUp):
		return m, m.moveItem(m.cursor, m.cursor-1)
	case key.Matches(msg, keys.Top):
		m.cursor = 0
		m.surface.ScrollIntoView(0, m.height)
	case key.Matches(msg, keys.Bottom):
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
			m.surface.ScrollIntoView(m.cursor, m.height)
		}
	case key.Matches(msg, keys.Yank):
		return m, m.yankSelected()
	}
	return m, nil
}

func (m *Model) handleWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd) {
	if !m.focused || m.drag.active {
		return m, nil
	}
	delta := float64(wheelRows(m.height))
	switch msg.Button {
	case tea.MouseWheelUp:
		m.surface.Nudge(-delta)
	case tea.MouseWheelDown:
		m.surface.Nudge(delta)
	}
	return m, nil
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (*Model, tea.Cmd) {
	if !m.focused || msg.Button != tea.MouseLeft {
		return m, nil
	}
	if !m.bounds().Contains(msg.X, msg.Y) {
		return m, nil
	}
	_, y := m.screenToList(msg.X, msg.Y)
	row := m.surface.Offset() + y
	if row < 0 || row >= len(m.items) {
		return m, nil
	}
	m.cursor = row
	m.drag = dragState{active: true, startIndex: row, index: row, lastY: y}
	return m, nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (*Model, tea.Cmd) {
	if !m.focused || msg.Button != tea.MouseLeft || !m.drag.active {
		return m, nil
	}
	_, y := m.screenToList(msg.X, msg.Y)
	m.drag.lastY = y
	m.syncDragTarget()
	m.updateEdgeScroll(y)
	return m, nil
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || !m.drag.active {
		return m, nil
	}
	m.scroller.Stop()
	drag := m.drag
	m.drag = dragState{}
	if drag.index == drag.startIndex || drag.index >= len(m.items) {
		return m, nil
	}
	item := m.items[drag.index]
	logging.Debug("drop committed: %q %d -> %d", item.ID, drag.startIndex, drag.index)
	return m, func() tea.Msg {
		return messages.ItemMoved{ID: item.ID, From: drag.startIndex, To: drag.index}
	}
}

// syncDragTarget moves the dragged item under the pointer's current
// row. Called on pointer motion and once per auto-scroll tick, since
// scrolling moves rows under a stationary pointer.
func (m *Model) syncDragTarget() {
	if !m.drag.active || len(m.items) == 0 {
		return
	}
	y := clamp(m.drag.lastY, 0, m.height-1)
	target := clamp(m.surface.Offset()+y, 0, len(m.items)-1)
	if m.shift(m.drag.index, target) {
		m.drag.index = target
		m.cursor = target
	}
}

// updateEdgeScroll starts, retargets or stops the auto-scroll loop
// based on the pointer row. y is unclamped: past-the-edge positions
// land deeper in the zone and scroll faster. Repeated calls with an
// unchanged direction and depth are absorbed by the scroller's
// idempotent Start.
func (m *Model) updateEdgeScroll(y int) {
	edge := m.edgeZone()
	if edge < 1 {
		edge = 1
	}
	switch {
	case y < edge:
		m.startEdgeScroll(scroller.DirectionBackward, edge-y)
	case y >= m.height-edge:
		m.startEdgeScroll(scroller.DirectionForward, y-(m.height-edge)+1)
	default:
		m.scroller.Stop()
	}
}

func (m *Model) startEdgeScroll(dir scroller.Direction, depth int) {
	surface := m.surface
	send := m.send
	m.scroller.Start(dir, edgeMultiplier(depth),
		func() float64 { return surface.Remaining(dir) },
		func() {
			if send != nil {
				send(messages.DragScrollTick{})
			}
		})
}

// edgeMultiplier maps zone depth in rows to a speed multiplier.
func edgeMultiplier(depth int) float64 {
	if depth < 1 {
		depth = 1
	}
	if depth > 4 {
		depth = 4
	}
	return float64(depth)
}

func (m *Model) yankSelected() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]
	return common.SafeCmd(func() tea.Msg {
		err := common.CopyToClipboard(item.Title)
		if err != nil {
			logging.Error("failed to copy item title: %v", err)
		}
		return messages.Yanked{Title: item.Title, Err: err}
	})
}

// moveItem shifts an item and reports the move.
func (m *Model) moveItem(from, to int) tea.Cmd {
	if !m.shift(from, to) {
		return nil
	}
	m.cursor = to
	m.surface.ScrollIntoView(to, m.height)
	item := m.items[to]
	return func() tea.Msg {
		return messages.ItemMoved{ID: item.ID, From: from, To: to}
	}
}

// shift moves the item at from to index to, sliding the rows between.
func (m *Model) shift(from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(m.items) || to >= len(m.items) {
		return false
	}
	item := m.items[from]
	if from < to {
		copy(m.items[from:], m.items[from+1:to+1])
	} else {
		copy(m.items[to+1:], m.items[to:from])
	}
	m.items[to] = item
	return true
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.items)-1)
	m.surface.ScrollIntoView(m.cursor, m.height)
}

func (m *Model) clampCursor() {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor, 0, len(m.items)-1)
}

func (m *Model) syncScrollBound() {
	m.surface.SetMax(float64(len(m.items) - m.height))
}

// screenToList converts screen coordinates to list-local coordinates.
func (m *Model) screenToList(screenX, screenY int) (x, y int) {
	return screenX - m.offsetX, screenY - m.offsetY
}

// bounds returns the list's hit region in screen coordinates.
func (m *Model) bounds() common.HitRegion {
	return common.HitRegion{ID: "list", X: m.offsetX, Y: m.offsetY, Width: m.width, Height: m.height}
}

func wheelRows(height int) int {
	rows := height / 10
	if rows < 1 {
		rows = 1
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
