package list

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/azrael8576/Reorderable/internal/messages"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	letters := "abcdefghijklmnopqrstuvwxyz"
	for i := range items {
		items[i] = Item{ID: string(letters[i%len(letters)]), Title: "item " + string(letters[i%len(letters)])}
	}
	return items
}

func order(m *Model) string {
	var s string
	for _, item := range m.Items() {
		s += item.ID
	}
	return s
}

// newTestModel builds a focused model with a slow scroll speed so
// edge auto-scroll loops stay observable for the test's lifetime.
func newTestModel(t *testing.T, n, width, height, edgeZone int) *Model {
	t.Helper()
	m := New(func() float64 { return 1 }, func() int { return edgeZone })
	m.SetSize(width, height)
	m.SetItems(testItems(n))
	m.Focus()
	t.Cleanup(m.Shutdown)
	return m
}

func TestShift(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		want      string
		wantMoved bool
	}{
		{"down one", 0, 1, "bacde", true},
		{"down far", 0, 4, "bcdea", true},
		{"up one", 3, 2, "abdce", true},
		{"up far", 4, 0, "eabcd", true},
		{"same index", 2, 2, "abcde", false},
		{"from out of range", 5, 0, "abcde", false},
		{"to out of range", 0, 5, "abcde", false},
		{"negative to", 0, -1, "abcde", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 5, 20, 5, 1)
			if got := m.shift(tt.from, tt.to); got != tt.wantMoved {
				t.Fatalf("shift(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.wantMoved)
			}
			if got := order(m); got != tt.want {
				t.Errorf("order = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCursorNavigationClamps(t *testing.T) {
	m := newTestModel(t, 3, 20, 5, 1)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if got := m.Cursor(); got != 0 {
		t.Fatalf("cursor moved above top: %d", got)
	}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want bottom item 2", got)
	}
}

func TestKeyboardReorderEmitsItemMoved(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'J', Text: "J"})
	if cmd == nil {
		t.Fatal("expected a command from reorder")
	}
	msg, ok := cmd().(messages.ItemMoved)
	if !ok {
		t.Fatalf("expected ItemMoved, got %T", cmd())
	}
	if msg.From != 0 || msg.To != 1 || msg.ID != "a" {
		t.Fatalf("unexpected move: %+v", msg)
	}
	if got := order(m); got != "bacde" {
		t.Fatalf("order = %q, want bacde", got)
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}
}

func TestKeyboardReorderAtBoundaryIsNoOp(t *testing.T) {
	m := newTestModel(t, 3, 20, 5, 1)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'K', Text: "K"})
	if cmd != nil {
		t.Fatal("expected no command when moving the top item up")
	}
	if got := order(m); got != "abc" {
		t.Fatalf("order changed: %q", got)
	}
}

func TestClickSelectsAndArmsDrag(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)

	m, _ = m.Update(tea.MouseClickMsg{X: 3, Y: 2, Button: tea.MouseLeft})
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
	if !m.IsDragging() {
		t.Fatal("expected drag to be armed")
	}
}

func TestClickOutsideViewportIgnored(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)
	m.SetOffset(10, 3)

	m, _ = m.Update(tea.MouseClickMsg{X: 2, Y: 2, Button: tea.MouseLeft})
	if m.IsDragging() {
		t.Fatal("click outside the list must not arm a drag")
	}
}

func TestDragMotionReordersUnderPointer(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 3, Button: tea.MouseLeft})

	if got := order(m); got != "acdbe" {
		t.Fatalf("order = %q, want acdbe", got)
	}
	if got := m.Cursor(); got != 3 {
		t.Fatalf("cursor = %d, want 3", got)
	}
}

func TestDragIntoEdgeStartsAutoScroll(t *testing.T) {
	m := newTestModel(t, 10, 20, 5, 2)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 2, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 4, Button: tea.MouseLeft})
	if !m.IsAutoScrolling() {
		t.Fatal("expected auto-scroll in the bottom edge zone")
	}

	// Back to the middle row stops the loop.
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 2, Button: tea.MouseLeft})
	if m.IsAutoScrolling() {
		t.Fatal("expected auto-scroll to stop outside the edge zone")
	}
}

func TestAutoScrollNotStartedAtBound(t *testing.T) {
	// Already at the top: dragging into the top edge has nowhere to go.
	m := newTestModel(t, 10, 20, 5, 2)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 2, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if m.IsAutoScrolling() {
		t.Fatal("expected no auto-scroll when the surface cannot move backward")
	}
}

func TestDragScrollTickRetargetsDrop(t *testing.T) {
	m := newTestModel(t, 10, 20, 5, 1)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 3, Button: tea.MouseLeft})
	// Simulate the viewport having scrolled three rows forward under
	// the stationary pointer.
	m.surface.Nudge(3)
	m, _ = m.Update(messages.DragScrollTick{})

	if got := m.drag.index; got != 6 {
		t.Fatalf("drag index = %d, want 6 after scrolling under pointer", got)
	}
}

func TestReleaseEmitsItemMoved(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 3, Button: tea.MouseLeft})
	m, cmd := m.Update(tea.MouseReleaseMsg{X: 0, Y: 3, Button: tea.MouseLeft})

	if m.IsDragging() {
		t.Fatal("expected drag to end on release")
	}
	if m.IsAutoScrolling() {
		t.Fatal("expected auto-scroll stopped on release")
	}
	if cmd == nil {
		t.Fatal("expected ItemMoved command")
	}
	msg, ok := cmd().(messages.ItemMoved)
	if !ok {
		t.Fatalf("expected ItemMoved, got %T", cmd())
	}
	if msg.ID != "b" || msg.From != 1 || msg.To != 3 {
		t.Fatalf("unexpected move: %+v", msg)
	}
}

func TestReleaseWithoutMoveEmitsNothing(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	m, cmd := m.Update(tea.MouseReleaseMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	if cmd != nil {
		t.Fatal("expected no command for a click without movement")
	}
	if m.IsDragging() {
		t.Fatal("expected drag cleared")
	}
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t, 30, 20, 10, 1)

	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if got := m.ScrollOffset(); got != 1 {
		t.Fatalf("offset = %d, want 1 after wheel down", got)
	}
	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if got := m.ScrollOffset(); got != 0 {
		t.Fatalf("offset = %d, want 0 after wheel up", got)
	}
}

func TestBlurCancelsDragAndScroll(t *testing.T) {
	m := newTestModel(t, 10, 20, 5, 2)

	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 2, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 4, Button: tea.MouseLeft})
	m.Blur()

	if m.IsDragging() {
		t.Fatal("expected drag cancelled on blur")
	}
	if m.IsAutoScrolling() {
		t.Fatal("expected auto-scroll stopped on blur")
	}
}

func TestSetItemsClampsCursor(t *testing.T) {
	m := newTestModel(t, 10, 20, 5, 1)
	for i := 0; i < 9; i++ {
		m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	if got := m.Cursor(); got != 9 {
		t.Fatalf("cursor = %d, want 9", got)
	}

	m.SetItems(testItems(3))
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want clamped to 2", got)
	}
}

func TestUnfocusedIgnoresInput(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)
	m.Blur()

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if got := m.Cursor(); got != 0 {
		t.Fatalf("cursor moved while blurred: %d", got)
	}
	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	if m.IsDragging() {
		t.Fatal("drag armed while blurred")
	}
}

func TestViewMarksDraggedRow(t *testing.T) {
	m := newTestModel(t, 5, 20, 5, 1)
	m, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft})
	m, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 2, Button: tea.MouseLeft})

	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	// The dragged row carries the grip prefix.
	if !strings.Contains(ansi.Strip(view), "≡ item b") {
		t.Fatalf("expected dragged row marker in view:\n%s", view)
	}
}
