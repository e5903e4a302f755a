package common

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestToastShowAndView(t *testing.T) {
	m := NewToastModel()

	if m.Visible() {
		t.Fatal("new toast model must not be visible")
	}

	cmd := m.Show("saved", ToastSuccess, time.Minute)
	if cmd == nil {
		t.Fatal("expected dismissal command")
	}
	if !m.Visible() {
		t.Fatal("expected toast visible after Show")
	}
	if got := ansi.Strip(m.View()); !strings.Contains(got, "saved") {
		t.Fatalf("view = %q, want message rendered", got)
	}
}

func TestToastIcons(t *testing.T) {
	tests := []struct {
		name     string
		toast    ToastType
		wantIcon string
	}{
		{"success", ToastSuccess, "✓"},
		{"error", ToastError, "✗"},
		{"warning", ToastWarning, "!"},
		{"info", ToastInfo, "i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewToastModel()
			m.Show("msg", tt.toast, time.Minute)
			if got := strings.TrimSpace(ansi.Strip(m.View())); !strings.HasPrefix(got, tt.wantIcon) {
				t.Errorf("view = %q, want %q prefix", got, tt.wantIcon)
			}
		})
	}
}

func TestToastExpiry(t *testing.T) {
	m := NewToastModel()
	m.Show("gone", ToastInfo, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if m.Visible() {
		t.Fatal("expected toast expired")
	}
	m, _ = m.Update(ToastDismissed{})
	if m.current != nil {
		t.Fatal("expected dismissal to clear the toast")
	}
}

func TestToastDismiss(t *testing.T) {
	m := NewToastModel()
	m.Show("bye", ToastInfo, time.Minute)
	m.Dismiss()
	if m.Visible() {
		t.Fatal("expected Dismiss to hide the toast")
	}
	if got := m.View(); got != "" {
		t.Fatalf("view = %q, want empty after dismiss", got)
	}
}
