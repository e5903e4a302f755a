package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/azrael8576/Reorderable/internal/list"
)

// loadItems reads one item per line from itemsPath. Blank lines are
// dropped. Without a path the app runs on a sample list.
func (a *App) loadItems() ([]list.Item, error) {
	if a.itemsPath == "" {
		return sampleItems(), nil
	}
	data, err := os.ReadFile(a.itemsPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.itemsPath, err)
	}
	var items []list.Item
	for _, line := range strings.Split(string(data), "\n") {
		title := strings.TrimRight(line, "\r")
		if strings.TrimSpace(title) == "" {
			continue
		}
		items = append(items, list.Item{
			ID:    fmt.Sprintf("line-%d", len(items)),
			Title: title,
		})
	}
	return items, nil
}

// saveItems writes the reordered lines back to itemsPath.
func (a *App) saveItems() error {
	if !a.dirty || a.itemsPath == "" {
		return nil
	}
	var b strings.Builder
	for _, item := range a.list.Items() {
		b.WriteString(item.Title)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(a.itemsPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.itemsPath, err)
	}
	a.dirty = false
	return nil
}

func sampleItems() []list.Item {
	titles := []string{
		"Inbox triage",
		"Review open pull requests",
		"Write release notes",
		"Fix flaky integration test",
		"Update onboarding doc",
		"Refactor settings loader",
		"Ship dark mode toggle",
		"Profile startup time",
		"Clean up feature flags",
		"Plan next sprint",
		"Audit error messages",
		"Upgrade dependencies",
		"Archive stale branches",
		"Answer support tickets",
		"Prepare demo script",
		"Back up local notes",
		"Rotate API credentials",
		"Tune log verbosity",
		"Document keyboard shortcuts",
		"Retry failed deploys",
	}
	items := make([]list.Item, len(titles))
	for i, title := range titles {
		items[i] = list.Item{ID: fmt.Sprintf("sample-%d", i), Title: title}
	}
	return items
}
