package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings stores user-facing preferences.
type Settings struct {
	// ScrollSpeed is the base auto-scroll speed in rows per second.
	ScrollSpeed float64
	// EdgeZone is the number of rows from a viewport edge that
	// trigger auto-scroll while dragging.
	EdgeZone int
	// ShowKeymapHints controls the help footer.
	ShowKeymapHints bool
	// Theme is the color theme ID.
	Theme string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		ScrollSpeed:     20,
		EdgeZone:        2,
		ShowKeymapHints: true,
		Theme:           "tokyonight",
	}
}

// LoadSettings reads settings from path, falling back to defaults for
// missing or malformed fields. A missing file yields the defaults.
func LoadSettings(path string) Settings {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw struct {
		Scroll struct {
			Speed    *float64 `json:"speed"`
			EdgeZone *int     `json:"edge_zone"`
		} `json:"scroll"`
		UI struct {
			ShowKeymapHints *bool   `json:"show_keymap_hints"`
			Theme           *string `json:"theme"`
		} `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	if raw.Scroll.Speed != nil && *raw.Scroll.Speed > 0 {
		settings.ScrollSpeed = *raw.Scroll.Speed
	}
	if raw.Scroll.EdgeZone != nil && *raw.Scroll.EdgeZone > 0 {
		settings.EdgeZone = *raw.Scroll.EdgeZone
	}
	if raw.UI.ShowKeymapHints != nil {
		settings.ShowKeymapHints = *raw.UI.ShowKeymapHints
	}
	if raw.UI.Theme != nil {
		settings.Theme = *raw.UI.Theme
	}
	return settings
}

// SaveSettings persists settings to path, preserving unknown keys
// already present in the file.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}

	scroll, ok := payload["scroll"].(map[string]any)
	if !ok || scroll == nil {
		scroll = map[string]any{}
	}
	scroll["speed"] = settings.ScrollSpeed
	scroll["edge_zone"] = settings.EdgeZone
	payload["scroll"] = scroll

	ui, ok := payload["ui"].(map[string]any)
	if !ok || ui == nil {
		ui = map[string]any{}
	}
	ui["show_keymap_hints"] = settings.ShowKeymapHints
	ui["theme"] = settings.Theme
	payload["ui"] = ui

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
