package config

import (
	"os"
	"path/filepath"
)

// Paths holds the file system paths used by the application
type Paths struct {
	Home       string // ~/.reorderable
	ConfigPath string // ~/.reorderable/config.json
	LogsRoot   string // ~/.reorderable/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	appHome := filepath.Join(home, ".reorderable")

	return &Paths{
		Home:       appHome,
		ConfigPath: filepath.Join(appHome, "config.json"),
		LogsRoot:   filepath.Join(appHome, "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogsRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
