package dotdir

import (
	"path/filepath"
)

// Data file names inside the .recruit/ directory, per storage driver.
const (
	JSONDataFile   = "persons.json"
	SQLiteDataFile = "persons.db"
)

// DataPath returns the path of fileName inside the target .recruit/ directory.
// If overrideDir is non-empty, it is used instead of the default location.
func (m *Manager) DataPath(overrideDir, fileName string) (string, error) {
	dir, err := m.Target(overrideDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// DefaultDataFile returns the data file name used by driver, or "" when the
// driver does not keep a file.
func DefaultDataFile(driver string) string {
	switch driver {
	case "", "json":
		return JSONDataFile
	case "sqlite":
		return SQLiteDataFile
	default:
		return ""
	}
}
