package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the preferences file name inside the data directory.
const FileName = "preferences.json"

// FilePersister stores preferences as JSON on disk.
type FilePersister struct {
	path string
}

// NewFilePersister returns a persister for <dir>/preferences.json.
func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{path: filepath.Join(dir, FileName)}
}

// Path returns the file location.
func (p *FilePersister) Path() string {
	return p.path
}

// Load reads the preferences file. A missing file yields Defaults().
func (p *FilePersister) Load() (Preferences, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Preferences{}, err
	}

	prefs := Defaults()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// Save writes the preferences file, creating the directory if needed.
func (p *FilePersister) Save(prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(p.path, data, 0644)
}
