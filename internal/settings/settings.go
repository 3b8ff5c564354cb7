// Package settings persists user preferences across workbench
// sessions. It is a thin key/value layer over a viper-managed TOML
// file; the workbench receives it as an injected interface and never
// touches viper directly.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// File is a disk-backed preference store. Reads are served from the
// loaded viper instance; every Set writes straight through.
type File struct {
	v    *viper.Viper
	path string
}

// Open loads (or creates on first write) the preferences file at path.
// An empty path defaults to settings.toml under the user config dir.
func Open(path string) (*File, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("user config dir: %w", err)
		}
		path = filepath.Join(dir, "tracebench", "settings.toml")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	// A missing file is not an error; it appears on first Set.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	return &File{v: v, path: path}, nil
}

// Get returns the stored value for key, or fallback when unset.
func (f *File) Get(key, fallback string) string {
	if !f.v.IsSet(key) {
		return fallback
	}
	return f.v.GetString(key)
}

// Set stores the value and writes the file. Write failures are
// swallowed: losing a preference must never break the session.
func (f *File) Set(key, value string) {
	f.v.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}
	_ = f.v.WriteConfigAs(f.path)
}
