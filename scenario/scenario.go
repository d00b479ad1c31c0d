// Package scenario stores match layouts as TOML files.
package scenario

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/engine"
)

// Encode writes cfg as TOML
func Encode(cfg engine.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encode scenario")
	}
	return buf.Bytes(), nil
}

// Decode parses TOML into a layout; keys the layout does not know are an error
func Decode(data []byte) (engine.Config, error) {
	var cfg engine.Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return engine.Config{}, errors.Wrap(err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return engine.Config{}, errors.Errorf("decode scenario: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Save writes the match layout to path, replacing the file atomically
func Save(path string, m *engine.Match) error {
	data, err := Encode(m.Export())
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scenario-*")
	if err != nil {
		return errors.Wrap(err, "save scenario")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "save scenario")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "save scenario")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "save scenario")
}

// Load reads path and replaces the match layout; the match is untouched on error
func Load(path string, m *engine.Match) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "load scenario")
	}
	cfg, err := Decode(data)
	if err != nil {
		return err
	}
	return errors.Wrapf(m.Load(cfg), "load scenario %s", path)
}
