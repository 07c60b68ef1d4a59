package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and overlays it onto Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays a YAML document onto Default. Keys that are absent keep
// their default values; palette entries are merged per piece.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	palette := cfg.Palette
	cfg.Palette = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	merged := maps.Clone(palette)
	maps.Copy(merged, cfg.Palette)
	cfg.Palette = merged

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
