package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/blockfeed/xspf-to-m3u/internal/anchor"
	"github.com/blockfeed/xspf-to-m3u/internal/m3u"
)

// Settings holds all configuration options.
type Settings struct {
	// Anchoring
	StripAfter []string `json:"strip_after"`

	// Output settings
	ExtendedM3U bool   `json:"extended_m3u"`
	GonicBase   string `json:"gonic_base"`

	// Batch settings
	MaxConcurrentConversions int `json:"max_concurrent_conversions"`

	// Network settings, used when the input is an http(s) URL
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		StripAfter:               []string{"Music"},
		ExtendedM3U:              true,
		GonicBase:                "",
		MaxConcurrentConversions: 4,
		HTTPTimeoutSeconds:       60,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool
// works without any configuration. Fields absent from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToResolver builds the anchor resolver these settings describe.
func (s *Settings) ToResolver() *anchor.Resolver {
	return anchor.NewResolver(s.StripAfter)
}

// ToFormatOptions converts settings to m3u.Options. The single
// extended_m3u setting drives both the #EXTM3U header and the
// per-track #EXTINF lines.
func (s *Settings) ToFormatOptions() m3u.Options {
	return m3u.Options{
		IncludeExtendedHeader: s.ExtendedM3U,
		IncludeExtendedInfo:   s.ExtendedM3U,
		GonicBase:             s.GonicBase,
	}
}
