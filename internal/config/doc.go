// Package config provides configuration management for xspf-to-m3u.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the resolver and format options other packages use
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Strips paths after a "Music" folder
//	// Extended M3U output
//	// Up to 4 concurrent conversions
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.StripAfter = []string{"Music", "Library"}
//	err := settings.Save("/path/to/config.json")
package config
