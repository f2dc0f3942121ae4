// Package ioutils provides file system utilities for xspf-to-m3u.
//
// This package contains functions for:
//   - Atomic-enough playlist writing (whole content in one call)
//   - Directory creation
//
// # File Operations
//
//	// Write rendered playlist content
//	err := ioutils.WriteFile(ctx, "/path/to/out.m3u", []byte(content))
//
//	// Ensure an output directory exists
//	err := ioutils.EnsureDir("/path/to/outdir")
package ioutils
