// Package ioutils provides file system helpers shared by the settings file and
// playlist export.
//
// This package contains functions for:
//   - Writing files, creating parent directories as needed
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//
// # File Operations
//
//	// Write data to file, creating /path/to if missing
//	err := ioutils.WriteFile("/path/to/file.txt", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("AC/DC: 1980") // Returns "AC_DC_ 1980"
package ioutils
