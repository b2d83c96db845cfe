// Package testutil provides utilities for testing colormap components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem for loader and writer tests
//   - Record/ColorTable: builders for tab-delimited color definition files
//   - CreateFile/ReadFile: real filesystem helpers for CLI tests
//
// Tests should prefer the in-memory filesystem and define their input inline.
package testutil
