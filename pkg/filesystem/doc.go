// Package filesystem provides filesystem implementations for colormap.
//
// This package contains implementations of the FS interface,
// including the standard OS filesystem and afero-backed test filesystems.
package filesystem
