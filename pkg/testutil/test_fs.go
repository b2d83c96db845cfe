package testutil

import (
	"github.com/arthur-debert/colormap/pkg/filesystem"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyTestFS wraps base so every write fails, for exercising export errors.
func NewReadOnlyTestFS(base afero.Fs) filesystem.FS {
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
}
