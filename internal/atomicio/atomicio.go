// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio provides atomic file writing.
package atomicio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile writes data to a file atomically, so readers see either the old
// or the new content. If the file already holds data, it is left untouched
// and changed is false.
func WriteFile(name string, data []byte, perm fs.FileMode) (changed bool, err error) {
	old, err := os.ReadFile(name)
	switch {
	case err == nil && bytes.Equal(old, data):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, err
	}

	// Create a temporary file in the same directory to ensure that it's on the
	// same filesystem, which is a requirement for an atomic os.Rename.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return false, err
	}
	defer func() {
		// Clean up the temporary file if something goes wrong.
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return false, err
	}
	if err := f.Chmod(perm); err != nil {
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}

	if err := os.Rename(f.Name(), name); err != nil {
		return false, err
	}
	return true, nil
}
