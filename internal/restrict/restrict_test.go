// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package restrict

import (
	"path/filepath"
	"testing"

	"go.astrophena.name/includedocs/internal/testutil"
)

func TestDirs(t *testing.T) {
	// Directories that do not exist are kept as is.
	base := filepath.Join(t.TempDir(), "missing")
	got := Dirs(
		filepath.Join(base, "b", "x.rs"),
		filepath.Join(base, "a", "y.rs"),
		filepath.Join(base, "b", "z.rs"),
	)
	testutil.AssertEqual(t, got, []string{filepath.Join(base, "a"), filepath.Join(base, "b")})
}
