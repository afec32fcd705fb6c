// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/includedocs/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("new file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "doc.go")

		changed, err := WriteFile(file, []byte("hello"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, changed, true)
		assertContent(t, file, "hello")
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "doc.go")

		for _, data := range []string{"hello", "world"} {
			changed, err := WriteFile(file, []byte(data), 0o644)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, changed, true)
		}
		assertContent(t, file, "world")

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(entries), 1)
	})

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "doc.go")
		if err := os.WriteFile(file, []byte("same"), 0o600); err != nil {
			t.Fatal(err)
		}
		before, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}

		changed, err := WriteFile(file, []byte("same"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, changed, false)

		after, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, after.Mode(), before.Mode())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "missing", "doc.go")
		if _, err := WriteFile(file, []byte("x"), 0o644); err == nil {
			t.Fatal("want error")
		}
	})
}

func assertContent(t *testing.T, file, want string) {
	t.Helper()
	got, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), want)
}
