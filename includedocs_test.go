// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package includedocs

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"go.astrophena.name/includedocs/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

// TestIncludeFS runs each testdata/*.txtar archive through IncludeFS. The
// archive comment lists the files to include, in order.
func TestIncludeFS(t *testing.T) {
	testutil.RunGolden(t, "testdata/*.txtar", func(t *testing.T, match string) []byte {
		ar := testutil.ParseTxtar(t, match)
		fsys := fstest.MapFS{}
		for _, f := range ar.Files {
			fsys[f.Name] = &fstest.MapFile{Data: f.Data}
		}

		got, err := IncludeFS(fsys, strings.Fields(string(ar.Comment))...)
		if err != nil {
			return []byte("error: " + err.Error() + "\n")
		}
		return []byte(got + "\n")
	}, *update)
}

func TestInclude(t *testing.T) {
	dir := t.TempDir()
	testutil.ExtractTxtar(t, testutil.ParseTxtar(t, filepath.Join("testdata", "fruit.txtar")), dir)

	got, err := Include(dir, "fruit.rs", "apple.rs")
	if err != nil {
		t.Fatal(err)
	}
	want := "## Fruit functionality\n\nThis has a lot of interesting functionality.\n\n### Apple processing\n\nGreen or red, we don't care."
	testutil.AssertEqual(t, got, want)

	// Absolute paths are not joined with dir, and paths may leave it.
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err = Include(sub, "../apple.rs", filepath.Join(dir, "fruit.rs"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "### Apple processing\n\nGreen or red, we don't care.\n\n## Fruit functionality\n\nThis has a lot of interesting functionality.")
}

func TestIncludeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Include(dir); !errors.Is(err, ErrEmptyFileList) {
		t.Fatalf("Include with no files: want ErrEmptyFileList, got %v", err)
	}
	if _, err := IncludeFS(fstest.MapFS{}); !errors.Is(err, ErrEmptyFileList) {
		t.Fatalf("IncludeFS with no files: want ErrEmptyFileList, got %v", err)
	}

	_, err := Include(dir, "missing.rs")
	uerr := testutil.AssertErrorAs[*UnreadableFileError](t, err)
	testutil.AssertEqual(t, uerr.Path, filepath.Join(dir, "missing.rs"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want error wrapping fs.ErrNotExist, got %v", err)
	}

	// A directory is not a file.
	_, err = Include(filepath.Dir(dir), filepath.Base(dir))
	testutil.AssertErrorAs[*UnreadableFileError](t, err)

	if err := os.WriteFile(filepath.Join(dir, "broken.rs"), []byte("/*! never closed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Include(dir, "broken.rs")
	merr := testutil.AssertErrorAs[*MalformedRegionError](t, err)
	testutil.AssertEqual(t, merr.Pos.Filename, filepath.Join(dir, "broken.rs"))
	testutil.AssertEqual(t, merr.Pos.Line, 1)
}

func TestJoin(t *testing.T) {
	for k := 2; k <= 5; k++ {
		var (
			names []string
			parts []string
		)
		fsys := fstest.MapFS{}
		for i := range k {
			name := string(rune('a'+i)) + ".rs"
			line := "L" + string(rune('1'+i))
			fsys[name] = &fstest.MapFile{Data: []byte("//! " + line + "\n//!\n")}
			names = append(names, name)
			parts = append(parts, line)
		}
		got, err := IncludeFS(fsys, names...)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, got, strings.Join(parts, "\n\n"))
	}

	testutil.AssertEqual(t, Join("one"), "one")
	testutil.AssertEqual(t, Join("one", "", "two"), "one\n\ntwo")
	testutil.AssertEqual(t, Join("", "one"), "one")
	testutil.AssertEqual(t, Join("one", ""), "one")
	testutil.AssertEqual(t, Join("", ""), "")
}

func TestFilesWithoutDocsAreSkipped(t *testing.T) {
	fsys := fstest.MapFS{
		"a.rs":    {Data: []byte("//! A\n")},
		"b.rs":    {Data: []byte("//! B\n")},
		"none.rs": {Data: []byte("pub struct NoDocs;\n")},
	}
	cases := map[string]struct {
		files []string
		want  string
	}{
		"middle": {files: []string{"a.rs", "none.rs", "b.rs"}, want: "A\n\nB"},
		"first":  {files: []string{"none.rs", "b.rs"}, want: "B"},
		"last":   {files: []string{"a.rs", "none.rs"}, want: "A"},
		"all":    {files: []string{"none.rs", "none.rs"}, want: ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := IncludeFS(fsys, tc.files...)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestOrderIsPreserved(t *testing.T) {
	fsys := fstest.MapFS{
		"b.rs": {Data: []byte("//! B\n")},
		"a.rs": {Data: []byte("//! A\n")},
	}
	got, err := IncludeFS(fsys, "b.rs", "a.rs", "b.rs")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "B\n\nA\n\nB")
}

func TestExtractEscapes(t *testing.T) {
	got, err := Extract([]byte(`#![doc = "say \"hi\" to C:\\Users"]`))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, `say "hi" to C:\Users`)
}

func TestExtractNamed(t *testing.T) {
	_, err := ExtractNamed("src/lib.rs", []byte("//! ok\n\n/*! wrong form, not read\n"))
	if err != nil {
		t.Fatalf("content after the prologue must not be read: %v", err)
	}
	_, err = ExtractNamed("src/lib.rs", []byte("\n\n#![doc = \"x\\q\"]"))
	if err == nil || !strings.HasPrefix(err.Error(), "src/lib.rs:3:12: ") {
		t.Fatalf("want positioned error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "lib.rs")
	testutil.AssertEqual(t, Resolve("/ignored", abs), abs)
	testutil.AssertEqual(t, Resolve("src", "a/b.rs"), filepath.Join("src", "a", "b.rs"))
	testutil.AssertEqual(t, Resolve("src", "../lib.rs"), "lib.rs")
}
