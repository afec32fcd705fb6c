// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package includedocs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.astrophena.name/includedocs/internal/moddoc/extract"
	"go.astrophena.name/includedocs/internal/moddoc/lex"
)

// ErrEmptyFileList is returned when no files are given to include.
var ErrEmptyFileList = errors.New("includedocs: at least one file is required")

// MalformedRegionError is returned when a doc region at the start of a file is
// opened but not properly closed: an unterminated block comment, or a doc
// attribute whose string literal is unterminated, has a mismatched raw string
// delimiter, or contains an invalid escape.
type MalformedRegionError = lex.MalformedError

// UnreadableFileError is returned when a file cannot be read.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("includedocs: reading %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }

// Extract returns the decoded doc prologue of src.
func Extract(src []byte) (string, error) {
	return ExtractNamed("", src)
}

// ExtractNamed is like [Extract], but uses name to describe src in errors.
func ExtractNamed(name string, src []byte) (string, error) {
	b, err := extract.Extract(name, src)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Join joins the non-empty doc blocks with one blank line between
// consecutive blocks. Empty blocks are skipped.
func Join(blocks ...string) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(b)
	}
	return sb.String()
}

// Include reads the files named by paths, relative to dir unless absolute,
// and returns their doc prologues joined in the given order. Files without a
// doc prologue contribute nothing.
func Include(dir string, paths ...string) (string, error) {
	return include(func(p string) (string, []byte, error) {
		p = Resolve(dir, p)
		b, err := os.ReadFile(p)
		return p, b, err
	}, paths)
}

// Resolve returns the slash-separated path p relative to dir, or p itself if
// it is absolute.
func Resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, filepath.FromSlash(p))
}

// IncludeFS is like [Include], but reads files from fsys. Paths are
// slash-separated and relative to the root of fsys.
func IncludeFS(fsys fs.FS, paths ...string) (string, error) {
	return include(func(p string) (string, []byte, error) {
		p = path.Clean(p)
		b, err := fs.ReadFile(fsys, p)
		return p, b, err
	}, paths)
}

func include(read func(string) (string, []byte, error), paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrEmptyFileList
	}
	blocks := make([]string, 0, len(paths))
	for _, p := range paths {
		name, src, err := read(p)
		if err != nil {
			return "", &UnreadableFileError{Path: name, Err: err}
		}
		doc, err := ExtractNamed(name, src)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, doc)
	}
	return Join(blocks...), nil
}
