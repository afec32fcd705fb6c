// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package extract reads the doc prologue of a source file: the leading run
// of module doc regions written in a single form.
package extract

import (
	"strings"

	"go.astrophena.name/includedocs/internal/moddoc/lex"
	"go.astrophena.name/includedocs/internal/moddoc/token"
)

// Block is the decoded text of a prologue, one element per line. It never
// ends with an empty line.
type Block []string

// String returns the lines of b joined by newlines.
func (b Block) String() string { return strings.Join(b, "\n") }

// Extract returns the decoded doc prologue of src. name is used in error
// positions.
//
// Blank lines before the first doc region are skipped. The prologue ends at
// end of input, at the first line that is not a doc region, at the first
// region written in a form other than the first one, or after a region that
// is followed by code on its last line. Nothing past that point is read.
func Extract(name string, src []byte) (Block, error) {
	var (
		l      = lex.New(name, src)
		active = token.None
		b      Block
	)

scan:
	for {
		if f := l.Peek(); active != token.None && f.IsDoc() && f != active {
			break
		}
		r, err := l.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case r.Form == token.Blank:
			if active != token.None {
				b = append(b, "")
			}
		case r.Form.IsDoc():
			active = r.Form
			b = append(b, r.Lines...)
			if r.Trailing {
				break scan
			}
		default:
			break scan
		}
	}

	for len(b) > 0 && strings.TrimSpace(b[len(b)-1]) == "" {
		b = b[:len(b)-1]
	}
	return b, nil
}
