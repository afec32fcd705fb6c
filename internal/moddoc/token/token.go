// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package token defines the forms a module doc prologue can be written in and
// the regions the lexer produces for them.
package token

import "fmt"

// Form represents one of the concrete syntaxes of a module doc line.
type Form int

// Doc forms. EOF, None and Blank classify positions that are not doc
// regions.
const (
	EOF             Form = iota
	None                 // not a doc line, ends the prologue
	Blank                // blank physical line
	LineComment          // //! text
	BlockComment         // /*! text */
	AttributeString      // #![doc = "text"]
)

// IsDoc reports whether f is one of the doc forms.
func (f Form) IsDoc() bool {
	return f == LineComment || f == BlockComment || f == AttributeString
}

var formNames = [...]string{
	EOF:             "EOF",
	None:            "none",
	Blank:           "blank line",
	LineComment:     "line comment",
	BlockComment:    "block comment",
	AttributeString: "doc attribute",
}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// Pos is a position in a source file.
type Pos struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // starting at 1
	Col      int // starting at 1, byte count
}

func (p Pos) String() string {
	s := p.Filename
	if s == "" {
		s = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", s, p.Line, p.Col)
}

// Region is a recognized piece of the prologue.
type Region struct {
	Form Form
	Pos  Pos
	// Lines are the decoded text lines of the region. Empty for regions
	// that are not doc forms.
	Lines []string
	// Trailing reports that non-blank content follows the region on its
	// last physical line.
	Trailing bool
}
