// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package lex recognizes module doc regions at the start of a source file and
// decodes them into plain text lines.
//
// Three forms are recognized, each only at column zero of a physical line:
//
//	//! line comment
//
//	/*! block comment,
//	 * possibly spanning several lines */
//
//	#![doc = "attribute with a string literal"]
//	#![doc = r#"or a raw string literal"#]
package lex

import (
	"errors"
	"fmt"
	"strings"

	"go.astrophena.name/includedocs/internal/moddoc/token"
)

const (
	lineMarker = "//!"
	blockOpen  = "/*!"
	blockClose = "*/"
	attrMark   = "#!"
	attrName   = "doc"
	bom        = "\ufeff"
)

// MalformedError is returned when a doc region is started but cannot be
// completed: an unclosed block comment or a bad doc attribute.
type MalformedError struct {
	Pos token.Pos
	Msg string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Lexer splits source text into doc regions.
type Lexer struct {
	name string
	src  string
	pos  int // start of the next unconsumed physical line
}

// New returns a new Lexer for src. name is used in positions.
//
// A leading byte order mark and a shebang line are skipped.
func New(name string, src []byte) *Lexer {
	l := &Lexer{name: name, src: string(src)}
	if strings.HasPrefix(l.src, bom) {
		l.pos = len(bom)
	}
	// "#!" starts a shebang unless it opens an inner attribute.
	if _, isAttr := l.attrBracket(l.pos); !isAttr && strings.HasPrefix(l.src[l.pos:], attrMark) {
		_, l.pos = l.line(l.pos)
	}
	return l
}

// line returns the physical line starting at off, without its terminator,
// and the offset of the next line.
func (l *Lexer) line(off int) (text string, next int) {
	i := strings.IndexByte(l.src[off:], '\n')
	if i < 0 {
		return strings.TrimSuffix(l.src[off:], "\r"), len(l.src)
	}
	return strings.TrimSuffix(l.src[off:off+i], "\r"), off + i + 1
}

// Peek classifies the next physical line by its prefix only, without
// decoding it or consuming any input. Any inner attribute ("#!" then '[') is
// reported as [token.AttributeString] even if [Lexer.Next] later finds it is
// not a doc attribute.
func (l *Lexer) Peek() token.Form {
	if l.pos >= len(l.src) {
		return token.EOF
	}
	text, _ := l.line(l.pos)
	switch {
	case isBlank(text):
		return token.Blank
	case strings.HasPrefix(text, lineMarker):
		return token.LineComment
	case strings.HasPrefix(text, blockOpen):
		return token.BlockComment
	case strings.HasPrefix(text, attrMark):
		if _, ok := l.attrBracket(l.pos); ok {
			return token.AttributeString
		}
	}
	return token.None
}

// Next recognizes and decodes the region starting at the next physical line.
// Regions of form [token.None] and [token.EOF] do not consume input.
func (l *Lexer) Next() (token.Region, error) {
	r := token.Region{Form: l.Peek(), Pos: l.position(l.pos)}
	switch r.Form {
	case token.EOF, token.None:
		return r, nil
	case token.Blank:
		_, l.pos = l.line(l.pos)
	case token.LineComment:
		var text string
		text, l.pos = l.line(l.pos)
		r.Lines = []string{decodeLine(text[len(lineMarker):])}
	case token.BlockComment:
		return l.block(r)
	case token.AttributeString:
		return l.attribute(r)
	}
	return r, nil
}

func (l *Lexer) block(r token.Region) (token.Region, error) {
	start := l.pos + len(blockOpen)
	end, err := l.blockEnd(start)
	if err != nil {
		return r, err
	}
	r.Lines = decodeBlock(l.src[start:end])
	r.Trailing = l.finishLine(end + len(blockClose))
	return r, nil
}

// blockEnd returns the offset of the */ closing the block comment whose body
// starts at off. Nested /* */ pairs are part of the body.
func (l *Lexer) blockEnd(off int) (int, error) {
	depth := 1
	for i := off; i+1 < len(l.src); {
		switch l.src[i : i+2] {
		case "/*":
			depth++
			i += 2
		case blockClose:
			depth--
			if depth == 0 {
				return i, nil
			}
			i += 2
		default:
			i++
		}
	}
	return 0, l.errorf(l.pos, "unterminated block comment")
}

func (l *Lexer) attribute(r token.Region) (token.Region, error) {
	start, _ := l.attrBracket(l.pos)
	lit, ok := l.attributeValue(start)
	if !ok {
		r.Form = token.None
		return r, nil
	}

	value, n, err := Unquote(l.src[lit:])
	if err != nil {
		var le *literalError
		if errors.As(err, &le) {
			return r, l.errorf(lit+le.off, "%s", le.msg)
		}
		return r, err
	}

	end := skipSpace(l.src, lit+n)
	switch {
	case end < len(l.src) && l.src[end] == ']':
	case end < len(l.src) && l.src[end] == '#' && l.src[lit] == 'r':
		return r, l.errorf(end, "raw string literal delimiter mismatch")
	default:
		return r, l.errorf(end, "expected ']' to close doc attribute")
	}

	r.Lines = decodeAttribute(value)
	r.Trailing = l.finishLine(end + 1)
	return r, nil
}

// attrBracket returns the offset just past the '[' of an inner attribute
// starting at off. Whitespace may separate "#!" from '['.
func (l *Lexer) attrBracket(off int) (int, bool) {
	if !strings.HasPrefix(l.src[off:], attrMark) {
		return 0, false
	}
	i := skipSpace(l.src, off+len(attrMark))
	if i >= len(l.src) || l.src[i] != '[' {
		return 0, false
	}
	return i + 1, true
}

// attributeValue matches `doc =` after the attribute opener at off and
// returns the offset of the string literal. ok is false when the attribute
// is something other than a doc attribute with a string literal value.
func (l *Lexer) attributeValue(off int) (lit int, ok bool) {
	i := skipSpace(l.src, off)
	if !strings.HasPrefix(l.src[i:], attrName) {
		return 0, false
	}
	i += len(attrName)
	if i < len(l.src) && isIdentByte(l.src[i]) {
		return 0, false
	}
	i = skipSpace(l.src, i)
	if i >= len(l.src) || l.src[i] != '=' {
		return 0, false
	}
	i = skipSpace(l.src, i+1)
	if !isLiteralStart(l.src[i:]) {
		return 0, false
	}
	return i, true
}

// finishLine consumes the rest of the physical line containing off and
// reports whether it holds anything but whitespace.
func (l *Lexer) finishLine(off int) bool {
	var rest string
	rest, l.pos = l.line(off)
	return !isBlank(rest)
}

func (l *Lexer) position(off int) token.Pos {
	before := l.src[:off]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return token.Pos{
		Filename: l.name,
		Offset:   off,
		Line:     strings.Count(before, "\n") + 1,
		Col:      off - lineStart + 1,
	}
}

func (l *Lexer) errorf(off int, format string, args ...any) error {
	return &MalformedError{Pos: l.position(off), Msg: fmt.Sprintf(format, args...)}
}

func skipSpace(s string, i int) int {
	for i < len(s) && strings.IndexByte(" \t\r\n", s[i]) >= 0 {
		i++
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
