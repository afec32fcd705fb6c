// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package lex

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// literalError is a problem found while decoding a string literal. off is
// relative to the start of the literal.
type literalError struct {
	off int
	msg string
}

func (e *literalError) Error() string { return e.msg }

// isLiteralStart reports whether s begins with a string literal token: a
// plain "..." literal or a raw r"...", r#"..."#, ... literal.
func isLiteralStart(s string) bool {
	if strings.HasPrefix(s, `"`) {
		return true
	}
	if !strings.HasPrefix(s, "r") {
		return false
	}
	rest := strings.TrimLeft(s[1:], "#")
	return strings.HasPrefix(rest, `"`)
}

// Unquote decodes the string literal at the start of s and reports how many
// bytes of s it occupies. The literal may span several lines.
func Unquote(s string) (value string, n int, err error) {
	if strings.HasPrefix(s, "r") {
		return unquoteRaw(s)
	}
	if !strings.HasPrefix(s, `"`) {
		return "", 0, &literalError{0, "expected string literal"}
	}
	return unquotePlain(s)
}

func unquotePlain(s string) (string, int, error) {
	var sb strings.Builder
	i := 1
	for {
		if i >= len(s) {
			return "", 0, &literalError{0, "unterminated string literal"}
		}
		switch c := s[i]; c {
		case '"':
			return sb.String(), i + 1, nil
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				sb.WriteByte('\n')
				i += 2
				continue
			}
			return "", 0, &literalError{i, "bare carriage return in string literal"}
		case '\\':
			n, err := unescape(&sb, s, i)
			if err != nil {
				return "", 0, err
			}
			i += n
		default:
			sb.WriteByte(c)
			i++
		}
	}
}

// unescape decodes the escape sequence starting at s[i] (a backslash) into
// sb and returns its length.
func unescape(sb *strings.Builder, s string, i int) (int, error) {
	if i+1 >= len(s) {
		return 0, &literalError{0, "unterminated string literal"}
	}
	switch e := s[i+1]; e {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case '0':
		sb.WriteByte(0)
	case '\\', '\'', '"':
		sb.WriteByte(e)
	case 'x':
		if i+4 > len(s) {
			return 0, &literalError{i, `incomplete \x escape`}
		}
		v, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
		if err != nil {
			return 0, &literalError{i, `invalid \x escape`}
		}
		if v > 0x7f {
			return 0, &literalError{i, `out of range \x escape`}
		}
		sb.WriteByte(byte(v))
		return 4, nil
	case 'u':
		return unescapeUnicode(sb, s, i)
	case '\n', '\r':
		// Line continuation: skip the newline and the indentation that
		// follows it.
		j := i + 1
		for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
			j++
		}
		return j - i, nil
	default:
		return 0, &literalError{i, "unknown character escape " + strconv.QuoteRune(rune(e))}
	}
	return 2, nil
}

func unescapeUnicode(sb *strings.Builder, s string, i int) (int, error) {
	j := i + 2
	if j >= len(s) || s[j] != '{' {
		return 0, &literalError{i, `incorrect \u escape, expected '{'`}
	}
	j++
	var (
		v      rune
		digits int
	)
	for ; j < len(s) && s[j] != '}'; j++ {
		c := s[j]
		if c == '_' && digits > 0 {
			continue
		}
		d, ok := hexDigit(c)
		if !ok {
			return 0, &literalError{i, `invalid character in \u escape`}
		}
		digits++
		if digits > 6 {
			return 0, &literalError{i, `overlong \u escape`}
		}
		v = v<<4 | rune(d)
	}
	if j >= len(s) {
		return 0, &literalError{i, `unterminated \u escape`}
	}
	if digits == 0 {
		return 0, &literalError{i, `empty \u escape`}
	}
	if !utf8.ValidRune(v) {
		return 0, &literalError{i, `invalid unicode character in \u escape`}
	}
	sb.WriteRune(v)
	return j + 1 - i, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func unquoteRaw(s string) (string, int, error) {
	hashes := 0
	for 1+hashes < len(s) && s[1+hashes] == '#' {
		hashes++
	}
	start := 1 + hashes
	if start >= len(s) || s[start] != '"' {
		return "", 0, &literalError{0, "expected string literal"}
	}
	start++
	closing := `"` + strings.Repeat("#", hashes)
	end := strings.Index(s[start:], closing)
	if end < 0 {
		return "", 0, &literalError{0, "unterminated raw string literal, expected closing " + strconv.Quote(closing)}
	}
	content := s[start : start+end]
	return strings.ReplaceAll(content, "\r\n", "\n"), start + end + len(closing), nil
}
