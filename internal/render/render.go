// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package render turns included documentation into output files.
package render

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Format is an output format.
type Format string

const (
	// Raw is the included documentation, unchanged.
	Raw Format = "raw"
	// Go is a Go source file holding the documentation as the package doc
	// comment, like a doc.go file.
	Go Format = "go"
)

// Header marks generated Go files.
const Header = "// Code generated by includedocs. DO NOT EDIT."

// ErrUnknownFormat is returned for a format other than [Raw] or [Go].
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses a format name. The empty string means [Raw].
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "", Raw:
		return Raw, nil
	case Go:
		return f, nil
	}
	return "", fmt.Errorf("%w %q, want %q or %q", ErrUnknownFormat, s, Raw, Go)
}

// Render returns text in the format f. For [Go], pkg is the package name.
func Render(f Format, pkg, text string) ([]byte, error) {
	switch f {
	case "", Raw:
		return []byte(text), nil
	case Go:
		return goFile(pkg, text)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

func goFile(pkg, text string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	var sb strings.Builder
	sb.WriteString(Header + "\n\n")
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimRight(line, " \t")
			switch {
			case line == "":
				sb.WriteString("//\n")
			case line[0] == '\t':
				sb.WriteString("//" + line + "\n")
			default:
				sb.WriteString("// " + line + "\n")
			}
		}
	}
	sb.WriteString("package " + pkg + "\n")
	return []byte(sb.String()), nil
}
