// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package lex

import "strings"

// decodeLine decodes the text following a //! marker.
func decodeLine(rest string) string {
	return strings.TrimPrefix(rest, " ")
}

// decodeBlock decodes the text between /*! and the matching */.
func decodeBlock(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	first := strings.TrimPrefix(lines[0], " ")
	if len(lines) == 1 {
		first = strings.TrimSuffix(first, " ")
		if isBlank(first) {
			return nil
		}
		return []string{first}
	}

	var out []string
	if !isBlank(first) {
		out = append(out, first)
	}
	for _, line := range lines[1 : len(lines)-1] {
		out = append(out, stripContinuation(line))
	}
	if last := lines[len(lines)-1]; !isBlank(last) {
		out = append(out, stripContinuation(strings.TrimSuffix(last, " ")))
	}
	return out
}

// stripContinuation removes a leading " * " decoration from a line inside a
// block comment. A line starting with "**" is left alone. Lines that are
// blank after stripping become empty.
func stripContinuation(line string) string {
	t := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(t, "*") && !strings.HasPrefix(t, "**") {
		line = strings.TrimPrefix(t[1:], " ")
	}
	if isBlank(line) {
		return ""
	}
	return line
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// decodeAttribute splits a decoded doc attribute value into text lines.
func decodeAttribute(value string) []string {
	return strings.Split(value, "\n")
}
