// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"fmt"
	"testing"

	"go.astrophena.name/includedocs/internal/testutil"
)

func TestLogfWriter(t *testing.T) {
	t.Parallel()

	var messages []string
	logf := func(format string, args ...any) {
		messages = append(messages, fmt.Sprintf(format, args...))
	}
	fmt.Fprintf(Logf(logf), "regenerated %s\n", "doc.go")
	Logf(logf).Write([]byte("no newline"))
	testutil.AssertEqual(t, messages, []string{"regenerated doc.go", "no newline"})
}
