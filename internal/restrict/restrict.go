// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package restrict

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// DoUnlessTesting applies the provided set of [landlock.Rule] to restrict all
// goroutines within the program, unless the program is running under 'go test'.
//
// If sandboxing fails, a log message will be generated, but the program will
// continue execution.
func DoUnlessTesting(ctx context.Context, rules ...landlock.Rule) {
	if !testing.Testing() {
		Do(ctx, rules...)
	}
}

// Dirs returns the sorted, deduplicated directories containing files.
func Dirs(files ...string) []string {
	dirs := make([]string, 0, len(files))
	for _, f := range files {
		dir := filepath.Dir(f)
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}
