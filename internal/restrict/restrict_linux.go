// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build linux && !android

package restrict

import (
	"context"

	"go.astrophena.name/includedocs/internal/cli"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// Do restricts all goroutines of this program to [landlock.Rule]s.
func Do(ctx context.Context, rules ...landlock.Rule) {
	if err := landlock.V3.BestEffort().Restrict(rules...); err != nil {
		cli.GetEnv(ctx).Logf("Sandboxing failed: %v", err)
	}
}
