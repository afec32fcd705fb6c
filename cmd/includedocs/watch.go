// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"path/filepath"
	"time"

	"go.astrophena.name/includedocs/internal/cli"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// watchInputs regenerates outputs whenever one of inputs changes, until ctx
// is canceled. Directories are watched instead of files, so inputs replaced
// by editors with a rename are still seen.
func (a *app) watchInputs(ctx context.Context, env *cli.Env, inputs []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool)
	setInputs := func(inputs []string) error {
		clear(watched)
		for _, in := range inputs {
			in = filepath.Clean(in)
			watched[in] = true
			if err := w.Add(filepath.Dir(in)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := setInputs(inputs); err != nil {
		return err
	}
	env.Logf("Watching %d files.", len(watched))
	if a.onWatch != nil {
		a.onWatch()
	}

	var (
		debounce = cmp.Or(a.debounce, defaultDebounce)
		fire     <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Editors often save in several steps; wait for them to settle.
			fire = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			env.Logf("Watch error: %v", err)
		case <-fire:
			fire = nil
			p, err := a.plan(env.Args, env.Logf)
			if err != nil {
				env.Logf("%v", err)
				continue
			}
			if err := p.run(env, env.Logf); err != nil {
				env.Logf("%v", err)
			}
			// A manifest may depend on other files now.
			if err := setInputs(p.inputs); err != nil {
				env.Logf("Watch error: %v", err)
			}
		}
	}
}
