// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"go.astrophena.name/includedocs"
	"go.astrophena.name/includedocs/internal/atomicio"
	"go.astrophena.name/includedocs/internal/cli"
	"go.astrophena.name/includedocs/internal/logger"
	"go.astrophena.name/includedocs/internal/manifest"
	"go.astrophena.name/includedocs/internal/render"
	"go.astrophena.name/includedocs/internal/restrict"

	"github.com/landlock-lsm/go-landlock/landlock"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir      string
	output   string
	format   string
	pkg      string
	manifest string
	watch    bool

	// for tests
	debounce time.Duration
	onWatch  func()
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "dir", "", "Resolve input files against `dir` instead of the directory of $GOFILE.")
	fs.StringVar(&a.output, "o", "", "Write the result to `file` instead of stdout.")
	fs.StringVar(&a.format, "format", "", "Output `format`: raw or go.")
	fs.StringVar(&a.pkg, "package", "", "Package `name` for the go format. Defaults to $GOPACKAGE.")
	fs.StringVar(&a.manifest, "manifest", "", "Generate every target of the Starlark manifest `file`.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate when inputs change, until interrupted.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	a.dir = cmp.Or(a.dir, env.Getenv("INCLUDEDOCS_DIR"), filepath.Dir(env.Getenv("GOFILE")))
	a.output = cmp.Or(a.output, env.Getenv("INCLUDEDOCS_OUTPUT"))
	a.format = cmp.Or(a.format, env.Getenv("INCLUDEDOCS_FORMAT"))
	a.pkg = cmp.Or(a.pkg, env.Getenv("INCLUDEDOCS_PACKAGE"), env.Getenv("GOPACKAGE"))
	a.manifest = cmp.Or(a.manifest, env.Getenv("INCLUDEDOCS_MANIFEST"))

	if err := a.validate(env.Args); err != nil {
		return err
	}

	p, err := a.plan(env.Args, env.Logf)
	if err != nil {
		return err
	}

	// Drop privileges if not inside tests.
	restrict.DoUnlessTesting(ctx,
		landlock.RODirs(restrict.Dirs(p.inputs...)...),
		landlock.RWDirs(restrict.Dirs(p.outputs()...)...),
	)

	if !a.watch {
		return p.run(env, logger.Discard)
	}
	if err := p.run(env, env.Logf); err != nil {
		env.Logf("%v", err)
	}
	return a.watchInputs(ctx, env, p.inputs)
}

func (a *app) validate(files []string) error {
	switch {
	case a.manifest != "" && len(files) > 0:
		return fmt.Errorf("%w: files and -manifest are mutually exclusive", cli.ErrInvalidArgs)
	case a.manifest != "" && (a.output != "" || a.format != ""):
		return fmt.Errorf("%w: -o and -format are set by the manifest", cli.ErrInvalidArgs)
	case a.manifest != "":
		return nil
	case len(files) == 0:
		return fmt.Errorf("%w: at least one file is required", cli.ErrInvalidArgs)
	}

	format, err := render.ParseFormat(a.format)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	if format == render.Go && a.pkg == "" {
		return fmt.Errorf("%w: -package or $GOPACKAGE is required for the go format", cli.ErrInvalidArgs)
	}
	if a.watch && a.output == "" {
		return fmt.Errorf("%w: -watch requires -o or -manifest", cli.ErrInvalidArgs)
	}
	return nil
}

// plan describes one generation pass.
type plan struct {
	jobs   []job
	inputs []string
}

// job generates one output. An empty output means stdout.
type job struct {
	output   string
	generate func() ([]byte, error)
}

func (p *plan) outputs() []string {
	var outs []string
	for _, j := range p.jobs {
		if j.output != "" {
			outs = append(outs, j.output)
		}
	}
	return outs
}

func (a *app) plan(files []string, logf logger.Logf) (*plan, error) {
	if a.manifest != "" {
		m, err := manifest.Load(includedocs.Resolve(a.dir, a.manifest), logf)
		if err != nil {
			return nil, err
		}
		p := &plan{inputs: m.Inputs}
		for _, t := range m.Targets {
			p.jobs = append(p.jobs, job{output: t.Output, generate: t.Generate})
		}
		return p, nil
	}

	format, err := render.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	p := &plan{
		jobs: []job{{
			output: a.output,
			generate: func() ([]byte, error) {
				text, err := includedocs.Include(a.dir, files...)
				if err != nil {
					return nil, err
				}
				return render.Render(format, a.pkg, text)
			},
		}},
	}
	for _, f := range files {
		p.inputs = append(p.inputs, includedocs.Resolve(a.dir, f))
	}
	return p, nil
}

// run generates every output of p. Written files are reported to logf.
func (p *plan) run(env *cli.Env, logf logger.Logf) error {
	for _, j := range p.jobs {
		out, err := j.generate()
		if err != nil {
			return err
		}
		if j.output == "" {
			if _, err := env.Stdout.Write(out); err != nil {
				return err
			}
			continue
		}
		changed, err := atomicio.WriteFile(j.output, out, 0o644)
		if err != nil {
			return err
		}
		if changed {
			logf("Wrote %s.", j.output)
		}
	}
	return nil
}
