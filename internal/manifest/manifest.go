// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package manifest loads Starlark manifests that describe documentation files
// to generate.
//
// A manifest defines a list named targets:
//
//	targets = [
//	    target(
//	        output = "README.md",
//	        files = ["src/lib.rs", "src/fruit.rs"],
//	    ),
//	    target(
//	        output = "doc.go",
//	        text = docs.join("Package fruit.", docs.include("src/fruit.rs")),
//	        format = "go",
//	        package = "fruit",
//	    ),
//	]
//
// Relative paths are resolved against the directory of the manifest.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.astrophena.name/includedocs"
	"go.astrophena.name/includedocs/internal/logger"
	"go.astrophena.name/includedocs/internal/render"
	"go.astrophena.name/includedocs/internal/starlark/docs"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Manifest is a loaded manifest.
type Manifest struct {
	// Targets are the files to generate, in the order they were defined.
	Targets []*Target
	// Inputs are the sorted paths of every file the manifest depends on,
	// including the manifest itself.
	Inputs []string
}

// Target describes one generated file.
type Target struct {
	Output  string   // path of the generated file
	Files   []string // files whose doc prologues are joined
	Text    *string  // documentation to use instead of Files
	Format  render.Format
	Package string
}

func (t *Target) String() string        { return fmt.Sprintf("<target output=%q>", t.Output) }
func (t *Target) Type() string          { return "target" }
func (t *Target) Freeze()               {} // immutable
func (t *Target) Truth() starlark.Bool  { return starlark.True }
func (t *Target) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", t.Type()) }

// Generate returns the content of the target's output file.
func (t *Target) Generate() ([]byte, error) {
	text := ""
	if t.Text != nil {
		text = *t.Text
	} else {
		var err error
		if text, err = includedocs.Include("", t.Files...); err != nil {
			return nil, err
		}
	}
	return render.Render(t.Format, t.Package, text)
}

// Load runs the manifest in filename. Output of the Starlark print function
// goes to logf.
func Load(filename string, logf logger.Logf) (*Manifest, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(filename)

	inputs := []string{filename}
	visit := func(path string) { inputs = append(inputs, path) }

	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			TopLevelControl: true,
		},
		&starlark.Thread{
			Name:  filename,
			Print: func(_ *starlark.Thread, msg string) { logf("%s", msg) },
		},
		filename,
		src,
		starlark.StringDict{
			"docs":   docs.Module(dir, visit),
			"target": starlark.NewBuiltin("target", targetBuiltin(dir)),
		},
	)
	if err != nil {
		return nil, err
	}

	list, ok := globals["targets"].(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("%s: targets must be defined and be a list", filename)
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("%s: targets must not be empty", filename)
	}

	m := &Manifest{Targets: make([]*Target, 0, list.Len())}
	outputs := make(map[string]bool)
	for i := 0; i < list.Len(); i++ {
		t, ok := list.Index(i).(*Target)
		if !ok {
			return nil, fmt.Errorf("%s: targets[%d] must be a target, got %s", filename, i, list.Index(i).Type())
		}
		if outputs[t.Output] {
			return nil, fmt.Errorf("%s: output %s is generated by more than one target", filename, t.Output)
		}
		outputs[t.Output] = true
		inputs = append(inputs, t.Files...)
		m.Targets = append(m.Targets, t)
	}

	slices.Sort(inputs)
	m.Inputs = slices.Compact(inputs)
	return m, nil
}

func targetBuiltin(dir string) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) > 0 {
			return nil, fmt.Errorf("%s: unexpected positional arguments", b.Name())
		}
		var (
			output string
			files  *starlark.List
			text   starlark.Value = starlark.None
			format string
			pkg    string
		)
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"output", &output,
			"files?", &files,
			"text?", &text,
			"format?", &format,
			"package?", &pkg,
		); err != nil {
			return nil, err
		}
		if output == "" {
			return nil, fmt.Errorf("%s: output must not be empty", b.Name())
		}

		t := &Target{Output: includedocs.Resolve(dir, output), Package: pkg}

		var err error
		if t.Format, err = render.ParseFormat(format); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		if t.Format == render.Go && pkg == "" {
			return nil, fmt.Errorf("%s: package is required for format %q", b.Name(), render.Go)
		}

		if files != nil {
			for i := 0; i < files.Len(); i++ {
				f, ok := starlark.AsString(files.Index(i))
				if !ok {
					return nil, fmt.Errorf("%s: files[%d] must be a string, got %s", b.Name(), i, files.Index(i).Type())
				}
				t.Files = append(t.Files, includedocs.Resolve(dir, f))
			}
		}
		if text != starlark.None {
			s, ok := starlark.AsString(text)
			if !ok {
				return nil, fmt.Errorf("%s: text must be a string, got %s", b.Name(), text.Type())
			}
			t.Text = &s
		}

		switch {
		case len(t.Files) == 0 && t.Text == nil:
			return nil, fmt.Errorf("%s: one of files or text is required", b.Name())
		case len(t.Files) > 0 && t.Text != nil:
			return nil, fmt.Errorf("%s: only one of files or text may be set", b.Name())
		}
		return t, nil
	}
}
