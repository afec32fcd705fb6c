// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package docs provides a Starlark module for extracting documentation from
// source files.
package docs

import (
	"fmt"

	"go.astrophena.name/includedocs"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Module returns a Starlark module that exposes documentation extraction.
//
// Relative paths given to docs.include are resolved against dir. If visit is
// not nil, it is called with every path docs.include reads.
func Module(dir string, visit func(path string)) *starlarkstruct.Module {
	m := &module{dir: dir, visit: visit}
	return &starlarkstruct.Module{
		Name: "docs",
		Members: starlark.StringDict{
			"extract": starlark.NewBuiltin("docs.extract", m.extract),
			"include": starlark.NewBuiltin("docs.include", m.include),
			"join":    starlark.NewBuiltin("docs.join", m.join),
		},
	}
}

type module struct {
	dir   string
	visit func(path string)
}

func (m *module) extract(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		src  string
		name string
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src, "name?", &name); err != nil {
		return nil, err
	}
	doc, err := includedocs.ExtractNamed(name, []byte(src))
	if err != nil {
		return nil, err
	}
	return starlark.String(doc), nil
}

func (m *module) include(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	paths, err := stringArgs(b.Name(), args)
	if err != nil {
		return nil, err
	}
	for i, p := range paths {
		paths[i] = includedocs.Resolve(m.dir, p)
		if m.visit != nil {
			m.visit(paths[i])
		}
	}
	doc, err := includedocs.Include("", paths...)
	if err != nil {
		return nil, err
	}
	return starlark.String(doc), nil
}

func (m *module) join(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	blocks, err := stringArgs(b.Name(), args)
	if err != nil {
		return nil, err
	}
	return starlark.String(includedocs.Join(blocks...)), nil
}

func stringArgs(fn string, args starlark.Tuple) ([]string, error) {
	ss := make([]string, 0, len(args))
	for i, arg := range args {
		s, ok := starlark.AsString(arg)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d must be a string, got %s", fn, i+1, arg.Type())
		}
		ss = append(ss, s)
	}
	return ss, nil
}
