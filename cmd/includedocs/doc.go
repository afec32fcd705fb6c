// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Includedocs joins the module-level documentation of source files.

For every file, it reads the documentation at the very top of the file:
a run of //! line comments, /*! block comments or #![doc = "..."]
attributes, ending at the first line of code. The results are joined with a
blank line between consecutive files, in the order given.

# Usage

	$ includedocs [flags...] <file>...
	$ includedocs -manifest includedocs.star

Files are resolved against -dir, which defaults to the directory of the file
that contains the go:generate directive:

	//go:generate includedocs -o README.md src/lib.rs src/fruit.rs
	//go:generate includedocs -o doc.go -format go src/lib.rs

With -format go, the result is written as the package doc comment of a Go
file. The package name is taken from -package or $GOPACKAGE.

A Starlark manifest describes several outputs at once:

	targets = [
	    target(output = "README.md", files = ["src/lib.rs"]),
	    target(
	        output = "doc.go",
	        text = docs.join("Package fruit.", docs.include("src/fruit.rs")),
	        format = "go",
	        package = "fruit",
	    ),
	]

With -watch, outputs are regenerated whenever an input changes.

# Environment

Flags that are not set on the command line are read from INCLUDEDOCS_DIR,
INCLUDEDOCS_OUTPUT, INCLUDEDOCS_FORMAT, INCLUDEDOCS_PACKAGE and
INCLUDEDOCS_MANIFEST.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/includedocs/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
