// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package includedocs extracts module documentation written at the top of
// source files and combines the documentation of several files into one
// string.
//
// It lets documentation be written once, inside a submodule file, and be reused
// as the summary documentation of the parent module that declares the
// submodule.
//
// # Doc prologues
//
// The doc prologue of a file is the leading run of module doc regions. Three
// forms are understood, and a prologue uses only one of them; a region of a
// different form ends it:
//
//	//! Line comments, with one optional space after the marker
//	//! stripped.
//
//	/*! Block comments. A leading " * " on continuation lines
//	 * is stripped.
//	 */
//
//	#![doc = "Doc attributes with a string literal.\n\nEscapes are decoded."]
//	#![doc = r#"Raw string literals are taken "as is"."#]
//
// Blank lines before the prologue are skipped, and trailing blank lines of the
// prologue are dropped. Every marker must start at column zero.
//
// # Combining files
//
// [Include] extracts the prologue of each file, in the order given, and joins
// them with exactly one blank line between consecutive files:
//
//	s, err := includedocs.Include("src/fruit", "apple.rs", "orange.rs")
package includedocs
