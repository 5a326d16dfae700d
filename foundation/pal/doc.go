// File: doc.go
// Title: Package pal documentation
// Description: Package pal is the entry point to the PAL front end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package pal is the entry point to the PAL front end. It ties the lexer,
parser, semantic checker and diagnostic collector together behind a small
Engine API.

An Engine is safe for concurrent use; every check builds its own scope and
collector:

	engine := pal.New(pal.Options{Logger: logger})
	result, err := engine.CheckFile("sample.pal")
	if err != nil {
		// the source could not be opened, read or closed
	}
	for _, d := range result.Diagnostics {
		fmt.Println(d)
	}

Diagnostics are data. Errors returned by the Engine only describe problems
accessing the source and carry one of the SOURCE_* error codes.
*/
package pal
