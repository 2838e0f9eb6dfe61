// Package casetools provides string case-conversion utilities built around a
// shared word tokenizer.
//
// casetools splits an identifier or phrase into logical word tokens (handling
// explicit separators, camelCase/PascalCase boundaries, ALLCAPS acronyms, and
// embedded digits) and re-joins those tokens under a target casing convention.
//
// # Overview
//
// The library consists of three packages:
//
//   - tokenizer: Split strings into ordered word tokens
//   - caseconv: Convert strings between casing conventions (camelCase, dot.case, kebab-case)
//   - caseerrors: Structured error types for programmatic error handling
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to camelCase:
//
//	import "github.com/erraggy/casetools/caseconv"
//
//	out, err := caseconv.ToCamelCase("XMLHttpRequest")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // xmlHttpRequest
//
// Tokenize a string:
//
//	import "github.com/erraggy/casetools/tokenizer"
//
//	tokens := tokenizer.Tokenize("SCREEN_NAME")
//	fmt.Println(tokens) // [SCREEN NAME]
//
// # Demo Services
//
// The repository also ships two small demo services under cmd/ (taskchi and
// taskmux) that expose the same in-memory task list over HTTP in two different
// server stacks, a CLI (cmd/casetools), and an MCP server exposing the
// converters as tools.
package casetools
