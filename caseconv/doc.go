// Package caseconv converts strings between casing conventions.
//
// Import path: github.com/erraggy/casetools/caseconv
//
// The converters share the word tokenizer from the tokenizer package and
// differ only in how tokens are re-joined:
//
//   - [ToCamelCase]: lowerCamelCase ("first name" -> "firstName")
//   - [ToDotCase]: dot.case ("XMLHttpRequest" -> "xml.http.request")
//   - [ToKebabCase]: kebab-case over whitespace-delimited words ("Hello   World" -> "hello-world")
//
// [Convert] selects the target convention through the [Variant] enum, and
// [Format] renders input through a text/template with case-conversion helper
// functions for custom output shapes.
//
// All converters take their input as any because callers commonly feed values
// decoded from JSON. A non-string input (including nil) fails with an error
// matching [github.com/erraggy/casetools/caseerrors.ErrInvalidInput] before
// any processing occurs; over string inputs the converters are total
// functions with no other failure mode. Conversions are pure and safe for
// concurrent use.
package caseconv
