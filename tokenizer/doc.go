// Package tokenizer splits identifiers and phrases into ordered word tokens.
//
// Import path: github.com/erraggy/casetools/tokenizer
//
// A token is a maximal substring of ASCII letters and/or digits, produced
// either by splitting on separator runs (any non-alphanumeric characters) or,
// when the input contains no separators at all, by boundary-detection
// scanning that recognizes camelCase transitions, ALLCAPS acronyms, and digit
// runs:
//
//	tokenizer.Tokenize("user_profile")    // ["user", "profile"]
//	tokenizer.Tokenize("XMLHttpRequest")  // ["XML", "Http", "Request"]
//	tokenizer.Tokenize("item42Count")     // ["item", "42", "Count"]
//
// Tokenization is ASCII-only: anything outside A-Z, a-z, and 0-9 (including
// multi-byte Unicode) is treated as a separator. The package is purely
// computational and safe for concurrent use.
package tokenizer
