package caseconv

import (
	"fmt"
	"strings"
)

// Variant defines the supported target casing conventions.
// Use these with Convert to select how tokens are re-joined.
type Variant int

const (
	// LowerCamel renders tokens as lowerCamelCase.
	// Example: "first name" -> firstName
	LowerCamel Variant = iota

	// DotCase renders tokens as dot.case.
	// Example: "first name" -> first.name
	DotCase

	// KebabCase renders whitespace-delimited words as kebab-case.
	// Example: "Hello   World" -> hello-world
	KebabCase
)

// String returns the conventional name of the variant.
func (v Variant) String() string {
	switch v {
	case LowerCamel:
		return "camel"
	case DotCase:
		return "dot"
	case KebabCase:
		return "kebab"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant resolves a variant name as used by the CLI and MCP tools.
// Accepted names: "camel", "dot", "kebab".
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "camel":
		return LowerCamel, nil
	case "dot":
		return DotCase, nil
	case "kebab":
		return KebabCase, nil
	default:
		return 0, fmt.Errorf("unknown case variant %q (valid: camel, dot, kebab)", name)
	}
}

// renderCamel joins tokens as lowerCamelCase: the first token fully
// lowercased, each subsequent token with its first character uppercased and
// the rest lowercased. All-digit tokens are emitted verbatim; they are never
// case-transformed.
func renderCamel(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		switch {
		case allDigits(tok):
			b.WriteString(tok)
		case i == 0:
			b.WriteString(strings.ToLower(tok))
		default:
			b.WriteString(strings.ToUpper(tok[:1]))
			b.WriteString(strings.ToLower(tok[1:]))
		}
	}
	return b.String()
}

// renderDot joins tokens as dot.case with every token fully lowercased.
func renderDot(tokens []string) string {
	lowered := make([]string, len(tokens))
	for i, tok := range tokens {
		lowered[i] = strings.ToLower(tok)
	}
	return strings.Join(lowered, ".")
}

// renderKebab is the simpler whitespace-only converter: it operates on
// whitespace-delimited words rather than the boundary-detection tokenizer,
// collapsing runs of whitespace to single separators and lowercasing every
// character.
func renderKebab(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
