package caseconv

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/casetools/tokenizer"
)

// FormatContext provides input metadata for format templates. All fields are
// populated before the template executes.
type FormatContext struct {
	// Input is the trimmed input string.
	Input string

	// Tokens contains the word tokens of Input with original casing.
	Tokens []string
}

// Format renders input through a text/template with case-conversion helper
// functions. The template receives a FormatContext and may use the helpers
// camel, dot, kebab, upper, lower, title, tokens, join, trimPrefix,
// trimSuffix, and replace:
//
//	out, err := caseconv.Format("{{kebab .Input}}-v2", "UserProfile")
//	// out == "user-profile-v2"
//
// The input must be a string; nil and every other type fail with
// caseerrors.ErrInvalidInput before the template executes.
func Format(tmpl string, input any) (string, error) {
	s, err := asString(input)
	if err != nil {
		return "", err
	}

	t, err := parseFormatTemplate(tmpl)
	if err != nil {
		return "", err
	}

	s = strings.TrimSpace(s)
	ctx := FormatContext{
		Input:  s,
		Tokens: tokenizer.Tokenize(s),
	}

	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("caseconv: format template execution failed: %w", err)
	}
	return buf.String(), nil
}

// templateFuncs returns the function map for format templates.
func templateFuncs() template.FuncMap {
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"camel":      func(s string) string { return renderCamel(tokenizer.Tokenize(s)) },
		"dot":        func(s string) string { return renderDot(tokenizer.Tokenize(s)) },
		"kebab":      renderKebab,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"tokens":     tokenizer.Tokenize,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"join": func(sep string, parts ...string) string {
			return strings.Join(parts, sep)
		},
	}
}

// parseFormatTemplate parses and validates a format template.
// The template is validated by executing it with a sample context.
// Returns an error if the template is syntactically invalid or fails execution.
func parseFormatTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("format").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("caseconv: invalid format template: %w", err)
	}

	// Validate template with sample context
	ctx := FormatContext{
		Input:  "sampleInput",
		Tokens: []string{"sample", "Input"},
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("caseconv: format template validation failed: %w", err)
	}

	return t, nil
}
