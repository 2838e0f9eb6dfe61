package caseconv

import (
	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/tokenizer"
)

// ToCamelCase converts input to lowerCamelCase.
// The input must be a string; nil and every other type fail with
// caseerrors.ErrInvalidInput before any processing occurs.
// Empty or whitespace-only input returns "".
//
// Example: "XMLHttpRequest" -> "xmlHttpRequest"
// Example: "SCREEN_NAME" -> "screenName"
func ToCamelCase(input any) (string, error) {
	return Convert(input, LowerCamel)
}

// ToDotCase converts input to dot.case. Same contract as ToCamelCase.
//
// Example: "XMLHttpRequest" -> "xml.http.request"
// Example: "SCREEN_NAME" -> "screen.name"
func ToDotCase(input any) (string, error) {
	return Convert(input, DotCase)
}

// ToKebabCase converts whitespace-delimited words to kebab-case: runs of
// whitespace collapse to single hyphens and every character is lowercased.
// Unlike the camel/dot converters it does not detect camelCase or acronym
// boundaries. Same input contract as ToCamelCase.
//
// Example: "Hello   World" -> "hello-world"
func ToKebabCase(input any) (string, error) {
	return Convert(input, KebabCase)
}

// Convert converts input to the requested Variant. The input must be a
// string; nil and every other dynamic type fail with an error matching
// caseerrors.ErrInvalidInput. Conversion is a pure single-pass function of
// its input and is safe for concurrent use.
func Convert(input any, variant Variant) (string, error) {
	s, err := asString(input)
	if err != nil {
		return "", err
	}

	switch variant {
	case KebabCase:
		return renderKebab(s), nil
	case DotCase:
		return renderDot(tokenizer.Tokenize(s)), nil
	default:
		return renderCamel(tokenizer.Tokenize(s)), nil
	}
}

// asString validates that input is a string. The strict error-raising
// contract applies uniformly: there is no lenient conversion of non-string
// values to "".
func asString(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", caseerrors.NewInputError(input)
	}
	return s, nil
}
