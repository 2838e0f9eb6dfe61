package caseconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/caseerrors"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "single word", input: "hello", want: "hello"},
		{name: "single word uppercase", input: "HELLO", want: "hello"},
		{name: "space separated", input: "first name", want: "firstName"},
		{name: "separator collapsing", input: "  multiple---separators_here ", want: "multipleSeparatorsHere"},
		{name: "acronym boundary", input: "XMLHttpRequest", want: "xmlHttpRequest"},
		{name: "screaming snake", input: "SCREEN_NAME", want: "screenName"},
		{name: "digit preservation", input: "item 42 count", want: "item42Count"},
		{name: "digits only", input: "42", want: "42"},
		{name: "camel run with separator", input: "userId_2", want: "userid2"},
		{name: "already camelCase", input: "firstName", want: "firstName"},
		{name: "PascalCase", input: "FirstName", want: "firstName"},
		{name: "trailing acronym", input: "requestID", want: "requestId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCamelCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ToCamelCase(%q)", tt.input)
		})
	}
}

func TestToDotCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "single word", input: "hello", want: "hello"},
		{name: "space separated", input: "first name", want: "first.name"},
		{name: "acronym boundary", input: "XMLHttpRequest", want: "xml.http.request"},
		{name: "screaming snake", input: "SCREEN_NAME", want: "screen.name"},
		{name: "digits kept as tokens", input: "item 42 count", want: "item.42.count"},
		{name: "camelCase input", input: "firstName", want: "first.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDotCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ToDotCase(%q)", tt.input)
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "single word", input: "Hello", want: "hello"},
		{name: "whitespace collapsing", input: "Hello   World", want: "hello-world"},
		{name: "leading and trailing whitespace", input: "  Hello World  ", want: "hello-world"},
		{name: "tabs and newlines", input: "Hello\tBig\nWorld", want: "hello-big-world"},
		// Whitespace-only converter: camelCase boundaries and other
		// separators pass through untouched apart from lowercasing.
		{name: "camelCase left intact", input: "firstName", want: "firstname"},
		{name: "underscores left intact", input: "first_name", want: "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToKebabCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ToKebabCase(%q)", tt.input)
		})
	}
}

func TestConvertInvalidInput(t *testing.T) {
	invalid := []any{nil, 42, 1.5, true, map[string]any{}, []any{}, []byte("bytes")}

	converters := map[string]func(any) (string, error){
		"ToCamelCase": ToCamelCase,
		"ToDotCase":   ToDotCase,
		"ToKebabCase": ToKebabCase,
	}

	for name, fn := range converters {
		t.Run(name, func(t *testing.T) {
			for _, v := range invalid {
				got, err := fn(v)
				require.Error(t, err, "%s(%v) should fail", name, v)
				assert.Empty(t, got, "%s(%v) should not return partial output", name, v)
				assert.True(t, errors.Is(err, caseerrors.ErrInvalidInput),
					"%s(%v) should match ErrInvalidInput", name, v)

				var inputErr *caseerrors.InputError
				assert.True(t, errors.As(err, &inputErr),
					"%s(%v) should be an InputError", name, v)
			}
		})
	}
}

func TestConvertDispatch(t *testing.T) {
	got, err := Convert("first name", LowerCamel)
	require.NoError(t, err)
	assert.Equal(t, "firstName", got)

	got, err = Convert("first name", DotCase)
	require.NoError(t, err)
	assert.Equal(t, "first.name", got)

	got, err = Convert("First Name", KebabCase)
	require.NoError(t, err)
	assert.Equal(t, "first-name", got)
}

// Re-running a converter on its own output is a no-op when the output has no
// remaining separators.
func TestCamelCaseIdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{"first name", "SCREEN_NAME", "XMLHttpRequest", "item 42 count"}
	for _, in := range inputs {
		once, err := ToCamelCase(in)
		require.NoError(t, err)
		twice, err := ToCamelCase(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "ToCamelCase should be stable on its own output for %q", in)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Variant
		wantErr bool
	}{
		{name: "camel", input: "camel", want: LowerCamel},
		{name: "dot", input: "dot", want: DotCase},
		{name: "kebab", input: "kebab", want: KebabCase},
		{name: "case insensitive", input: "Camel", want: LowerCamel},
		{name: "surrounding whitespace", input: " kebab ", want: KebabCase},
		{name: "unknown", input: "snake", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "camel", LowerCamel.String())
	assert.Equal(t, "dot", DotCase.String())
	assert.Equal(t, "kebab", KebabCase.String())
	assert.Equal(t, "Variant(99)", Variant(99).String())
}
