package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/tokenizer"
)

type convertCaseInput struct {
	Value any    `json:"value" jsonschema:"The value to convert. Must be a string; any other type is rejected."`
	Case  string `json:"case"  jsonschema:"Target case: camel\\, dot\\, or kebab"`
}

type convertCaseOutput struct {
	Case   string `json:"case"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	variant, err := caseconv.ParseVariant(input.Case)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	out, err := caseconv.Convert(input.Value, variant)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	// Value is known to be a string once Convert succeeds.
	in, _ := input.Value.(string)
	return nil, convertCaseOutput{
		Case:   variant.String(),
		Input:  in,
		Output: out,
	}, nil
}

type tokenizeInput struct {
	Value string `json:"value" jsonschema:"The string to split into word tokens"`
}

type tokenizeOutput struct {
	Input      string   `json:"input"`
	TokenCount int      `json:"token_count"`
	Tokens     []string `json:"tokens,omitempty"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	tokens := tokenizer.Tokenize(input.Value)
	return nil, tokenizeOutput{
		Input:      input.Value,
		TokenCount: len(tokens),
		Tokens:     tokens,
	}, nil
}

type formatTemplateInput struct {
	Template string `json:"template" jsonschema:"Go text/template to render. Receives .Input and .Tokens plus case helper functions."`
	Value    any    `json:"value"    jsonschema:"The value to format. Must be a string; any other type is rejected."`
}

type formatTemplateOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func handleFormatTemplate(_ context.Context, _ *mcp.CallToolRequest, input formatTemplateInput) (*mcp.CallToolResult, formatTemplateOutput, error) {
	out, err := caseconv.Format(input.Template, input.Value)
	if err != nil {
		return errResult(err), formatTemplateOutput{}, nil
	}

	in, _ := input.Value.(string)
	return nil, formatTemplateOutput{
		Input:  in,
		Output: out,
	}, nil
}
