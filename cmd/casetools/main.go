package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/internal/mcpserver"
	"github.com/erraggy/casetools/tokenizer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tokenize":
		if err := handleTokenize(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "template":
		if err := handleTemplate(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Output format constants
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// convertResult is the structured output of the convert command.
type convertResult struct {
	Case   string `json:"case" yaml:"case"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	caseName string
	format   string
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.caseName, "case", "camel", "target case: camel, dot, or kebab")
	fs.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools convert [flags] <value>\n\n")
		_, _ = fmt.Fprintf(output, "Convert a string to a target casing convention.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  casetools convert \"first name\"\n")
		_, _ = fmt.Fprintf(output, "  casetools convert -case dot XMLHttpRequest\n")
		_, _ = fmt.Fprintf(output, "  casetools convert -case kebab -format json \"Hello   World\"\n")
	}

	return fs, flags
}

func handleConvert(args []string, out io.Writer) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one value")
	}

	variant, err := caseconv.ParseVariant(flags.caseName)
	if err != nil {
		return err
	}

	input := fs.Arg(0)
	converted, err := caseconv.Convert(input, variant)
	if err != nil {
		return fmt.Errorf("converting value: %w", err)
	}

	if flags.format == formatText {
		fmt.Fprintln(out, converted)
		return nil
	}

	return outputStructured(out, convertResult{
		Case:   variant.String(),
		Input:  input,
		Output: converted,
	}, flags.format)
}

// tokenizeResult is the structured output of the tokenize command.
type tokenizeResult struct {
	Input      string   `json:"input" yaml:"input"`
	TokenCount int      `json:"token_count" yaml:"token_count"`
	Tokens     []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// tokenizeFlags contains flags for the tokenize command
type tokenizeFlags struct {
	format string
}

func setupTokenizeFlags() (*flag.FlagSet, *tokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &tokenizeFlags{}

	fs.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools tokenize [flags] <value>\n\n")
		_, _ = fmt.Fprintf(output, "Split a string into its word tokens.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  casetools tokenize XMLHttpRequest\n")
		_, _ = fmt.Fprintf(output, "  casetools tokenize -format json SCREEN_NAME\n")
	}

	return fs, flags
}

func handleTokenize(args []string, out io.Writer) error {
	fs, flags := setupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tokenize command requires exactly one value")
	}

	input := fs.Arg(0)
	tokens := tokenizer.Tokenize(input)

	if flags.format == formatText {
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	}

	return outputStructured(out, tokenizeResult{
		Input:      input,
		TokenCount: len(tokens),
		Tokens:     tokens,
	}, flags.format)
}

// templateFlags contains flags for the template command
type templateFlags struct {
	tmpl string
}

func setupTemplateFlags() (*flag.FlagSet, *templateFlags) {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	flags := &templateFlags{}

	fs.StringVar(&flags.tmpl, "t", "", "Go text/template to render (receives .Input and .Tokens)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools template -t <template> <value>\n\n")
		_, _ = fmt.Fprintf(output, "Render a string through a text/template with case helpers\n")
		_, _ = fmt.Fprintf(output, "(camel, dot, kebab, upper, lower, title, tokens, join, replace).\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  casetools template -t '{{kebab .Input}}-v2' UserProfile\n")
		_, _ = fmt.Fprintf(output, "  casetools template -t '{{range .Tokens}}[{{.}}]{{end}}' XMLHttpRequest\n")
	}

	return fs, flags
}

func handleTemplate(args []string, out io.Writer) error {
	fs, flags := setupTemplateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.tmpl == "" {
		fs.Usage()
		return fmt.Errorf("template command requires the -t flag")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("template command requires exactly one value")
	}

	rendered, err := caseconv.Format(flags.tmpl, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, rendered)
	return nil
}

// outputStructured outputs data in the specified format (json or yaml).
func outputStructured(out io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case formatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case formatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, formatText, formatJSON, formatYAML)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	_, err = fmt.Fprintln(out, string(bytes))
	return err
}

func printUsage() {
	fmt.Println(`casetools - String Case Conversion Tools

Usage:
  casetools <command> [options]

Commands:
  convert     Convert a string to camel, dot, or kebab case
  tokenize    Split a string into its word tokens
  template    Render a string through a text/template with case helpers
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  casetools convert "first name"
  casetools convert -case dot XMLHttpRequest
  casetools tokenize -format yaml SCREEN_NAME
  casetools template -t '{{kebab .Input}}-v2' UserProfile

Run 'casetools <command> --help' for more information on a command.`)
}
