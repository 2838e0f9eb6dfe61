// Package caseerrors provides structured error types for the casetools library.
//
// Import path: github.com/erraggy/casetools/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish converter failures without string matching.
//
// # Error Types
//
// The package provides a single error type:
//
//   - [InputError]: a converter received a non-string input (nil or any other type)
//
// The tokenizer and renderers are total functions over all string inputs, so no
// other failure mode exists.
//
// # Sentinel Errors
//
// [ErrInvalidInput] matches any [InputError]:
//
//	out, err := caseconv.ToCamelCase(42)
//	if errors.Is(err, caseerrors.ErrInvalidInput) {
//	    // Handle invalid input
//	}
//
// Extract error details with errors.As():
//
//	var inputErr *caseerrors.InputError
//	if errors.As(err, &inputErr) {
//	    fmt.Printf("rejected value: %v\n", inputErr.Value)
//	}
package caseerrors
