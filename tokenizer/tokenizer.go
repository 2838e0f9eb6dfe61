package tokenizer

import "strings"

// Tokenize splits s into an ordered sequence of word tokens.
//
// Leading and trailing whitespace is trimmed first. If the trimmed input
// contains any byte outside the ASCII letter/digit ranges, the string is
// partitioned on every maximal run of such bytes (separator splitting).
// Otherwise the string is scanned left-to-right and partitioned at word
// boundaries (camelCase transitions, acronym edges, digit runs).
//
// The two strategies are mutually exclusive per call: a string with any
// separator never goes through boundary detection, even if it also contains
// camelCase-like runs. Tokens retain their original character casing.
//
// An empty or whitespace-only input yields a nil slice.
func Tokenize(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if hasSeparator(s) {
		return splitSeparators(s)
	}
	return scanBoundaries(s)
}

// hasSeparator reports whether s contains any byte that is not an ASCII
// letter or digit. Multi-byte UTF-8 sequences always trip this check, so
// non-ASCII input is handled by separator splitting.
func hasSeparator(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlphanumeric(s[i]) {
			return true
		}
	}
	return false
}

// splitSeparators partitions s on maximal runs of non-alphanumeric bytes.
// Runs at the start or end, and repeated runs, produce no empty tokens.
func splitSeparators(s string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isAlphanumeric(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// scanBoundaries partitions an all-alphanumeric string into word tokens.
// At each position the first matching rule wins, consuming greedily:
//
//  1. an uppercase run whose final letter starts a following lowercase word
//     splits the acronym off first ("XMLHttp" -> "XML" before "Http")
//  2. an optional single uppercase letter followed by lowercase letters
//     forms a capitalized or plain word
//  3. a run of uppercase letters forms a trailing acronym
//  4. a run of digits always forms its own token
//
// Rule order determines where acronym/word boundaries fall. If no rule
// matches (unreachable for ASCII alphanumerics), the remainder becomes one
// final token.
func scanBoundaries(s string) []string {
	var tokens []string
	for i := 0; i < len(s); {
		switch {
		case isDigit(s[i]):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j

		case isUpper(s[i]):
			j := i
			for j < len(s) && isUpper(s[j]) {
				j++
			}
			run := j - i
			switch {
			case run >= 3 && j < len(s) && isLower(s[j]):
				// Acronym before a capitalized word: keep the final
				// uppercase letter for the next token.
				tokens = append(tokens, s[i:j-1])
				i = j - 1
			case run == 1 && j < len(s) && isLower(s[j]):
				// Single capital starting a word.
				for j < len(s) && isLower(s[j]) {
					j++
				}
				tokens = append(tokens, s[i:j])
				i = j
			default:
				// Trailing acronym, or uppercase pair before a lowercase
				// word ("ABc" -> "AB", "c").
				tokens = append(tokens, s[i:j])
				i = j
			}

		case isLower(s[i]):
			j := i
			for j < len(s) && isLower(s[j]) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j

		default:
			// Unreachable for alphanumeric input; consume the remainder.
			tokens = append(tokens, s[i:])
			i = len(s)
		}
	}
	return tokens
}

func isAlphanumeric(b byte) bool {
	return isUpper(b) || isLower(b) || isDigit(b)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
