package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isUnreserved reports whether r is in the URL unreserved set
// A-Z a-z 0-9 - . _ ~.
func isUnreserved(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r == '-', r == '.', r == '_', r == '~':
		return true
	}
	return false
}

func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsValidToken reports whether tok can be a path component. Only the
// first character may be '/'; any later '/' makes the token invalid, so
// "/ab" passes while "/a/b" does not.
func IsValidToken(tok string) bool {
	for _, r := range tok {
		if isCJK(r) || unicode.IsSpace(r) {
			return false
		}
	}
	body := strings.TrimPrefix(tok, "/")
	for _, r := range body {
		if !isUnreserved(r) {
			return false
		}
	}
	return true
}

// ValidateAll keeps the tokens accepted by IsValidToken.
func ValidateAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsValidToken(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// FilterLength keeps tokens of at most limit characters.
func FilterLength(tokens []string, limit int) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= limit {
			out = append(out, tok)
		}
	}
	return out
}

// Cleanup trims surrounding slashes and drops empty tokens and digit runs
// longer than MaxDigitLength.
func Cleanup(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(tok, "/")
		if tok == "" {
			continue
		}
		if isDigits(tok) && utf8.RuneCountInString(tok) > MaxDigitLength {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
