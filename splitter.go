package main

import (
	"strings"
	"unicode/utf8"
)

// Splitter breaks structured tokens into the path segments and query
// parameter names and values they carry.
type Splitter struct {
	SplitBareSlashTokens bool
}

// SplitAll splits every token and concatenates the results.
func (s Splitter) SplitAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, s.Split(tok)...)
	}
	return out
}

// Split returns the sub-tokens of tok. A token holding '?' yields its
// path, the path segments, the parameter names and the short parameter
// values. Query values longer than MaxValueLength are dropped.
func (s Splitter) Split(tok string) []string {
	if path, query, ok := strings.Cut(tok, "?"); ok {
		var out []string
		if path != "" {
			out = append(out, path)
			out = appendSegments(out, path)
		}
		for _, param := range strings.Split(query, "&") {
			key, value, hasValue := strings.Cut(param, "=")
			if !hasValue {
				if param != "" && utf8.RuneCountInString(param) <= MaxValueLength {
					out = append(out, param)
				}
				continue
			}
			if key != "" {
				out = append(out, key)
			}
			if value != "" && utf8.RuneCountInString(value) <= MaxValueLength {
				out = append(out, value)
			}
		}
		return out
	}

	if s.SplitBareSlashTokens && strings.Contains(tok, "/") {
		trimmed := strings.Trim(tok, "/")
		if trimmed == "" {
			return nil
		}
		return appendSegments([]string{trimmed}, trimmed)
	}

	return []string{tok}
}

func appendSegments(out []string, path string) []string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
