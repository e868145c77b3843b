package main

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies the pattern that produced a raw token.
type Kind int

const (
	KindURL Kind = iota
	KindPath
	KindQuery
	KindIPv4
	KindKeyValue
	KindWindowsPath
	KindWord
	KindPhrase
)

var kindNames = [...]string{"url", "path", "query", "ipv4", "keyvalue", "winpath", "word", "phrase"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// delimiterClass ends a delimited run: quotes, angle brackets and newline.
const delimiterClass = `["'<>\n]`

type pattern struct {
	kind Kind
	expr string
	// delimited patterns run up to the next delimiter, which must exist.
	delimited bool
}

// structuredPatterns are tried in order at every position; the first one
// matching wins.
var structuredPatterns = []pattern{
	{kind: KindURL, expr: `https?://[^\n][^"'<>\n]*`, delimited: true},
	{kind: KindPath, expr: `/[^\n][^"'<>\n]*`, delimited: true},
	{kind: KindQuery, expr: `\?[^\n][^"'<>\n]*`, delimited: true},
	{kind: KindIPv4, expr: `\b(?:\d{1,3}\.){3}\d{1,3}(?::\d+)?\b`},
	{kind: KindKeyValue, expr: `[a-zA-Z0-9_-]+=[^"'<>\n]+`},
	{kind: KindWindowsPath, expr: `[a-zA-Z]:\\[^\n][^"'<>\n]*`, delimited: true},
}

var (
	structuredRegex = compileAlternation(structuredPatterns)
	wordRegex       = regexp.MustCompile(`\b[\w.\-]{1,40}\b`)
	phraseRegex     = regexp.MustCompile(`\b[\w.\-]+(?:[\t\n\v\f\r ]+[\w.\-]+){1,2}\b`)
)

// compileAlternation joins the patterns into one leftmost-first regexp,
// one capture group per pattern. A delimited pattern consumes its
// delimiter outside the group; no pattern can start on a delimiter, so
// the following match is unaffected.
func compileAlternation(patterns []pattern) *regexp.Regexp {
	parts := make([]string, len(patterns))
	for i, p := range patterns {
		part := "(" + p.expr + ")"
		if p.delimited {
			part += delimiterClass
		}
		parts[i] = part
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// Match is a raw token together with the pattern that found it.
type Match struct {
	Kind  Kind
	Value string
}

// Extractor harvests raw tokens from decoded file content.
type Extractor struct {
	SupplementalHarvest bool
}

// Extract percent-decodes content and returns every raw token found in it,
// in match order. Duplicates are kept.
func (e Extractor) Extract(content string) []string {
	matches := e.Matches(content)
	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Value
	}
	return found
}

// Matches is Extract with the pattern kind of each token.
func (e Extractor) Matches(content string) []Match {
	decoded := percentDecode(content)

	var found []Match
	add := func(kind Kind, s string) {
		found = append(found, Match{Kind: kind, Value: stripScheme(s)})
	}

	for _, loc := range structuredRegex.FindAllStringSubmatchIndex(decoded, -1) {
		for i, p := range structuredPatterns {
			start, end := loc[2*(i+1)], loc[2*(i+1)+1]
			if start >= 0 {
				add(p.kind, decoded[start:end])
				break
			}
		}
	}

	if !e.SupplementalHarvest {
		return found
	}

	for _, w := range wordRegex.FindAllString(decoded, -1) {
		add(KindWord, w)
	}
	for _, ph := range phraseRegex.FindAllString(decoded, -1) {
		ph = stripScheme(ph)
		if utf8.RuneCountInString(ph) <= MaxWordLength {
			found = append(found, Match{Kind: KindPhrase, Value: ph})
		}
	}
	return found
}

// stripScheme removes every "https://" in s, wherever it occurs.
func stripScheme(s string) string {
	return strings.ReplaceAll(s, "https://", "")
}
