package main

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// decodeText turns raw file bytes into text. A UTF-8 BOM is dropped, a
// UTF-16 BOM switches to UTF-16, and bytes that are not valid UTF-8 are
// removed so a damaged file is still scanned. Line endings become "\n";
// escaped ones such as %0D are left for percentDecode.
func decodeText(raw []byte) string {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		out = raw
	}
	return newlineReplacer.Replace(strings.ToValidUTF8(string(out), ""))
}

// percentDecode replaces %XX escapes with the bytes they encode. Escapes
// that are not two hex digits stay as they are. Each run of adjacent
// escapes is read as UTF-8, ill-formed sequences becoming U+FFFD.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	var run []byte
	flush := func() {
		if len(run) == 0 {
			return
		}
		b.WriteString(replaceIllFormed(run))
		run = run[:0]
	}

	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			run = append(run, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 3
			continue
		}
		flush()
		b.WriteByte(s[i])
		i++
	}
	flush()
	return b.String()
}

func replaceIllFormed(p []byte) string {
	out, _, err := transform.String(runes.ReplaceIllFormed(), string(p))
	if err != nil {
		return strings.ToValidUTF8(string(p), "\uFFFD")
	}
	return out
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
