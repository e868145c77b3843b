package main

import (
	"slices"
	"strings"
	"testing"
)

func TestExtractStructured(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "path with query runs to quote",
			content: `GET /foo/bar?x=1&y=thisvalueiswaytoolongtoinclude HTTPS://example.com/path" more text`,
			want:    []string{"/foo/bar?x=1&y=thisvalueiswaytoolongtoinclude HTTPS://example.com/path"},
		},
		{
			name:    "https scheme stripped and closing tag kept",
			content: "<loc>https://example.com/a?b=1</loc>",
			want:    []string{"example.com/a?b=1", "/loc"},
		},
		{
			name:    "http scheme is not stripped",
			content: `"http://a.b/c"`,
			want:    []string{"http://a.b/c"},
		},
		{
			name:    "ipv4 with port",
			content: "host 192.168.1.1:8080 up\n",
			want:    []string{"192.168.1.1:8080"},
		},
		{
			name:    "key value runs to delimiter",
			content: `id=42&name=bob"`,
			want:    []string{"id=42&name=bob"},
		},
		{
			name:    "windows path",
			content: `C:\Windows\win.ini'`,
			want:    []string{`C:\Windows\win.ini`},
		},
		{
			name:    "query",
			content: "?q=1'",
			want:    []string{"?q=1"},
		},
		{
			name:    "percent escapes decoded before matching",
			content: `%2Fadmin%2Fpanel"`,
			want:    []string{"/admin/panel"},
		},
		{
			name:    "first character after slash may be a delimiter",
			content: "/<b>\n",
			want:    []string{"/<b"},
		},
		{
			name:    "no delimiter before end of content",
			content: "/tail-without-delimiter",
			want:    nil,
		},
	}

	e := Extractor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.content)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Extract(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestExtractMatchKinds(t *testing.T) {
	content := "<a href=\"https://x.io/p\">\n<ip>10.0.0.1</ip>\n"
	got := Extractor{}.Matches(content)
	want := []Match{
		{Kind: KindURL, Value: "x.io/p"},
		{Kind: KindIPv4, Value: "10.0.0.1"},
		{Kind: KindPath, Value: "/ip"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Matches = %+v, want %+v", got, want)
	}
	if KindWindowsPath.String() != "winpath" {
		t.Fatalf("unexpected kind name %q", KindWindowsPath.String())
	}
}

func TestExtractSupplementalHarvest(t *testing.T) {
	content := "alpha beta-1 gamma.delta"

	narrow := Extractor{}.Extract(content)
	if len(narrow) != 0 {
		t.Fatalf("structured patterns should find nothing, got %q", narrow)
	}

	got := Extractor{SupplementalHarvest: true}.Extract(content)
	want := []string{"alpha", "beta-1", "gamma.delta", "alpha beta-1 gamma.delta"}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %q, want %q", got, want)
	}
}

func TestExtractWordLengthLimit(t *testing.T) {
	e := Extractor{SupplementalHarvest: true}

	if got := e.Extract(strings.Repeat("a", 40)); len(got) != 1 {
		t.Fatalf("40 character word should be harvested, got %q", got)
	}
	if got := e.Extract(strings.Repeat("a", 41)); len(got) != 0 {
		t.Fatalf("41 character word should be ignored, got %q", got)
	}

	phrase := strings.Repeat("a", 20) + " " + strings.Repeat("b", 20)
	got := e.Extract(phrase)
	want := []string{strings.Repeat("a", 20), strings.Repeat("b", 20)}
	if !slices.Equal(got, want) {
		t.Fatalf("phrase over 40 characters should be dropped, got %q", got)
	}
}

func TestBroadWordsUseASCIIClasses(t *testing.T) {
	content := "<t>登录login café</t>"

	got := Extractor{SupplementalHarvest: true}.Extract(content)
	want := []string{"/t", "t", "login", "caf", "t", "login caf"}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %q, want %q", got, want)
	}

	out := New(BroadConfig()).Process(got)
	if !slices.Equal(out, []string{"t", "caf", "login"}) {
		t.Fatalf("Process = %q", out)
	}
}
