package idn_test

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/unitext/nls-engine/idn"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/tables"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func text(u []uint16) string {
	return string(utf16.Decode(u))
}

func toASCII(t *testing.T, flags uint32, s string) string {
	t.Helper()
	src := units(s)
	n, err := idn.ToASCII(tables.Default(), flags, nil, src)
	if err != nil {
		t.Fatalf("ToASCII(%q) estimate: %v", s, err)
	}
	dst := make([]uint16, n)
	if _, err := idn.ToASCII(tables.Default(), flags, dst, src); err != nil {
		t.Fatalf("ToASCII(%q): %v", s, err)
	}
	return text(dst)
}

func toUnicode(t *testing.T, flags uint32, s string) string {
	t.Helper()
	src := units(s)
	n, err := idn.ToUnicode(tables.Default(), flags, nil, src)
	if err != nil {
		t.Fatalf("ToUnicode(%q) estimate: %v", s, err)
	}
	dst := make([]uint16, n)
	if _, err := idn.ToUnicode(tables.Default(), flags, dst, src); err != nil {
		t.Fatalf("ToUnicode(%q): %v", s, err)
	}
	return text(dst)
}

func TestToASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded label", "bücher", "xn--bcher-kva"},
		{"case folded", "Bücher", "xn--bcher-kva"},
		{"ascii passthrough", "example.com", "example.com"},
		{"mixed labels", "bücher.example", "xn--bcher-kva.example"},
		{"ace passthrough", "xn--bcher-kva", "xn--bcher-kva"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toASCII(t, 0, tt.in); got != tt.want {
				t.Errorf("ToASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToASCIIRejects(t *testing.T) {
	tests := []struct {
		name  string
		flags uint32
		in    string
	}{
		{"empty label", 0, "a..b"},
		{"long label", 0, strings.Repeat("a", 64)},
		{"hyphen pair", 0, "ab--ü"},
		{"joiner without virama", 0, "ü‌"},
		{"std3 underscore", idn.UseSTD3ASCIIRules, "a_b"},
		{"std3 leading hyphen", idn.UseSTD3ASCIIRules, "-ab"},
		{"std3 trailing hyphen", idn.UseSTD3ASCIIRules, "ab-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idn.ToASCII(tables.Default(), tt.flags, nil, units(tt.in))
			if !status.IsInvalidIdn(err) {
				t.Errorf("ToASCII(%q) err = %v, want invalid idn", tt.in, err)
			}
		})
	}
}

func TestLabelLengthBoundary(t *testing.T) {
	ok := strings.Repeat("a", 63)
	if got := toASCII(t, 0, ok); got != ok {
		t.Errorf("63-char label = %q", got)
	}
	if _, err := idn.ToASCII(tables.Default(), 0, nil, units(ok+"a")); !status.IsInvalidIdn(err) {
		t.Errorf("64-char label err = %v, want invalid idn", err)
	}
}

func TestToUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"decoded label", "xn--bcher-kva", "bücher"},
		{"ascii passthrough", "example.com", "example.com"},
		{"mixed labels", "xn--bcher-kva.example", "bücher.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUnicode(t, 0, tt.in); got != tt.want {
				t.Errorf("ToUnicode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToUnicodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		flags uint32
		in    string
	}{
		{"non-ascii input", 0, "bücher"},
		{"truncated tail", 0, "xn--bcher-kv"},
		{"bad digit", 0, "xn--bcher-k!a"},
		{"long plain label", 0, strings.Repeat("a", 64)},
		{"std3 underscore", idn.UseSTD3ASCIIRules, "a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idn.ToUnicode(tables.Default(), tt.flags, nil, units(tt.in))
			if !status.IsInvalidIdn(err) {
				t.Errorf("ToUnicode(%q) err = %v, want invalid idn", tt.in, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"bücher",
		"bücher.example",
		"क्‌", // joiner after virama survives both directions
	}
	for _, in := range inputs {
		ace := toASCII(t, 0, in)
		if got := toUnicode(t, 0, ace); got != in {
			t.Errorf("round trip %q -> %q -> %q", in, ace, got)
		}
	}
}

func TestToNameprepUnicode(t *testing.T) {
	src := units("Bücher.COM")
	n, err := idn.ToNameprepUnicode(tables.Default(), 0, nil, src)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	dst := make([]uint16, n)
	if _, err := idn.ToNameprepUnicode(tables.Default(), 0, dst, src); err != nil {
		t.Fatalf("ToNameprepUnicode: %v", err)
	}
	if got := text(dst); got != "bücher.com" {
		t.Errorf("nameprep = %q", got)
	}

	if _, err := idn.ToNameprepUnicode(tables.Default(), 0x8, nil, src); !status.IsInvalidParameter(err) {
		t.Errorf("bad flags err = %v", err)
	}
	if _, err := idn.ToNameprepUnicode(tables.Default(), 0, nil, nil); !status.IsInvalidIdn(err) {
		t.Errorf("empty input err = %v", err)
	}
}

func TestBufferTooSmall(t *testing.T) {
	src := units("bücher")
	dst := make([]uint16, 4)
	n, err := idn.ToASCII(tables.Default(), 0, dst, src)
	if !status.IsBufferTooSmall(err) {
		t.Fatalf("err = %v, want buffer too small", err)
	}
	if n != len("xn--bcher-kva") {
		t.Errorf("required = %d", n)
	}
}
