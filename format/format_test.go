package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"j":       JSONFormat,
		"json":    JSONFormat,
		"J":       CompactJSONFormat,
		"compact": CompactJSONFormat,
		"c":       ConfigFormat,
		"ucl":     ConfigFormat,
		"y":       YAMLFormat,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: got %v, %v", f, g, err)
		}
		if h, ok := FromSuffix(f.Suffix()); !ok || h.Suffix() != f.Suffix() {
			t.Errorf("%s: suffix %q", f, f.Suffix())
		}
	}
	if Format(99).String() == "" {
		t.Error("bad format has empty string")
	}
}
