package token

import "testing"

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"":       `""`,
		"te\"st": `"te\"st"`,
		"a\\b":   `"a\\b"`,
		"l1\nl2": `"l1\nl2"`,
		"\x01":   `"\u0001"`,
		"é":      `"é"`,
		"tab\tx": `"tab\tx"`,
		"x\u0085": `"x\u0085"`,
		"\x7f":   `"\u007f"`,
	}
	for in, want := range tests {
		got := Quote(in)
		if got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
		back, err := Unquote(got)
		if err != nil || back != in {
			t.Errorf("Unquote(%s) = %q, %v", got, back, err)
		}
	}
	if s, err := Unquote(`"\ud83d\ude00"`); err != nil || s != "\U0001F600" {
		t.Errorf("surrogate pair: %q %v", s, err)
	}
	if _, err := Unquote(`"a" tail`); err == nil {
		t.Error("expected error for trailing bytes")
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"int":     false,
		"a_b.c-d": false,
		"path/x":  false,
		"":        true,
		"a b":     true,
		"1abc":    true,
		"true":    true,
		"Yes":     true,
		"-x":      true,
		"x:y":     true,
	}
	for in, want := range tests {
		if got := NeedsQuote(in); got != want {
			t.Errorf("NeedsQuote(%q) = %v", in, got)
		}
	}
}
