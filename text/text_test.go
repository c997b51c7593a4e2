package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSkipWS(t *testing.T) {
	for in, want := range map[string]string{
		"foo":       "foo",
		"   foo":    "foo",
		"foo ":      "foo ",
		"foo bar":   "foo bar",
		"\u2003foo": "foo",
		"":          "",
	} {
		if got := SkipWS(in); got != want {
			t.Errorf("SkipWS(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNextWord(t *testing.T) {
	tests := []struct {
		in, word, rest string
	}{
		{"foo bar baz", "foo", " bar baz"},
		{"foo  bar  baz", "foo", "  bar  baz"},
		{" \tfoo  bar  baz", "foo", "  bar  baz"},
		{"\u2003foo\u2003bar", "foo", "\u2003bar"},
		{"foo", "foo", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		w, r := NextWord(tt.in)
		if w != tt.word || r != tt.rest {
			t.Errorf("NextWord(%q) = (%q, %q), want (%q, %q)", tt.in, w, r, tt.word, tt.rest)
		}
	}
	if diff := cmp.Diff([]string{"config", "get", "x"}, Words("  config get\tx ")); diff != "" {
		t.Errorf("Words (-want +got):\n%s", diff)
	}
}

func TestParseSize(t *testing.T) {
	n, err := ParseSize[uint64]("1024")
	if err != nil || n != 1024 {
		t.Fatalf("got %d, %v", n, err)
	}
	if _, err := ParseSize[uint64](""); !errors.Is(err, ErrEmptyString) {
		t.Errorf("empty: got %v", err)
	}
	if v, err := ParseSize[uint16]("65535"); err != nil || v != 65535 {
		t.Errorf("max uint16: %d %v", v, err)
	}
	for _, s := range []string{"65536", "100000", "64k"} {
		if _, err := ParseSize[uint16](s); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("uint16 %q: got %v", s, err)
		}
	}
	for _, s := range []string{"32768", "100000", "32k"} {
		if _, err := ParseSize[int16](s); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("int16 %q: got %v", s, err)
		}
	}
	for _, s := range []string{"4z", "4kz"} {
		if _, err := ParseSize[uint64](s); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("%q: got %v", s, err)
		}
	}
	if _, err := ParseSize[uint64]("k"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("no digits: got %v", err)
	}
	mults := map[string]uint64{
		"4k": 4 << 10,
		"4m": 4 << 20,
		"4g": 4 << 30,
		"4t": 4 << 40,
		"4p": 4 << 50,
	}
	for s, want := range mults {
		got, err := ParseSize[uint64](s)
		if err != nil || got != want {
			t.Errorf("%q: got %d, %v want %d", s, got, err, want)
		}
	}
}

func TestTabulate(t *testing.T) {
	tests := []struct {
		name   string
		format string
		rows   [][]string
		want   string
	}{
		{
			name:   "basic",
			format: "{:1} {:2} {:3}",
			rows:   [][]string{{"a", "foo", "b"}, {"bar", "c", "baz"}},
			want:   "1   2   3\na   foo b\nbar c   baz\n",
		},
		{
			name:   "jagged",
			format: "{:1} {:2} {:3}",
			rows:   [][]string{{"a", "foo", "b"}, {"bar", "baz"}},
			want:   "1   2   3\na   foo b\nbar baz\n",
		},
		{
			name:   "align",
			format: "{:1} {<:2} {>:3}",
			rows:   [][]string{{"a", "longvalue", "s"}, {"a", "s", "longvalue"}},
			want:   "1 2                 3\na longvalue         s\na s         longvalue\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &strings.Builder{}
			if err := Tabulate(tt.format, tt.rows, b); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTabulateErrors(t *testing.T) {
	b := &strings.Builder{}
	for _, f := range []string{"", "{:a", "{x}"} {
		if err := Tabulate(f, nil, b); !errors.Is(err, ErrBadTableFormat) {
			t.Errorf("%q: got %v", f, err)
		}
	}
	if err := Tabulate("{:a}", [][]string{{"1", "2"}}, b); !errors.Is(err, ErrBadTableFormat) {
		t.Errorf("long row: got %v", err)
	}
}
