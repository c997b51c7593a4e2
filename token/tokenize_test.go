package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tok struct {
	Type  TokenType
	Value string
}

func tokenize(t *testing.T, src string) []tok {
	t.Helper()
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	res := make([]tok, len(toks))
	for i := range toks {
		res[i] = tok{Type: toks[i].Type, Value: toks[i].String()}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []tok
	}{
		{
			name: "assignment",
			src:  "int = 42;",
			want: []tok{{TAtom, "int"}, {TAssign, "="}, {TAtom, "42"}, {TSemi, ";"}},
		},
		{
			name: "json",
			src:  `{"a": [1, "x"]}`,
			want: []tok{
				{TLCurl, "{"}, {TString, "a"}, {TAssign, ":"}, {TLSquare, "["},
				{TAtom, "1"}, {TComma, ","}, {TString, "x"}, {TRSquare, "]"}, {TRCurl, "}"},
			},
		},
		{
			name: "comments",
			src:  "# line\na = 1 // trailing\n/* block /* nested */ still */ b = 2",
			want: []tok{{TAtom, "a"}, {TAssign, "="}, {TAtom, "1"}, {TAtom, "b"}, {TAssign, "="}, {TAtom, "2"}},
		},
		{
			name: "url atom",
			src:  "url = http://example.com/x;",
			want: []tok{{TAtom, "url"}, {TAssign, "="}, {TAtom, "http://example.com/x"}, {TSemi, ";"}},
		},
		{
			name: "colon separator",
			src:  "key: value",
			want: []tok{{TAtom, "key"}, {TAssign, ":"}, {TAtom, "value"}},
		},
		{
			name: "single quoted",
			src:  `s = 'it\'s \n';`,
			want: []tok{{TAtom, "s"}, {TAssign, "="}, {TSingle, `it's \n`}, {TSemi, ";"}},
		},
		{
			name: "escapes",
			src:  `"te\"sté\n"`,
			want: []tok{{TString, "te\"sté\n"}},
		},
		{
			name: "heredoc",
			src:  "text = <<EOD\nline one\nline two\nEOD\nnext = 1",
			want: []tok{
				{TAtom, "text"}, {TAssign, "="}, {THeredoc, "line one\nline two"},
				{TAtom, "next"}, {TAssign, "="}, {TAtom, "1"},
			},
		},
		{
			name: "empty heredoc",
			src:  "t = <<X\nX\n",
			want: []tok{{TAtom, "t"}, {TAssign, "="}, {THeredoc, ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tokenize(t, tt.src)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := map[string]error{
		`"unterminated`:       ErrUnterminated,
		`'unterminated`:       ErrUnterminated,
		"/* open":             ErrUnterminated,
		`"\q"`:                ErrBadEscape,
		`"\u12"`:              ErrBadUnicode,
		"t = <<EOD\nno end\n": ErrHeredoc,
		"a = \x01":            ErrUnicodeControl,
	}
	for src, want := range tests {
		_, err := Tokenize(nil, []byte(src))
		if !errors.Is(err, want) {
			t.Errorf("%q: got %v want %v", src, err, want)
		}
		var te *TokenizeErr
		if err != nil && !errors.As(err, &te) {
			t.Errorf("%q: not a *TokenizeErr: %T", src, err)
		}
	}
}

func TestPos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a = 1\nbb = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	p := toks[3].Pos
	if l, c := p.LineCol(); l != 1 || c != 0 {
		t.Errorf("line/col: %d %d", l, c)
	}
	if l, c := toks[5].Pos.LineCol(); l != 1 || c != 5 {
		t.Errorf("line/col: %d %d", l, c)
	}
}
