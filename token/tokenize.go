package token

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits src into tokens. White space, # and // line comments
// and nested /* */ block comments are skipped.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '#' || (c == '/' && i+1 < n && src[i+1] == '/'):
			i = lineEnd(src, i)
		case c == '/' && i+1 < n && src[i+1] == '*':
			j, err := blockCommentEnd(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			i = j
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',' || c == ';' || c == '=' || c == ':':
			dst = append(dst, Token{Type: punctType[c], Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '"':
			v, sz, err := unquotePrefix(string(src[i:]))
			if err != nil {
				return nil, NewTokenizeErr(fmt.Errorf("string: %w", err), pd.Pos(i+sz))
			}
			dst = append(dst, Token{Type: TString, Pos: pd.Pos(i), Bytes: src[i : i+sz], Value: v})
			i += sz
		case c == '\'':
			v, sz, err := unquoteSingle(string(src[i:]))
			if err != nil {
				return nil, NewTokenizeErr(fmt.Errorf("string: %w", err), pd.Pos(i))
			}
			dst = append(dst, Token{Type: TSingle, Pos: pd.Pos(i), Bytes: src[i : i+sz], Value: v})
			i += sz
		case isHeredocStart(src[i:]):
			v, sz, err := heredoc(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{Type: THeredoc, Pos: pd.Pos(i), Bytes: src[i : i+sz], Value: v})
			i += sz
		default:
			sz, err := atomEnd(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i+sz))
			}
			if sz == 0 {
				r, _ := utf8.DecodeRune(src[i:])
				return nil, UnexpectedErr(fmt.Sprintf("%q", r), pd.Pos(i))
			}
			dst = append(dst, Token{Type: TAtom, Pos: pd.Pos(i), Bytes: src[i : i+sz], Value: string(src[i : i+sz])})
			i += sz
		}
	}
	return dst, nil
}

var punctType = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	',': TComma,
	';': TSemi,
	'=': TAssign,
	':': TAssign,
}

func lineEnd(d []byte, i int) int {
	j := bytes.IndexByte(d[i:], '\n')
	if j < 0 {
		return len(d)
	}
	return i + j + 1
}

// blockCommentEnd returns the offset after the comment starting at i,
// counting nested comments.
func blockCommentEnd(d []byte, i int) (int, error) {
	depth := 0
	for i < len(d) {
		switch {
		case bytes.HasPrefix(d[i:], []byte("/*")):
			depth++
			i += 2
		case bytes.HasPrefix(d[i:], []byte("*/")):
			depth--
			i += 2
			if depth == 0 {
				return i, nil
			}
		default:
			i++
		}
	}
	return i, fmt.Errorf("comment: %w", ErrUnterminated)
}

func isHeredocStart(d []byte) bool {
	if !bytes.HasPrefix(d, []byte("<<")) || len(d) < 3 {
		return false
	}
	return d[2] >= 'A' && d[2] <= 'Z'
}

// heredoc decodes <<TAG\n...\nTAG. The value excludes the newline
// before the closing tag.
func heredoc(d []byte) (string, int, error) {
	j := 2
	for j < len(d) && d[j] >= 'A' && d[j] <= 'Z' {
		j++
	}
	tag := d[2:j]
	if j >= len(d) || d[j] != '\n' {
		return "", 0, fmt.Errorf("%w: tag %q must end the line", ErrHeredoc, tag)
	}
	start := j + 1
	for ln := start; ln <= len(d); {
		end := bytes.IndexByte(d[ln:], '\n')
		line := d[ln:]
		if end >= 0 {
			line = d[ln : ln+end]
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), tag) {
			body := ""
			if ln > start {
				body = string(d[start : ln-1])
			}
			return body, ln + len(line), nil
		}
		if end < 0 {
			break
		}
		ln += end + 1
	}
	return "", 0, fmt.Errorf("%w: %w: missing %q", ErrHeredoc, ErrUnterminated, tag)
}

// atomEnd returns the length of the bare atom at the start of d. A colon
// ends an atom only when followed by white space, the end of input, a
// quote or an opening bracket, so that atoms such as URLs survive.
// ${name} references are part of the atom.
func atomEnd(d []byte) (int, error) {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, ErrBadUTF8
		}
		switch r {
		case '$':
			if i+1 < len(d) && d[i+1] == '{' {
				if j := bytes.IndexByte(d[i:], '}'); j > 0 {
					i += j + 1
					continue
				}
			}
		case '{', '}', '[', ']', ',', ';', '=', '"', '\'':
			return i, nil
		case ':':
			if i+1 >= len(d) {
				return i, nil
			}
			switch d[i+1] {
			case ' ', '\t', '\r', '\n', '"', '\'', '{', '[':
				return i, nil
			}
		}
		if unicode.IsSpace(r) {
			return i, nil
		}
		if unicode.IsControl(r) {
			return i, ErrUnicodeControl
		}
		i += sz
	}
	return i, nil
}
