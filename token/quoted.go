package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var keywords = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
	"on": true, "off": true,
	"null": true, "nil": true, "~": true,
}

// IsKeyword reports whether v would be read back as a boolean or null
// when written bare.
func IsKeyword(v string) bool {
	return keywords[strings.ToLower(v)]
}

// NeedsQuote reports whether v must be quoted to be written as a bare
// key or atom.
func NeedsQuote(v string) bool {
	if v == "" || IsKeyword(v) {
		return true
	}
	for i, r := range v {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.' || r == '/'):
		default:
			return true
		}
	}
	return false
}

// Quote returns v as a double quoted string with JSON escapes.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if unicode.IsControl(r) {
				h := strconv.FormatInt(int64(r), 16)
				b.WriteString(`\u`)
				b.WriteString(strings.Repeat("0", 4-len(h)))
				b.WriteString(h)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes a double quoted string, which must span all of v.
func Unquote(v string) (string, error) {
	s, n, err := unquotePrefix(v)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return s, nil
}

// unquotePrefix decodes the double quoted string at the start of d,
// returning its value and the number of bytes it occupies.
func unquotePrefix(d string) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", i, ErrBadUTF8
		}
		switch {
		case r == '"':
			return b.String(), i + 1, nil
		case r == '\\':
			i++
			if i >= len(d) {
				return "", i, ErrUnterminated
			}
			c := d[i]
			i++
			switch c {
			case '"', '\\', '/':
				b.WriteByte(c)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r, n, err := unicodeEscape(d[i:])
				if err != nil {
					return "", i, err
				}
				b.WriteRune(r)
				i += n
			default:
				return "", i - 1, ErrBadEscape
			}
			continue
		case r == '\n' || r == '\t':
		case unicode.IsControl(r):
			return "", i, ErrUnicodeControl
		}
		b.WriteRune(r)
		i += sz
	}
	return "", i, ErrUnterminated
}

// unicodeEscape decodes the hex digits following \u, joining surrogate
// pairs.
func unicodeEscape(d string) (rune, int, error) {
	hi, ok := hex4(d)
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	if hi < 0xd800 || hi > 0xdbff {
		return hi, 4, nil
	}
	if len(d) < 10 || d[4] != '\\' || d[5] != 'u' {
		return utf8.RuneError, 4, nil
	}
	lo, ok := hex4(d[6:])
	if !ok || lo < 0xdc00 || lo > 0xdfff {
		return utf8.RuneError, 4, nil
	}
	return ((hi-0xd800)<<10 | (lo - 0xdc00)) + 0x10000, 10, nil
}

func hex4(d string) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(d[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// unquoteSingle decodes the single quoted string at the start of d.
// Only \' is an escape.
func unquoteSingle(d string) (string, int, error) {
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\'':
			return b.String(), i + 1, nil
		case c == '\\' && i+1 < len(d) && d[i+1] == '\'':
			b.WriteByte('\'')
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return "", i, ErrUnterminated
}
