// Package parse provides UCL parsing support.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihil-go/nihil/debug"
	"github.com/nihil-go/nihil/format"
	"github.com/nihil-go/nihil/token"
	"github.com/nihil-go/nihil/ucl"
)

// Parse parses a UCL document. The top level is an object whose braces
// may be omitted; a document holding a single array or scalar is also
// accepted. Syntax errors are *Error values matching ErrParse.
func Parse(d []byte, opts ...ParseOption) (ucl.Object, error) {
	pOpts := &parseOpts{format: format.ConfigFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsYAML() {
		return parseYAML(d)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return ucl.Object{}, err
	}
	if debug.Parse() {
		for i := range toks {
			debug.Logf("\t%s %q\n", toks[i].Type, toks[i].Bytes)
		}
	}
	p := &parser{toks: toks, opts: pOpts, eof: token.Token{Pos: token.NewPosDoc(d).Pos(len(d))}}
	return p.document()
}

// ParseFile reads and parses the file at path. Unless a format option
// is given, files ending in .yaml or .yml are parsed as YAML. Errors
// reading the file keep their underlying cause.
func ParseFile(path string, opts ...ParseOption) (ucl.Object, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return ucl.Object{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if f, ok := format.FromSuffix(filepath.Ext(path)); ok && f.IsYAML() {
		opts = append([]ParseOption{ParseFormat(f)}, opts...)
	}
	obj, err := Parse(d, opts...)
	if err != nil {
		return ucl.Object{}, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
	eof  token.Token
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return &p.eof
	}
	return &p.toks[p.i]
}

func (p *parser) atEOF() bool { return p.i >= len(p.toks) }

func (p *parser) next() *token.Token {
	t := p.peek()
	if !p.atEOF() {
		p.i++
	}
	return t
}

func (p *parser) skipSeparators() {
	for !p.atEOF() {
		switch p.peek().Type {
		case token.TSemi, token.TComma:
			p.i++
		default:
			return
		}
	}
}

func (p *parser) document() (ucl.Object, error) {
	if p.atEOF() {
		return ucl.NewObject().Object(), nil
	}
	var (
		res ucl.Object
		err error
	)
	switch t := p.peek(); {
	case t.Type == token.TLCurl || t.Type == token.TLSquare:
		res, err = p.value()
	case len(p.toks) == 1 && t.Type.IsString():
		res, err = p.value()
	default:
		var m ucl.Map[ucl.Object]
		m, err = p.objectBody(false)
		res = m.Object()
	}
	if err != nil {
		return ucl.Object{}, err
	}
	p.skipSeparators()
	if !p.atEOF() {
		return ucl.Object{}, errAt(p.peek(), "unexpected %q after document", p.peek().Bytes)
	}
	return res, nil
}

// objectBody parses entries up to a closing brace, or to the end of
// input when braced is false.
func (p *parser) objectBody(braced bool) (ucl.Map[ucl.Object], error) {
	obj := ucl.NewObject()
	implicit := map[string]bool{}
	nested := map[string]bool{}
	for {
		p.skipSeparators()
		t := p.peek()
		if p.atEOF() {
			if braced {
				return obj, errAt(t, "expected '}'")
			}
			return obj, nil
		}
		if t.Type == token.TRCurl {
			if !braced {
				return obj, errAt(t, "unexpected '}'")
			}
			p.next()
			return obj, nil
		}
		keys, err := p.keys()
		if err != nil {
			return obj, err
		}
		val, err := p.value()
		if err != nil {
			return obj, err
		}
		for i := len(keys) - 1; i > 0; i-- {
			wrap := ucl.NewObject()
			wrap.Insert(keys[i], val)
			val = wrap.Object()
		}
		depth := len(keys) - 1
		if depth > 0 && nested[keys[0]] && !implicit[keys[0]] {
			prev, _ := obj.Find(keys[0])
			m := p.merge(ucl.MustCast[ucl.Map[ucl.Object]](prev), val, depth, implicit, keys[0])
			obj.Insert(keys[0], m.Object())
			continue
		}
		p.insert(&obj, implicit, keys[0], keys[0], val)
		nested[keys[0]] = depth > 0 && !implicit[keys[0]]
	}
}

// merge adds the entries of src to dst for sections written with
// nested keys, so that `s a {..}` and `s b {..}` both land in s.
// Objects are merged down to depth levels; below that a repeated key
// collects its values into an array.
func (p *parser) merge(dst ucl.Map[ucl.Object], src ucl.Object, depth int, implicit map[string]bool, path string) ucl.Map[ucl.Object] {
	for k, v := range src.Entries() {
		kp := path + "\x00" + k
		prev, ok := dst.Find(k)
		if ok && depth > 1 && !implicit[kp] && prev.Type() == ucl.ObjectType && v.Type() == ucl.ObjectType {
			m := p.merge(ucl.MustCast[ucl.Map[ucl.Object]](prev), v, depth-1, implicit, kp)
			dst.Insert(k, m.Object())
			continue
		}
		p.insert(&dst, implicit, kp, k, v)
	}
	return dst
}

// keys reads a key and its separator. Several keys in a row followed
// by '{' denote nested objects, as in `section "name" { ... }`.
func (p *parser) keys() ([]string, error) {
	t := p.next()
	if !t.Type.IsString() || t.Type == token.THeredoc {
		return nil, errAt(t, "expected key, got %q", t.Bytes)
	}
	keys := []string{t.Value}
	for {
		switch n := p.peek(); n.Type {
		case token.TAssign:
			if len(keys) > 1 {
				return nil, errAt(n, "expected '{' after nested keys")
			}
			p.next()
			return keys, nil
		case token.TLCurl, token.TLSquare:
			if n.Type == token.TLSquare && len(keys) > 1 {
				return nil, errAt(n, "expected '{' after nested keys")
			}
			return keys, nil
		case token.TAtom, token.TString, token.TSingle:
			if p.atEOF() {
				return nil, errAt(n, "expected value for key %q", keys[0])
			}
			if len(keys) == 1 && p.endsEntry(p.i) {
				return keys, nil
			}
			keys = append(keys, n.Value)
			p.next()
		case token.THeredoc:
			if len(keys) > 1 {
				return nil, errAt(n, "expected '{' after nested keys")
			}
			return keys, nil
		default:
			return nil, errAt(n, "expected '=' or ':' after key %q", keys[0])
		}
	}
}

// endsEntry reports whether the token at i is the last of an entry:
// it is followed by a separator, a closing brace, a line break or the
// end of input.
func (p *parser) endsEntry(i int) bool {
	if i+1 >= len(p.toks) {
		return true
	}
	n := &p.toks[i+1]
	switch n.Type {
	case token.TSemi, token.TComma, token.TRCurl:
		return true
	}
	l, _ := p.toks[i].Pos.LineCol()
	nl, _ := n.Pos.LineCol()
	return nl > l
}

// insert stores val under key. A repeated key turns into an array of
// all its values; implicit records, by path, the arrays made that way.
func (p *parser) insert(obj *ucl.Map[ucl.Object], implicit map[string]bool, path, key string, val ucl.Object) {
	prev, ok := obj.Find(key)
	if !ok || p.opts.noImplicitArrays {
		obj.Insert(key, val)
		return
	}
	if implicit[path] {
		arr := ucl.MustCast[ucl.Array[ucl.Object]](prev)
		arr.PushBack(val)
		obj.Insert(key, arr.Object())
		return
	}
	implicit[path] = true
	obj.Insert(key, ucl.NewArray(prev, val).Object())
}

func (p *parser) value() (ucl.Object, error) {
	if p.atEOF() {
		return ucl.Object{}, errAt(p.peek(), "unexpected end of input")
	}
	t := p.next()
	switch t.Type {
	case token.TLCurl:
		m, err := p.objectBody(true)
		return m.Object(), err
	case token.TLSquare:
		return p.array()
	case token.TString, token.THeredoc:
		return ucl.NewString(p.expand(t.Value)).Object(), nil
	case token.TSingle:
		return ucl.NewString(t.Value).Object(), nil
	case token.TAtom:
		return p.atom(t)
	}
	return ucl.Object{}, errAt(t, "unexpected %q", t.Bytes)
}

func (p *parser) array() (ucl.Object, error) {
	arr := ucl.NewArray[ucl.Object]()
	for {
		p.skipSeparators()
		t := p.peek()
		if p.atEOF() {
			return ucl.Object{}, errAt(t, "expected ']'")
		}
		if t.Type == token.TRSquare {
			p.next()
			return arr.Object(), nil
		}
		v, err := p.value()
		if err != nil {
			return ucl.Object{}, err
		}
		arr.PushBack(v)
	}
}

func (p *parser) atom(t *token.Token) (ucl.Object, error) {
	switch strings.ToLower(t.Value) {
	case "true", "yes", "on":
		return ucl.NewBoolean(true).Object(), nil
	case "false", "no", "off":
		return ucl.NewBoolean(false).Object(), nil
	case "null":
		return ucl.Null(), nil
	}
	n, ok, err := token.ParseNumber(t.Value)
	if err != nil {
		return ucl.Object{}, &Error{Pos: *t.Pos, Err: err}
	}
	if ok {
		if n.IsFloat {
			return ucl.NewReal(n.Float).Object(), nil
		}
		return ucl.NewInteger(n.Int).Object(), nil
	}
	return ucl.NewString(p.expand(t.Value)).Object(), nil
}

// expand replaces $name and ${name} with registered variables. Unknown
// variables are left as written and $$ yields $. Without any variables
// or environment lookup, strings are kept verbatim.
func (p *parser) expand(s string) string {
	if !p.opts.expanding() || !strings.ContainsRune(s, '$') {
		return s
	}
	b := &strings.Builder{}
	for i := 0; i < len(s); {
		c := s[i]
		if c != '$' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		if s[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}
		name, end := varName(s, i+1)
		if name == "" {
			b.WriteByte(c)
			i++
			continue
		}
		v, ok := p.opts.lookup(name)
		if !ok {
			b.WriteString(s[i:end])
		} else {
			b.WriteString(v)
		}
		i = end
	}
	return b.String()
}

// varName reads the variable name starting at s[i], after the '$'.
func varName(s string, i int) (string, int) {
	if s[i] == '{' {
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			return "", i
		}
		return s[i+1 : i+j], i + j + 1
	}
	j := i
	for j < len(s) && isVarChar(s[j]) {
		j++
	}
	return s[i:j], j
}

func isVarChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
