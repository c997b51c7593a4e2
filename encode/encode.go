package encode

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nihil-go/nihil/format"
	"github.com/nihil-go/nihil/token"
	"github.com/nihil-go/nihil/ucl"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	b       strings.Builder
	indent  int
	format  format.Format
	newline bool

	Color func(ucl.Type, ColorAttr, string) string
}

// Encode writes obj to w in the selected format, JSON by default.
// Output carries no trailing newline, except in config format where
// every entry ends its line.
func Encode(obj ucl.Object, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		es.json(obj, 0)
	case format.CompactJSONFormat:
		es.compact(obj)
	case format.ConfigFormat:
		es.config(obj)
	case format.YAMLFormat:
		es.yaml(obj)
	default:
		return format.ErrBadFormat
	}
	out := es.b.String()
	if es.newline && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

func (es *EncState) write(s string) { es.b.WriteString(s) }

func (es *EncState) nl(depth int) {
	es.b.WriteByte('\n')
	es.b.WriteString(strings.Repeat(" ", es.indent*depth))
}

func (es *EncState) ind(depth int) {
	es.b.WriteString(strings.Repeat(" ", es.indent*depth))
}

func (es *EncState) sep(t ucl.Type, s string) {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	es.write(s)
}

func (es *EncState) key(k string, quote bool) {
	if quote || token.NeedsQuote(k) {
		k = token.Quote(k)
	}
	if es.Color != nil {
		k = es.Color(ucl.ObjectType, KeyColor, k)
	}
	es.write(k)
}

func (es *EncState) scalar(obj ucl.Object) {
	s := ScalarString(obj)
	if es.Color != nil {
		s = es.Color(obj.Type(), ValueColor, s)
	}
	es.write(s)
}

// ScalarString renders a scalar as it appears in every output format.
// Reals always carry a decimal point or exponent; non-finite reals
// render as null.
func ScalarString(obj ucl.Object) string {
	switch obj.Type() {
	case ucl.BooleanType:
		return strconv.FormatBool(ucl.MustCast[ucl.Boolean](obj).Value())
	case ucl.IntegerType:
		return strconv.FormatInt(ucl.MustCast[ucl.Integer](obj).Value(), 10)
	case ucl.RealType:
		return formatReal(ucl.MustCast[ucl.Real](obj).Value())
	case ucl.StringType:
		return token.Quote(ucl.MustCast[ucl.String](obj).Value())
	}
	return "null"
}

func formatReal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (es *EncState) json(obj ucl.Object, depth int) {
	t := obj.Type()
	switch t {
	case ucl.ArrayType:
		if obj.Len() == 0 {
			es.sep(t, "[]")
			return
		}
		es.sep(t, "[")
		for i, e := range obj.Elems() {
			if i > 0 {
				es.sep(t, ",")
			}
			es.nl(depth + 1)
			es.json(e, depth+1)
		}
		es.nl(depth)
		es.sep(t, "]")
	case ucl.ObjectType:
		if obj.Len() == 0 {
			es.sep(t, "{}")
			return
		}
		es.sep(t, "{")
		first := true
		for k, e := range obj.Entries() {
			if !first {
				es.sep(t, ",")
			}
			first = false
			es.nl(depth + 1)
			es.key(k, true)
			es.sep(t, ": ")
			es.json(e, depth+1)
		}
		es.nl(depth)
		es.sep(t, "}")
	default:
		es.scalar(obj)
	}
}

func (es *EncState) compact(obj ucl.Object) {
	t := obj.Type()
	switch t {
	case ucl.ArrayType:
		es.sep(t, "[")
		for i, e := range obj.Elems() {
			if i > 0 {
				es.sep(t, ",")
			}
			es.compact(e)
		}
		es.sep(t, "]")
	case ucl.ObjectType:
		es.sep(t, "{")
		first := true
		for k, e := range obj.Entries() {
			if !first {
				es.sep(t, ",")
			}
			first = false
			es.key(k, true)
			es.sep(t, ":")
			es.compact(e)
		}
		es.sep(t, "}")
	default:
		es.scalar(obj)
	}
}

// config writes the UCL configuration style. The top level object has
// no braces.
func (es *EncState) config(obj ucl.Object) {
	switch obj.Type() {
	case ucl.ObjectType:
		es.configEntries(obj, 0)
	case ucl.ArrayType:
		es.configArray(obj, 0)
		es.write("\n")
	default:
		es.scalar(obj)
		es.write("\n")
	}
}

func (es *EncState) configEntries(obj ucl.Object, depth int) {
	for k, e := range obj.Entries() {
		es.ind(depth)
		es.key(k, false)
		switch t := e.Type(); t {
		case ucl.ObjectType:
			es.sep(t, " {\n")
			es.configEntries(e, depth+1)
			es.ind(depth)
			es.sep(t, "}")
			es.write("\n")
		case ucl.ArrayType:
			es.write(" ")
			es.configArray(e, depth)
			es.write("\n")
		default:
			es.sep(ucl.ObjectType, " = ")
			es.scalar(e)
			es.sep(ucl.ObjectType, ";")
			es.write("\n")
		}
	}
}

func (es *EncState) configArray(obj ucl.Object, depth int) {
	t := ucl.ArrayType
	es.sep(t, "[\n")
	for _, e := range obj.Elems() {
		es.ind(depth + 1)
		switch e.Type() {
		case ucl.ObjectType:
			es.sep(ucl.ObjectType, "{\n")
			es.configEntries(e, depth+2)
			es.ind(depth + 1)
			es.sep(ucl.ObjectType, "}")
		case ucl.ArrayType:
			es.configArray(e, depth+1)
		default:
			es.scalar(e)
		}
		es.sep(t, ",")
		es.write("\n")
	}
	es.ind(depth)
	es.sep(t, "]")
}

// yaml writes block mappings for objects outside arrays and flow
// collections everywhere else.
func (es *EncState) yaml(obj ucl.Object) {
	switch obj.Type() {
	case ucl.ObjectType:
		if obj.Len() == 0 {
			es.sep(ucl.ObjectType, "{}")
			return
		}
		es.yamlBlock(obj, 0)
	default:
		es.yamlFlow(obj, 0)
	}
}

func (es *EncState) yamlBlock(obj ucl.Object, depth int) {
	first := true
	for k, e := range obj.Entries() {
		if !first {
			es.write("\n")
		}
		first = false
		es.ind(depth)
		es.key(k, false)
		es.sep(ucl.ObjectType, ":")
		if e.Type() == ucl.ObjectType && e.Len() > 0 {
			es.write("\n")
			es.yamlBlock(e, depth+1)
			continue
		}
		es.write(" ")
		es.yamlFlow(e, depth)
	}
}

func (es *EncState) yamlFlow(obj ucl.Object, depth int) {
	t := obj.Type()
	switch t {
	case ucl.ArrayType:
		if obj.Len() == 0 {
			es.sep(t, "[]")
			return
		}
		es.sep(t, "[")
		for i, e := range obj.Elems() {
			if i > 0 {
				es.sep(t, ",")
			}
			es.nl(depth + 1)
			es.yamlFlow(e, depth+1)
		}
		es.nl(depth)
		es.sep(t, "]")
	case ucl.ObjectType:
		if obj.Len() == 0 {
			es.sep(t, "{}")
			return
		}
		es.sep(t, "{")
		first := true
		for k, e := range obj.Entries() {
			if !first {
				es.sep(t, ",")
			}
			first = false
			es.nl(depth + 1)
			es.key(k, false)
			es.sep(t, ": ")
			es.yamlFlow(e, depth+1)
		}
		es.nl(depth)
		es.sep(t, "}")
	default:
		es.scalar(obj)
	}
}
