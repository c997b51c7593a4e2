package ucl

// Typed is implemented by Object and by the typed views of this
// package.
type Typed interface {
	Object() Object
	castFrom(Object) (any, error)
}

type Boolean struct{ obj Object }

func NewBoolean(b bool) Boolean {
	return Boolean{obj: newObject(&value{typ: BooleanType, b: b})}
}

func (b Boolean) Object() Object { return b.obj }
func (b Boolean) Value() bool    { return b.obj.val().b }
func (b Boolean) Key() string    { return b.obj.Key() }

func (b Boolean) Compare(c Boolean) int { return Compare(b.obj, c.obj) }

func (Boolean) castFrom(o Object) (any, error) {
	if t := o.Type(); t != BooleanType {
		return Boolean{}, mismatch(BooleanType, t)
	}
	return Boolean{obj: o}, nil
}

type Integer struct{ obj Object }

func NewInteger(i int64) Integer {
	return Integer{obj: newObject(&value{typ: IntegerType, i: i})}
}

func (i Integer) Object() Object { return i.obj }
func (i Integer) Value() int64   { return i.obj.val().i }
func (i Integer) Key() string    { return i.obj.Key() }

func (i Integer) Compare(j Integer) int { return Compare(i.obj, j.obj) }

func (Integer) castFrom(o Object) (any, error) {
	if t := o.Type(); t != IntegerType {
		return Integer{}, mismatch(IntegerType, t)
	}
	return Integer{obj: o}, nil
}

type Real struct{ obj Object }

func NewReal(f float64) Real {
	return Real{obj: newObject(&value{typ: RealType, f: f})}
}

func (r Real) Object() Object { return r.obj }
func (r Real) Value() float64 { return r.obj.val().f }
func (r Real) Key() string    { return r.obj.Key() }

func (r Real) Compare(s Real) int { return Compare(r.obj, s.obj) }

func (Real) castFrom(o Object) (any, error) {
	if t := o.Type(); t != RealType {
		return Real{}, mismatch(RealType, t)
	}
	return Real{obj: o}, nil
}

type String struct{ obj Object }

func NewString(s string) String {
	return String{obj: newObject(&value{typ: StringType, s: s})}
}

func (s String) Object() Object { return s.obj }
func (s String) Value() string  { return s.obj.val().s }
func (s String) Key() string    { return s.obj.Key() }

func (s String) Compare(t String) int { return Compare(s.obj, t.obj) }

func (String) castFrom(o Object) (any, error) {
	if t := o.Type(); t != StringType {
		return String{}, mismatch(StringType, t)
	}
	return String{obj: o}, nil
}
