package ucl

import "fmt"

type Type int

const (
	NullType Type = iota
	BooleanType
	IntegerType
	RealType
	StringType
	ArrayType
	ObjectType
)

func Types() []Type {
	return []Type{NullType, BooleanType, IntegerType, RealType, StringType, ArrayType, ObjectType}
}

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BooleanType:
		return "boolean"
	case IntegerType:
		return "integer"
	case RealType:
		return "real"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return fmt.Sprintf("<unknown type %d>", int(t))
	}
}

func (t Type) IsScalar() bool { return t != ArrayType && t != ObjectType }
