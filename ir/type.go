package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	TimestampType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:    "Object",
		ArrayType:     "Array",
		StringType:    "String",
		NumberType:    "Number",
		BoolType:      "Bool",
		NullType:      "Null",
		TimestampType: "Timestamp",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Bool":      BoolType,
		"Number":    NumberType,
		"String":    StringType,
		"Timestamp": TimestampType,
		"Array":     ArrayType,
		"Object":    ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// IsScalar reports whether t is one of the scalar types.
func (t Type) IsScalar() bool {
	switch t {
	case NullType, NumberType, StringType, BoolType, TimestampType:
		return true
	default:
		return false
	}
}

// IsContainer reports whether t is a sequence or mapping type.
func (t Type) IsContainer() bool {
	return t == ObjectType || t == ArrayType
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	return t.IsScalar() || t.IsContainer()
}
