package value

import "fmt"

// TypeTag names the kind of a Value. It distinguishes array and null
// from object, unlike a plain typeof.
type TypeTag string

const (
	TagObject    TypeTag = "object"
	TagArray     TypeTag = "array"
	TagNull      TypeTag = "null"
	TagUndefined TypeTag = "undefined"
	TagBoolean   TypeTag = "boolean"
	TagNumber    TypeTag = "number"
	TagString    TypeTag = "string"
	TagFunction  TypeTag = "function"
	TagSymbol    TypeTag = "symbol"
	TagBigInt    TypeTag = "bigint"
)

// AllTags lists every TypeTag in declaration order.
var AllTags = []TypeTag{
	TagObject, TagArray, TagNull, TagUndefined, TagBoolean,
	TagNumber, TagString, TagFunction, TagSymbol, TagBigInt,
}

// ParseTypeTag returns the tag named s.
func ParseTypeTag(s string) (TypeTag, error) {
	for _, t := range AllTags {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown type tag %q", s)
}

// TypeOf classifies v. A nil interface classifies as undefined.
func TypeOf(v Value) TypeTag {
	switch v.(type) {
	case Array:
		return TagArray
	case Null:
		return TagNull
	case nil, Undefined:
		return TagUndefined
	case Bool:
		return TagBoolean
	case Number:
		return TagNumber
	case String:
		return TagString
	case BigInt:
		return TagBigInt
	case *Symbol:
		return TagSymbol
	case Func:
		return TagFunction
	case *Object:
		if v.(*Object) == nil {
			return TagNull
		}
		return TagObject
	default:
		return TagObject
	}
}

// IsObject reports whether v is a plain record: not an array, scalar,
// null or undefined.
func IsObject(v Value) bool {
	obj, ok := v.(*Object)
	return ok && obj != nil
}

// IsArray reports whether v is an Array.
func IsArray(v Value) bool {
	_, ok := v.(Array)
	return ok
}

// TagOf resolves a format exemplar to the tag it stands for.
// A String naming a tag denotes that tag; anything else denotes its own
// classification.
func TagOf(exemplar Value) TypeTag {
	if s, ok := exemplar.(String); ok {
		if t, err := ParseTypeTag(string(s)); err == nil {
			return t
		}
	}
	return TypeOf(exemplar)
}
