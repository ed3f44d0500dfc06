package lang

import "reflect"

// IsBoolean reports whether the value is a boolean.
func IsBoolean(value ...any) bool {
	return KindOf(value...) == KindBoolean
}

// IsFunction reports whether the value is a non-nil function.
func IsFunction(value ...any) bool {
	return KindOf(value...) == KindFunction
}

// IsNil reports whether the value is null or undefined.
func IsNil(value ...any) bool {
	k := KindOf(value...)
	return k == KindUndefined || k == KindNull
}

// IsNull reports whether the value is null. An absent value is not null.
func IsNull(value ...any) bool {
	return KindOf(value...) == KindNull
}

// IsNumber reports whether the value is a number. NaN is a number, a
// numeric string is not.
func IsNumber(value ...any) bool {
	return KindOf(value...) == KindNumber
}

// IsObject reports whether the value is a non-null object. Slices, arrays
// and pointers to primitives count as objects.
func IsObject(value ...any) bool {
	return KindOf(value...) == KindObject
}

// IsPlainObject reports whether the value is a bag of keys without
// behaviour of its own: a map type or an anonymous struct type with no
// methods on either the value or the pointer receiver. Methods promoted
// from embedded fields count.
//
// Slices, arrays, pointers, time.Time, named structs and types with methods
// (http.Header, url.Values) are objects but not plain ones. Unexported
// methods are invisible to reflection, so a type whose only methods are
// unexported still counts as plain.
func IsPlainObject(value ...any) bool {
	if !IsObject(value...) {
		return false
	}

	t := reflect.TypeOf(value[0])
	if t.NumMethod() != 0 || reflect.PointerTo(t).NumMethod() != 0 {
		return false
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Map:
		return true
	case reflect.Struct:
		return t.Name() == ""
	default:
		return false
	}
}

// IsString reports whether the value is a string.
func IsString(value ...any) bool {
	return KindOf(value...) == KindString
}

// IsSymbol reports whether the value is a symbol created by NewSymbol.
func IsSymbol(value ...any) bool {
	return KindOf(value...) == KindSymbol
}

// IsUndefined reports whether the value is absent. Null is not undefined.
func IsUndefined(value ...any) bool {
	return KindOf(value...) == KindUndefined
}
