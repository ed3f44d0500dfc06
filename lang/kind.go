package lang

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind is the runtime kind of a value.
type Kind uint8

// All kinds a value can classify as. The set is closed.
const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindSymbol
	KindFunction
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindSymbol:    "symbol",
	KindFunction:  "function",
	KindObject:    "object",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindUndefined,
		KindNull,
		KindBoolean,
		KindNumber,
		KindString,
		KindSymbol,
		KindFunction,
		KindObject,
	}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindUndefined, fmt.Errorf("unknown kind %q", s)
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindOf returns the kind of the first argument. With no argument it
// returns KindUndefined.
func KindOf(value ...any) Kind {
	if len(value) == 0 {
		return KindUndefined
	}
	return kindOf(value[0])
}

func kindOf(v any) Kind {
	switch v := v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case *Symbol:
		if v == nil {
			return KindNull
		}
		return KindSymbol
	case json.Number:
		return KindNumber
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunction
	case reflect.Chan, reflect.Map, reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
	}

	return KindObject
}
