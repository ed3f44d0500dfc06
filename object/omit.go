// Package object shapes map-like values.
package object

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Omit returns a shallow copy of obj without the keys listed in exclusions.
//
// The result is always a new map of the same type, even when nothing is
// excluded. Values are shared with obj, which is never modified. Exclusions
// that are not keys of obj are ignored.
func Omit[M ~map[K]V, K comparable, V any](obj M, exclusions []K) M {
	result := make(M, len(obj))

	for key, value := range obj {
		if !slices.Contains(exclusions, key) {
			result[key] = value
		}
	}

	return result
}

// OmitAny is Omit for values whose type is only known at runtime.
//
// Maps of any type are copied into a new map of the same type; a key is
// excluded when its string form is listed. Structs, and non-nil pointers to
// structs, become a map[string]any of their own exported fields, keyed by
// json tag name when one is set. Fields promoted from embedded structs are
// inherited and never included. When two fields resolve to the same key, a
// single json-tagged one wins and otherwise neither is included. Any other
// value yields an empty map[string]any.
func OmitAny(obj any, exclusions []string) any {
	v := reflect.ValueOf(obj)

	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		v = v.Elem()
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Map:
		return omitMap(v, exclusions)
	case reflect.Struct:
		return omitStruct(v, exclusions)
	default:
		return map[string]any{}
	}
}

func omitMap(v reflect.Value, exclusions []string) any {
	result := reflect.MakeMapWithSize(v.Type(), v.Len())

	iter := v.MapRange()
	for iter.Next() {
		if slices.Contains(exclusions, keyString(iter.Key())) {
			continue
		}
		result.SetMapIndex(iter.Key(), iter.Value())
	}

	return result.Interface()
}

func omitStruct(v reflect.Value, exclusions []string) map[string]any {
	fields := structFields(v.Type())
	result := make(map[string]any, len(fields))

	for name, index := range fields {
		if slices.Contains(exclusions, name) {
			continue
		}
		result[name] = v.Field(index).Interface()
	}

	return result
}

// structFields maps every key of a struct type to the index of the field it
// is read from. When several fields resolve to the same key, the only
// json-tagged one wins; with no such field the key is dropped, as
// encoding/json does.
func structFields(t reflect.Type) map[string]int {
	type candidate struct {
		index  int
		tagged bool
	}

	byName := make(map[string][]candidate, t.NumField())

	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}

		name, tagged, ok := fieldName(field)
		if !ok {
			continue
		}
		byName[name] = append(byName[name], candidate{index: i, tagged: tagged})
	}

	fields := make(map[string]int, len(byName))

	for name, candidates := range byName {
		if len(candidates) == 1 {
			fields[name] = candidates[0].index
			continue
		}

		winner, found := -1, 0
		for _, c := range candidates {
			if c.tagged {
				winner = c.index
				found++
			}
		}

		if found == 1 {
			fields[name] = winner
		}
	}

	return fields
}

// keyString returns the form a map key is matched against exclusions with.
func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	if key.Kind() == reflect.Interface && !key.IsNil() && key.Elem().Kind() == reflect.String {
		return key.Elem().String()
	}
	return fmt.Sprint(key.Interface())
}

// fieldName returns the key of a struct field and whether a json tag named it.
func fieldName(field reflect.StructField) (string, bool, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, false, true
	}

	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false, false
	case "":
		return field.Name, false, true
	default:
		return name, true, true
	}
}

// Keys returns the keys of a map-like value as strings, as OmitAny matches
// them. It returns nil for anything OmitAny would turn into an empty map.
func Keys(obj any) []string {
	v := reflect.ValueOf(obj)

	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		v = v.Elem()
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, keyString(key))
		}
		slices.Sort(keys)
		return keys
	case reflect.Struct:
		return slices.Sorted(maps.Keys(omitStruct(v, nil)))
	default:
		return nil
	}
}

// Member is a key of a map-like value together with its value.
type Member struct {
	Key   string
	Value any
}

// Members returns the members of a map-like value sorted by key, with keys
// in the same form Keys returns them. It returns nil for anything else.
func Members(obj any) []Member {
	v := reflect.ValueOf(obj)

	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		v = v.Elem()
	}

	var members []Member

	switch v.Kind() { //nolint:exhaustive
	case reflect.Map:
		members = make([]Member, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			members = append(members, Member{Key: keyString(iter.Key()), Value: iter.Value().Interface()})
		}
	case reflect.Struct:
		fields := omitStruct(v, nil)
		members = make([]Member, 0, len(fields))
		for key, value := range fields {
			members = append(members, Member{Key: key, Value: value})
		}
	default:
		return nil
	}

	slices.SortFunc(members, func(a, b Member) int {
		return strings.Compare(a.Key, b.Key)
	})

	return members
}
