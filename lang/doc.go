// Package lang classifies arbitrary Go values by runtime kind.
//
// Values that cross an untyped boundary (decoded JSON or YAML, interface{}
// plumbing, plugin arguments) lose their static type. The predicates in this
// package recover it through a closed set of kinds:
//
//	undefined  no value at all, or the Undefined marker
//	null       nil, or a typed nil pointer, map, slice, func, chan or interface
//	boolean    bool and named bool types
//	number     every integer, float and complex kind, NaN included, and json.Number
//	string     string and named string types
//	symbol     a *Symbol created with NewSymbol
//	function   a non-nil func value
//	object     everything else: maps, slices, arrays, structs, pointers
//
// Every predicate takes its argument as optional. Calling IsUndefined() with no
// argument is the same as calling IsUndefined(Undefined).
//
// All functions are pure and safe for concurrent use.
package lang
