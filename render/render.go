// Package render holds the helpers called by generated String methods.
//
// Generated code concatenates string literals with calls into this package,
// so every helper returns a string and none of them allocate for the masked
// cases.
package render

import (
	"fmt"
	"reflect"
	"strings"
)

// Mask replaces the value of a sensitive property.
const Mask = "██"

// Absent is how an absent value renders when it is printed as a value.
const Absent = "null"

// Present returns s when ok, otherwise the rendering of an absent value.
func Present(ok bool, s string) string {
	if ok {
		return s
	}
	return Absent
}

// Array renders a slice as [a, b, c]. A nil slice renders as an absent value.
func Array[E any](s []E) string {
	if s == nil {
		return Absent
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}

// Sprint renders a present value with its default format.
func Sprint(v any) string {
	return fmt.Sprint(v)
}

// Elem renders the value p points to, or absent when p is nil.
func Elem[T any](p *T, absent string) string {
	if p == nil {
		return absent
	}
	return fmt.Sprint(*p)
}

// Value renders v when ok, otherwise absent.
// Used for nullable interfaces, maps, channels and funcs.
func Value(ok bool, v any, absent string) string {
	if !ok {
		return absent
	}
	return fmt.Sprint(v)
}

// Fixed renders a fixed-length array reached through a method call, where
// slicing the result is not possible.
func Fixed(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array {
		return fmt.Sprint(v)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, rv.Index(i).Interface())
	}
	b.WriteByte(']')
	return b.String()
}
