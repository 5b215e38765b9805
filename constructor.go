package redacted

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// typeParamList renders "[T any, K comparable]", empty without type parameters.
func typeParamList(tps []TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		parts[i] = tp.Name + " " + tp.Bound
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgList renders "[T, K]", empty without type parameters.
func typeArgList(tps []TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	names := make([]string, len(tps))
	for i, tp := range tps {
		names[i] = tp.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// TypeRef returns the generated type instantiated with its own type parameters.
func TypeRef(req Request) string {
	return req.ClassName + typeArgList(req.TypeParams)
}

// SuperRef returns the embedded type instantiated with the same type parameters.
func SuperRef(req Request) string {
	return req.Extends + typeArgList(req.TypeParams)
}

// Declaration returns the generated type declaration. The type embeds the
// extended type, so every property stays reachable on the generated value.
func Declaration(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s renders %s with sensitive fields masked.\n", req.ClassName, req.TypeName)
	fmt.Fprintf(&b, "type %s%s struct {\n", req.ClassName, typeParamList(req.TypeParams))
	fmt.Fprintf(&b, "\t%s\n", SuperRef(req))
	b.WriteString("}\n")
	return b.String()
}

// ConstructorName returns the constructor name. Final types get an exported
// constructor; a non-final layer is only built by the next layer in its package.
func ConstructorName(req Request) string {
	if req.Final {
		return "New" + upperFirst(req.ClassName)
	}
	return "new" + upperFirst(req.ClassName)
}

// Constructor returns a constructor taking every property in order and
// passing them unchanged, in the same order, to the embedded type. Blank
// fields take no parameter and are filled with their zero value.
func Constructor(req Request) string {
	params := make([]string, 0, len(req.Properties))
	args := make([]string, len(req.Properties))
	for i, p := range req.Properties {
		if p.Blank() {
			args[i] = "*new(" + p.Type + ")"
			continue
		}
		params = append(params, p.Accessor+" "+p.Type)
		args[i] = p.Accessor
	}

	var b strings.Builder
	name := ConstructorName(req)
	fmt.Fprintf(&b, "// %s returns a %s holding the given values.\n", name, req.ClassName)
	fmt.Fprintf(&b, "func %s%s(%s) %s {\n", name, typeParamList(req.TypeParams), strings.Join(params, ", "), TypeRef(req))
	fmt.Fprintf(&b, "\treturn %s{%s{%s}}\n", TypeRef(req), SuperRef(req), strings.Join(args, ", "))
	b.WriteString("}\n")
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
