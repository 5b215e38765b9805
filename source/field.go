package source

import (
	"fmt"
	"go/ast"
	"go/types"
	"reflect"

	"github.com/zoobzio/redacted"
)

// nilable names predeclared types that may hold nil.
var nilable = map[string]bool{
	"error": true,
	"any":   true,
}

// fieldProperty derives a property from a field's declared type and tag.
//
// Without type checking a named type's underlying kind is unknown, so a named
// interface type needs the nullable tag to be treated as nullable.
func fieldProperty(name string, expr ast.Expr, tag reflect.StructTag) (redacted.Property, error) {
	_, isRedacted := tag.Lookup(redacted.RedactedTag)
	_, isNullable := tag.Lookup(redacted.NullableTag)

	p := redacted.Property{
		Name:     name,
		Accessor: name,
		Type:     types.ExprString(expr),
		Redacted: isRedacted,
	}

	switch t := expr.(type) {
	case *ast.StarExpr:
		p.Kind, p.Pointer, p.Nullable = redacted.KindReference, true, true
	case *ast.MapType, *ast.InterfaceType, *ast.FuncType, *ast.ChanType:
		p.Kind, p.Nullable = redacted.KindReference, true
	case *ast.ArrayType:
		if t.Len != nil {
			if isNullable {
				return redacted.Property{}, fmt.Errorf("%s tag on fixed array", redacted.NullableTag)
			}
			p.Kind, p.Fixed = redacted.KindArray, true
			break
		}
		p.Kind, p.Nullable = redacted.KindArray, isNullable
	case *ast.Ident:
		if nilable[t.Name] || isNullable {
			p.Kind, p.Nullable = redacted.KindReference, true
		}
	case *ast.ParenExpr:
		return fieldProperty(name, t.X, tag)
	default:
		if isNullable {
			p.Kind, p.Nullable = redacted.KindReference, true
		}
	}
	return p, nil
}
