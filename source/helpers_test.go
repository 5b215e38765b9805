package source

import (
	"go/ast"
	"go/parser"
	"reflect"
	"testing"
)

func mustExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpr(src)
	if err != nil {
		t.Fatalf("ParseExpr(%q) error: %v", src, err)
	}
	return expr
}

func reflectTag(tag string) reflect.StructTag {
	return reflect.StructTag(tag)
}
