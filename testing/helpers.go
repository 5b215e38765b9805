// Package testing provides fixtures and helpers for testing redacted.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoobzio/redacted"
)

// SimpleUser has no redacted field; generation declines it.
type SimpleUser struct {
	ID   string
	Name string
}

// SanitizedUser covers every category a struct field can take.
type SanitizedUser struct {
	ID       int
	Email    string
	Password string            `redacted:"true"`
	Token    *string           `redacted:""`
	Roles    []string          `nullable:"true"`
	Key      [4]byte
	Manager  *string
	Labels   map[string]string `redacted:"true"`
}

// AllCategories returns one property per rendering category, in the order
// a (redacted reference) through g (array).
func AllCategories() []redacted.Property {
	return []redacted.Property{
		{Name: "a", Accessor: "a", Type: "Secret", Kind: redacted.KindReference, Redacted: true},
		{Name: "b", Accessor: "b", Type: "*string", Kind: redacted.KindReference, Pointer: true, Redacted: true, Nullable: true},
		{Name: "c", Accessor: "c", Type: "int", Kind: redacted.KindScalar, Redacted: true},
		{Name: "d", Accessor: "d", Type: "string", Kind: redacted.KindReference},
		{Name: "e", Accessor: "e", Type: "*string", Kind: redacted.KindReference, Pointer: true, Nullable: true},
		{Name: "f", Accessor: "f", Type: "int", Kind: redacted.KindScalar},
		{Name: "g", Accessor: "g", Type: "[]string", Kind: redacted.KindArray},
	}
}

// Evaluate renders fragments as the generated method would, substituting
// expression values from env.
func Evaluate(frags []redacted.Fragment, env map[string]string) (string, error) {
	var b strings.Builder
	for _, f := range frags {
		if f.Literal {
			b.WriteString(f.Text)
			continue
		}
		val, ok := env[f.Text]
		if !ok {
			return "", fmt.Errorf("no value for expression %s", f.Text)
		}
		b.WriteString(val)
	}
	return b.String(), nil
}

// WritePackage writes files into a temporary directory and returns it.
func WritePackage(tb testing.TB, files map[string]string) string {
	tb.Helper()
	dir := tb.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
