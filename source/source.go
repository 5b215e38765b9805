// Package source builds generation requests by parsing Go source files.
//
// Load reads one package directory, finds the struct types that carry at
// least one redacted tag and describes each one as a redacted.Request. Type
// expressions are copied as written, so the generated file compiles in the
// same package with the same imports.
//
// Only syntax is read. A field whose type is a named interface, such as
// io.Reader, is nullable only when it carries the nullable tag.
package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/redacted"
)

// Config controls how requests are derived.
type Config struct {
	Prefix string // Prepended to the subject name to name the generated type
	Suffix string // Generated file suffix, skipped when reading
	Final  bool   // Final flag set on every request
	All    bool   // Include types without a redacted field
}

// Option configures Load.
type Option func(*Config)

// WithPrefix sets the generated type name prefix.
func WithPrefix(prefix string) Option {
	return func(c *Config) {
		c.Prefix = prefix
	}
}

// WithSuffix sets the generated file suffix.
func WithSuffix(suffix string) Option {
	return func(c *Config) {
		c.Suffix = suffix
	}
}

// WithFinal sets the Final flag of every request.
func WithFinal(final bool) Option {
	return func(c *Config) {
		c.Final = final
	}
}

// WithAll includes struct types that have no redacted field.
func WithAll() Option {
	return func(c *Config) {
		c.All = true
	}
}

// Load parses the package in dir and returns one request per struct type
// with a redacted field, in file name then declaration order. Test files and
// generated files are skipped.
func Load(dir string, opts ...Option) ([]redacted.Request, error) {
	cfg := Config{Prefix: redacted.DefaultPrefix, Suffix: redacted.DefaultSuffix, Final: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, redacted.NewSourceError(redacted.ErrParse, dir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, cfg.Suffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fset := token.NewFileSet()
	var reqs []redacted.Request
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, redacted.NewSourceError(redacted.ErrParse, path, err)
		}
		if ast.IsGenerated(f) {
			continue
		}
		fileReqs, err := fileRequests(f, cfg)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fileReqs...)
	}
	return reqs, nil
}

// fileRequests describes the struct types declared in f.
func fileRequests(f *ast.File, cfg Config) ([]redacted.Request, error) {
	imports := fileImports(f)

	var reqs []redacted.Request
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			req, err := structRequest(f.Name.Name, ts, st, imports)
			if err != nil {
				return nil, err
			}
			if !cfg.All && !redacted.Applicable(req.Properties) {
				continue
			}
			req.ClassName = cfg.Prefix + upperFirst(ts.Name.Name)
			req.Final = cfg.Final
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}

// structRequest describes one struct type.
func structRequest(pkg string, ts *ast.TypeSpec, st *ast.StructType, imports map[string]redacted.Import) (redacted.Request, error) {
	req := redacted.Request{
		Package:  pkg,
		TypeName: ts.Name.Name,
		Extends:  ts.Name.Name,
	}
	used := make(map[string]bool)

	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			bound := types.ExprString(field.Type)
			markImports(field.Type, imports, used)
			for _, name := range field.Names {
				req.TypeParams = append(req.TypeParams, redacted.TypeParam{Name: name.Name, Bound: bound})
			}
		}
	}

	for _, field := range st.Fields.List {
		tag := fieldTag(field)
		markImports(field.Type, imports, used)

		names := field.Names
		if len(names) == 0 {
			names = []*ast.Ident{ast.NewIdent(embeddedName(field.Type))}
		}
		for _, name := range names {
			p, err := fieldProperty(name.Name, field.Type, tag)
			if err != nil {
				return redacted.Request{}, &redacted.PropertyError{
					Err:      redacted.ErrInvalidTag,
					Type:     req.TypeName,
					Property: name.Name,
					Reason:   err.Error(),
				}
			}
			req.Properties = append(req.Properties, p)
		}
	}

	for alias := range used {
		req.Imports = append(req.Imports, imports[alias])
	}
	sort.Slice(req.Imports, func(i, j int) bool { return req.Imports[i].Path < req.Imports[j].Path })
	return req, nil
}

// fieldTag returns the parsed struct tag of a field.
func fieldTag(field *ast.Field) reflect.StructTag {
	if field.Tag == nil {
		return ""
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(raw)
}

// embeddedName returns the field name of an embedded type.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return types.ExprString(expr)
	}
}

// fileImports maps the local name of every import in f to the import.
func fileImports(f *ast.File) map[string]redacted.Import {
	imports := make(map[string]redacted.Import, len(f.Imports))
	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imp := redacted.Import{Path: path}
		local := redacted.PackageName(path)
		if spec.Name != nil {
			if spec.Name.Name == "_" || spec.Name.Name == "." {
				continue
			}
			imp.Name = spec.Name.Name
			local = spec.Name.Name
		}
		imports[local] = imp
	}
	return imports
}

// markImports records the imports referenced by qualified identifiers in expr.
func markImports(expr ast.Expr, imports map[string]redacted.Import, used map[string]bool) {
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok {
			if _, known := imports[id.Name]; known {
				used[id.Name] = true
			}
		}
		return true
	})
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
