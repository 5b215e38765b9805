package redacted

import (
	"context"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// Code generated by redactgen. DO NOT EDIT."

// DefaultSuffix is appended to the lowercased type name to name generated files.
const DefaultSuffix = "_redacted.go"

// DefaultPrefix is prepended to the subject type name to name the generated type.
const DefaultPrefix = "Redacted"

// File is a generated source file.
type File struct {
	Name        string // File name, no directory
	Source      []byte // Formatted Go source
	Fingerprint string // Digest of the request that produced Source
	Fragments   int    // Terms in the String expression
}

// Applicable reports whether any property is marked redacted.
func Applicable(props []Property) bool {
	for _, p := range props {
		if p.Redacted {
			return true
		}
	}
	return false
}

// FileName returns the generated file name for typeName.
func FileName(typeName, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return snake(typeName) + suffix
}

// Normalize fills the request fields a host may leave empty.
func Normalize(req Request) Request {
	if req.Extends == "" {
		req.Extends = req.TypeName
	}
	if req.ClassName == "" {
		req.ClassName = DefaultPrefix + req.TypeName
	}
	return req
}

// Generate produces the file for req: the generated type embedding the
// subject, a pass-through constructor and the masking String method.
//
// Generate returns ErrNotApplicable when no property is redacted; the host
// should keep its default output. Malformed properties fail with a
// PropertyError and no output is produced.
func Generate(ctx context.Context, req Request, opts ...Option) (*File, error) {
	start := time.Now()
	req = Normalize(req)
	emitGenerateStart(ctx, req.TypeName, len(req.Properties))

	if !Applicable(req.Properties) {
		emitGenerateDeclined(ctx, req.TypeName, len(req.Properties))
		return nil, ErrNotApplicable
	}

	file, masked, err := generate(req, opts)
	size, frags := 0, 0
	if file != nil {
		size, frags = len(file.Source), file.Fragments
	}
	emitGenerateComplete(ctx, req.TypeName, masked, frags, size, time.Since(start), err)
	return file, err
}

func generate(req Request, opts []Option) (*File, int, error) {
	if req.Package == "" || req.TypeName == "" {
		return nil, 0, newPropertyError(ErrMalformedProperty, req.TypeName, "", "request needs a package and a type name")
	}

	masked := 0
	for _, p := range req.Properties {
		if v := p.violation(); v != "" {
			return nil, 0, newPropertyError(ErrMalformedProperty, req.TypeName, p.Name, v)
		}
		if p.Redacted {
			masked++
		}
	}

	routine := Synthesize(req.TypeName, req.Properties, opts...)
	fingerprint := Fingerprint(req, opts...)

	var b strings.Builder
	b.WriteString(GeneratedHeader + "\n")
	b.WriteString(fingerprintPrefix + fingerprint + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", req.Package)
	writeImports(&b, req.Imports, routine.Imports())
	b.WriteString(Declaration(req))
	b.WriteString("\n")
	b.WriteString(Constructor(req))
	b.WriteString("\n")
	b.WriteString(routine.Method(TypeRef(req)))

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, masked, NewSourceError(ErrFormat, req.ClassName, err)
	}

	return &File{
		Name:        FileName(req.TypeName, ""),
		Source:      src,
		Fingerprint: fingerprint,
		Fragments:   len(routine.Fragments),
	}, masked, nil
}

// writeImports writes one import block covering host imports and the
// imports the routine needs. Imports are unique by name and path, sorted
// with the standard library first, as goimports groups them.
func writeImports(b *strings.Builder, host []Import, routine []Import) {
	seen := make(map[Import]bool, len(host)+len(routine))
	var imports []Import
	for _, imp := range append(append([]Import(nil), host...), routine...) {
		if !seen[imp] {
			seen[imp] = true
			imports = append(imports, imp)
		}
	}
	if len(imports) == 0 {
		return
	}

	sort.Slice(imports, func(i, j int) bool {
		a, c := imports[i], imports[j]
		if sa, sc := isStdlib(a.Path), isStdlib(c.Path); sa != sc {
			return sa
		}
		if a.Path != c.Path {
			return a.Path < c.Path
		}
		return a.Name < c.Name
	})

	b.WriteString("import (\n")
	for i, imp := range imports {
		if i > 0 && isStdlib(imports[i-1].Path) && !isStdlib(imp.Path) {
			b.WriteString("\n")
		}
		if imp.Name != "" {
			fmt.Fprintf(b, "\t%s %s\n", imp.Name, strconv.Quote(imp.Path))
		} else {
			fmt.Fprintf(b, "\t%s\n", strconv.Quote(imp.Path))
		}
	}
	b.WriteString(")\n\n")
}

// isStdlib reports whether path names a standard library package.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

// snake converts "HTTPUser" to "http_user".
func snake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
