package redacted

import (
	"context"
	"fmt"
	"path"
	"reflect"
	"sort"
	"strings"

	"github.com/zoobzio/sentinel"
)

// Marker tag keys. Only presence is checked; the tag value is ignored.
const (
	RedactedTag = "redacted"
	NullableTag = "nullable"
)

func init() {
	sentinel.Tag(RedactedTag)
	sentinel.Tag(NullableTag)
}

// Scan builds a request for struct type T by reflection.
//
// Fields become properties in declaration order, labelled by field name.
// Every field must be exported or blank so the pass-through constructor can
// fill the embedded struct positionally. Instantiated generic types are
// rejected with ErrGenericInstance.
func Scan[T any]() (Request, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return Request{}, fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}
	// Type arguments are resolved by now; only the source host keeps
	// type parameters.
	if strings.Contains(rt.Name(), "[") {
		return Request{}, fmt.Errorf("%w: %s", ErrGenericInstance, rt)
	}

	spec := sentinel.Scan[T]()
	tags := make(map[string]map[string]string, len(spec.Fields))
	for _, field := range spec.Fields {
		tags[field.Name] = field.Tags
	}

	req := Request{
		Package:  PackageName(rt.PkgPath()),
		TypeName: rt.Name(),
		Final:    true,
	}

	imports := make(map[string]string)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() && sf.Name != "_" {
			return Request{}, newPropertyError(ErrMalformedProperty, req.TypeName, sf.Name, "unexported field")
		}

		// Sentinel drops tags with empty values, so marker presence is
		// always read from the raw tag.
		fieldTags := make(map[string]string)
		for key, val := range tags[sf.Name] {
			fieldTags[key] = val
		}
		delete(fieldTags, RedactedTag)
		delete(fieldTags, NullableTag)
		for key, val := range markerTags(sf.Tag) {
			fieldTags[key] = val
		}

		p, err := fieldProperty(sf, fieldTags, rt.PkgPath(), imports)
		if err != nil {
			return Request{}, newPropertyError(ErrInvalidTag, req.TypeName, sf.Name, err.Error())
		}
		req.Properties = append(req.Properties, p)
	}
	req.Imports = sortedImports(imports)
	req = Normalize(req)

	masked := 0
	for _, p := range req.Properties {
		if p.Redacted {
			masked++
		}
	}
	emitTypeScanned(context.Background(), req.TypeName, len(req.Properties), masked)
	return req, nil
}

// GenerateFor scans T and generates its file.
func GenerateFor[T any](ctx context.Context, opts ...Option) (*File, error) {
	req, err := Use[T]()
	if err != nil {
		return nil, err
	}
	return Generate(ctx, req, opts...)
}

// fieldProperty derives a property from a struct field.
func fieldProperty(sf reflect.StructField, tags map[string]string, local string, imports map[string]string) (Property, error) {
	_, redacted := tags[RedactedTag]
	_, nullable := tags[NullableTag]

	p := Property{
		Name:     sf.Name,
		Accessor: sf.Name,
		Type:     typeExpr(sf.Type, local, imports),
		Redacted: redacted,
	}

	switch sf.Type.Kind() {
	case reflect.Pointer:
		p.Kind, p.Pointer, p.Nullable = KindReference, true, true
	case reflect.Interface, reflect.Map, reflect.Chan, reflect.Func:
		p.Kind, p.Nullable = KindReference, true
	case reflect.Slice:
		p.Kind, p.Nullable = KindArray, nullable
	case reflect.Array:
		if nullable {
			return Property{}, fmt.Errorf("%s tag on fixed array", NullableTag)
		}
		p.Kind, p.Fixed = KindArray, true
	default:
		if nullable {
			return Property{}, fmt.Errorf("%s tag on %s", NullableTag, sf.Type.Kind())
		}
		p.Kind = KindScalar
	}
	return p, nil
}

// markerTags extracts marker keys from a raw struct tag.
func markerTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, key := range []string{RedactedTag, NullableTag} {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}

// typeExpr renders t as Go source valid inside package local, recording
// the imports it needs.
func typeExpr(t reflect.Type, local string, imports map[string]string) string {
	if t.Name() != "" {
		pkg := t.PkgPath()
		if pkg == "" || pkg == local {
			return t.Name()
		}
		// Instantiated generic names embed full paths; fall back to the
		// reflect spelling.
		if strings.Contains(t.Name(), "[") {
			return t.String()
		}
		name := PackageName(pkg)
		imports[pkg] = name
		return name + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeExpr(t.Elem(), local, imports)
	case reflect.Slice:
		return "[]" + typeExpr(t.Elem(), local, imports)
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), typeExpr(t.Elem(), local, imports))
	case reflect.Map:
		return "map[" + typeExpr(t.Key(), local, imports) + "]" + typeExpr(t.Elem(), local, imports)
	default:
		return t.String()
	}
}

// PackageName guesses the package name from its import path.
func PackageName(pkgPath string) string {
	name := path.Base(pkgPath)
	if isMajorVersion(name) && path.Dir(pkgPath) != "." {
		name = path.Base(path.Dir(pkgPath))
	}
	name, _, _ = strings.Cut(name, ".")
	return strings.ReplaceAll(name, "-", "_")
}

// isMajorVersion reports whether elem is a module major version suffix like v2.
func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}
	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// sortedImports flattens an import set. Aliases are only written when the
// guessed package name differs from the last path element.
func sortedImports(set map[string]string) []Import {
	imports := make([]Import, 0, len(set))
	for pkgPath, name := range set {
		imp := Import{Path: pkgPath}
		if name != path.Base(pkgPath) {
			imp.Name = name
		}
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}
