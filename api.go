// Package redacted generates String methods that mask sensitive fields.
//
// The package takes an ordered list of properties, some of them marked
// sensitive, and emits Go source for a type that embeds the subject type and
// renders it with every sensitive value replaced by a fixed mask.
//
// # Markers
//
// Properties are marked via struct tags. Only the key matters, the value is
// ignored:
//
//	type User struct {
//	    ID       string
//	    Password string  `redacted:"true"`
//	    Token    *string `redacted:""`
//	    Tags     []string `nullable:"true"`
//	}
//
// Pointers, interfaces, maps, channels and funcs are nullable without a tag.
// Slices are nullable only when tagged. Scalars and fixed arrays never are.
//
// The source package reads syntax only and cannot tell a named interface type
// from a named struct. Fields such as io.Reader or fmt.Stringer need the
// nullable tag there; untagged they render as plain values and a nil prints
// as <nil> rather than null. The predeclared error and any are recognised.
//
// Blank "_" fields are left out of the output and zero-filled by the
// generated constructor. They cannot be redacted.
//
// # Output
//
// For the type above the generated String method renders:
//
//	User{ID=42, Password=██, Token=██, Tags=[a, b]}
//
// Sensitive values always render as the mask, whatever their type, including
// numbers. An absent sensitive value renders as absent, never as its value.
//
// # Pipeline
//
// Generation runs in two stages:
//
//   - Classify assigns each property one of five categories.
//   - Synthesize walks the classified properties once and produces an ordered
//     list of fragments, which Fold then compacts where literals are adjacent.
//
// Generate wraps both stages with the surrounding type declaration and a
// pass-through constructor, and returns a formatted file.
//
// # Hosts
//
// Two hosts build requests: Scan reads a type via reflection, and the source
// package parses a package directory. The redactgen command drives the latter.
package redacted

import "fmt"

// Kind is the semantic type tag of a property.
type Kind int

const (
	// KindScalar is a value that cannot be absent: numbers, strings, structs.
	KindScalar Kind = iota

	// KindReference is a value that may be absent: pointers, interfaces, maps.
	KindReference

	// KindArray is a slice or a fixed-length array.
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Property describes one accessor of the subject type.
// Hosts build properties; the core only reads them.
type Property struct {
	Name     string `json:"name" yaml:"name"`                             // Label in the rendered output
	Accessor string `json:"accessor" yaml:"accessor"`                     // Identifier read from the receiver
	Method   bool   `json:"method,omitempty" yaml:"method,omitempty"`     // Accessor is a method, read as v.Accessor()
	Type     string `json:"type" yaml:"type"`                             // Go type expression as declared
	Kind     Kind   `json:"kind" yaml:"kind"`                             // Semantic type tag
	Fixed    bool   `json:"fixed,omitempty" yaml:"fixed,omitempty"`       // Fixed-length array, KindArray only
	Pointer  bool   `json:"pointer,omitempty" yaml:"pointer,omitempty"`   // Nullable value read through a pointer
	Redacted bool   `json:"redacted" yaml:"redacted"`                     // Marked sensitive
	Nullable bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"` // May be absent
}

// Validate reports host contract violations.
func (p Property) Validate() error {
	if p.violation() != "" {
		return ErrMalformedProperty
	}
	return nil
}

// Blank reports whether the property is a blank "_" field. Blank fields are
// never rendered and receive their zero value from the constructor.
func (p Property) Blank() bool {
	return p.Accessor == "_"
}

// violation names the broken invariant, empty when the property is well formed.
func (p Property) violation() string {
	switch {
	case p.Name == "":
		return "empty name"
	case p.Accessor == "":
		return "empty accessor"
	case p.Nullable && p.Kind == KindScalar:
		return "scalar cannot be nullable"
	case p.Nullable && p.Fixed:
		return "fixed array cannot be nullable"
	case p.Fixed && p.Kind != KindArray:
		return "fixed set on non-array"
	case p.Blank() && p.Redacted:
		return "blank field cannot be redacted"
	}
	return ""
}

// TypeParam is a type parameter of the subject type.
// Bound is copied verbatim into generated source.
type TypeParam struct {
	Name  string `json:"name" yaml:"name"`
	Bound string `json:"bound" yaml:"bound"`
}

// Import is a package import required by property types or bounds.
type Import struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"` // Explicit alias, empty for none
	Path string `json:"path" yaml:"path"`
}

// Request is a single generation request for one subject type.
type Request struct {
	Package    string      `json:"package" yaml:"package"`       // Package clause of the generated file
	TypeName   string      `json:"type_name" yaml:"type_name"`   // Display name of the subject type
	ClassName  string      `json:"class_name" yaml:"class_name"` // Name of the generated type
	Extends    string      `json:"extends" yaml:"extends"`       // Type the generated type embeds
	Final      bool        `json:"final" yaml:"final"`           // Closed to further layering
	TypeParams []TypeParam `json:"type_params,omitempty" yaml:"type_params,omitempty"`
	Properties []Property  `json:"properties" yaml:"properties"`
	Imports    []Import    `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "scalar":
		*k = KindScalar
	case "reference":
		*k = KindReference
	case "array":
		*k = KindArray
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedProperty, text)
	}
	return nil
}
