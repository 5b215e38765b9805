package redacted

import "fmt"

// Category is the rendering category of a property.
// It is computed once per property by Classify and never changes.
type Category int

const (
	// ConstMasked renders the mask as a literal, foldable into adjacent literals.
	ConstMasked Category = iota

	// MaskedIfPresent renders the mask when the value is present, absent otherwise.
	MaskedIfPresent

	// Array renders the elements of a slice or array.
	Array

	// Plain renders the value as read.
	Plain

	// NullablePlain renders the value when present, the text "null" otherwise.
	NullablePlain
)

var categoryNames = map[Category]string{
	ConstMasked:     "const_masked",
	MaskedIfPresent: "masked_if_present",
	Array:           "array",
	Plain:           "plain",
	NullablePlain:   "nullable_plain",
}

// String returns the category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	for cat, name := range categoryNames {
		if name == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// Foldable reports whether the category renders as a compile-time constant.
func (c Category) Foldable() bool {
	return c == ConstMasked
}

// Masked reports whether the category hides the value.
func (c Category) Masked() bool {
	return c == ConstMasked || c == MaskedIfPresent
}

// Classify returns the rendering category of p. First match wins:
// redacted properties mask regardless of type, then arrays, then the rest
// split on nullability.
func Classify(p Property) Category {
	switch {
	case p.Redacted && !p.Nullable:
		return ConstMasked
	case p.Redacted:
		return MaskedIfPresent
	case p.Kind == KindArray:
		return Array
	case p.Nullable:
		return NullablePlain
	default:
		return Plain
	}
}

// Classified pairs a property with its category.
type Classified struct {
	Property Property
	Category Category
}

// ClassifyAll classifies props in order.
func ClassifyAll(props []Property) []Classified {
	out := make([]Classified, len(props))
	for i, p := range props {
		out[i] = Classified{Property: p, Category: Classify(p)}
	}
	return out
}
