package redacted

import (
	"errors"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindScalar, "scalar"},
		{KindReference, "reference"},
		{KindArray, "array"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindScalar, KindReference, KindArray} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != k {
			t.Errorf("round trip %v = %v", k, got)
		}
	}
}

func TestKind_UnmarshalText_Unknown(t *testing.T) {
	var k Kind
	err := k.UnmarshalText([]byte("tuple"))
	if !errors.Is(err, ErrMalformedProperty) {
		t.Errorf("UnmarshalText(tuple) error = %v, want ErrMalformedProperty", err)
	}
}

func TestProperty_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prop    Property
		wantErr bool
	}{
		{
			name: "plain scalar",
			prop: Property{Name: "ID", Accessor: "ID", Type: "int", Kind: KindScalar},
		},
		{
			name: "nullable reference",
			prop: Property{Name: "Token", Accessor: "Token", Type: "*string", Kind: KindReference, Pointer: true, Nullable: true},
		},
		{
			name: "fixed array",
			prop: Property{Name: "Key", Accessor: "Key", Type: "[4]byte", Kind: KindArray, Fixed: true},
		},
		{
			name:    "empty name",
			prop:    Property{Accessor: "ID", Type: "int"},
			wantErr: true,
		},
		{
			name:    "empty accessor",
			prop:    Property{Name: "ID", Type: "int"},
			wantErr: true,
		},
		{
			name:    "nullable scalar",
			prop:    Property{Name: "Age", Accessor: "Age", Type: "int", Kind: KindScalar, Nullable: true},
			wantErr: true,
		},
		{
			name:    "nullable fixed array",
			prop:    Property{Name: "Key", Accessor: "Key", Type: "[4]byte", Kind: KindArray, Fixed: true, Nullable: true},
			wantErr: true,
		},
		{
			name:    "fixed on reference",
			prop:    Property{Name: "Key", Accessor: "Key", Type: "*int", Kind: KindReference, Fixed: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prop.Validate()
			if tt.wantErr && !errors.Is(err, ErrMalformedProperty) {
				t.Errorf("Validate() error = %v, want ErrMalformedProperty", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRequest_Clone(t *testing.T) {
	req := Request{
		TypeName:   "Box",
		TypeParams: []TypeParam{{Name: "T", Bound: "any"}},
		Properties: []Property{{Name: "Item", Accessor: "Item", Type: "T"}},
		Imports:    []Import{{Path: "time"}},
	}

	clone := req.Clone()
	clone.TypeParams[0].Bound = "comparable"
	clone.Properties[0].Redacted = true
	clone.Imports[0].Path = "fmt"

	if req.TypeParams[0].Bound != "any" {
		t.Error("Clone() shares TypeParams")
	}
	if req.Properties[0].Redacted {
		t.Error("Clone() shares Properties")
	}
	if req.Imports[0].Path != "time" {
		t.Error("Clone() shares Imports")
	}
}

func TestProperty_Blank(t *testing.T) {
	blank := Property{Name: "_", Accessor: "_", Type: "int"}
	if !blank.Blank() {
		t.Error("Blank() = false for _ accessor")
	}
	if err := blank.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	blank.Redacted = true
	if err := blank.Validate(); !errors.Is(err, ErrMalformedProperty) {
		t.Errorf("redacted blank: Validate() = %v, want ErrMalformedProperty", err)
	}

	if (Property{Name: "ID", Accessor: "ID"}).Blank() {
		t.Error("Blank() = true for named accessor")
	}
}
