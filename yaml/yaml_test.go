package yaml

import (
	"strings"
	"testing"

	"github.com/zoobzio/redacted"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalPlan(t *testing.T) {
	c := New()

	plan := redacted.Describe(redacted.Request{
		Package:  "test",
		TypeName: "Test",
		Properties: []redacted.Property{
			{Name: "a", Accessor: "A", Type: "*string", Kind: redacted.KindReference, Pointer: true, Nullable: true, Redacted: true},
			{Name: "b", Accessor: "B", Type: "int"},
		},
	})

	data, err := c.Marshal([]redacted.Plan{plan})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "category: masked_if_present") {
		t.Errorf("Marshal() missing masked_if_present in:\n%s", data)
	}

	var restored []redacted.Plan
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored[0].Properties[0].Category != redacted.MaskedIfPresent {
		t.Errorf("Category = %v, want %v", restored[0].Properties[0].Category, redacted.MaskedIfPresent)
	}
	if restored[0].Properties[1].Category != redacted.Plain {
		t.Errorf("Category = %v, want %v", restored[0].Properties[1].Category, redacted.Plain)
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct {
		Name string `yaml:"name"`
	}
	if err := c.Unmarshal([]byte("name: [invalid"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
