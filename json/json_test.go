package json

import (
	"strings"
	"testing"

	"github.com/zoobzio/redacted"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshalPlan(t *testing.T) {
	c := New()

	plan := redacted.Describe(redacted.Request{
		Package:  "test",
		TypeName: "Test",
		Properties: []redacted.Property{
			{Name: "a", Accessor: "A", Type: "string", Redacted: true},
			{Name: "b", Accessor: "B", Type: "[]int", Kind: redacted.KindArray},
		},
	})

	data, err := c.Marshal([]redacted.Plan{plan})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	for _, want := range []string{`"category": "const_masked"`, `"category": "array"`, `"class_name": "RedactedTest"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal() missing %s in:\n%s", want, data)
		}
	}

	var restored []redacted.Plan
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(restored) != 1 || restored[0].Properties[1].Category != redacted.Array {
		t.Errorf("round-trip failed: got %+v", restored)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	if err := c.Unmarshal([]byte("invalid json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
