package render

import (
	"errors"
	"testing"
	"time"
)

func TestPresent(t *testing.T) {
	if got := Present(true, Mask); got != Mask {
		t.Errorf("Present(true) = %q, want %q", got, Mask)
	}
	if got := Present(false, Mask); got != Absent {
		t.Errorf("Present(false) = %q, want %q", got, Absent)
	}
}

func TestArray(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected string
	}{
		{"nil", nil, "null"},
		{"empty", []int{}, "[]"},
		{"single", []int{7}, "[7]"},
		{"many", []int{1, 2, 3}, "[1, 2, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Array(tt.input); got != tt.expected {
				t.Errorf("Array(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestArray_Strings(t *testing.T) {
	if got := Array([]string{"a", "b"}); got != "[a, b]" {
		t.Errorf("Array() = %q, want %q", got, "[a, b]")
	}
}

func TestElem(t *testing.T) {
	s := "value"
	if got := Elem(&s, "null"); got != "value" {
		t.Errorf("Elem(&s) = %q, want %q", got, "value")
	}
	if got := Elem[string](nil, "null"); got != "null" {
		t.Errorf("Elem(nil) = %q, want %q", got, "null")
	}
	n := 42
	if got := Elem(&n, "null"); got != "42" {
		t.Errorf("Elem(&n) = %q, want %q", got, "42")
	}
}

func TestValue(t *testing.T) {
	var err error
	if got := Value(err != nil, err, "null"); got != "null" {
		t.Errorf("Value(nil error) = %q, want %q", got, "null")
	}
	err = errors.New("boom")
	if got := Value(err != nil, err, "null"); got != "boom" {
		t.Errorf("Value(error) = %q, want %q", got, "boom")
	}
	m := map[string]int{"a": 1}
	if got := Value(m != nil, m, "null"); got != "map[a:1]" {
		t.Errorf("Value(map) = %q, want %q", got, "map[a:1]")
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed([3]int{1, 2, 3}); got != "[1, 2, 3]" {
		t.Errorf("Fixed() = %q, want %q", got, "[1, 2, 3]")
	}
	if got := Fixed([0]int{}); got != "[]" {
		t.Errorf("Fixed(empty) = %q, want %q", got, "[]")
	}
	if got := Fixed(5); got != "5" {
		t.Errorf("Fixed(non-array) = %q, want %q", got, "5")
	}
}

func TestSprint(t *testing.T) {
	if got := Sprint(42); got != "42" {
		t.Errorf("Sprint(42) = %q", got)
	}
	if got := Sprint(time.Second); got != "1s" {
		t.Errorf("Sprint(time.Second) = %q", got)
	}
}
