package redacted

import "testing"

func TestFragment_Source(t *testing.T) {
	tests := []struct {
		name string
		frag Fragment
		want string
	}{
		{"literal", Lit("a="), `"a="`},
		{"mask literal", constLit("██"), `"██"`},
		{"quote escaped", Lit(`say "hi"`), `"say \"hi\""`},
		{"expression", Expr("v.Name"), "v.Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frag.Source(); got != tt.want {
				t.Errorf("Source() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input []Fragment
		want  []Fragment
	}{
		{
			name:  "empty",
			input: nil,
			want:  []Fragment{},
		},
		{
			name:  "adjacent constants merge",
			input: []Fragment{Lit("T{"), constLit("a="), constLit("██"), constLit(", "), constLit("b="), constLit("██"), Lit("}")},
			want:  []Fragment{Lit("T{"), constLit("a=██, b=██"), Lit("}")},
		},
		{
			name:  "plain literals stay apart",
			input: []Fragment{Lit("T{"), Lit("a="), Expr("v.a"), Lit("}")},
			want:  []Fragment{Lit("T{"), Lit("a="), Expr("v.a"), Lit("}")},
		},
		{
			name:  "expression splits runs",
			input: []Fragment{constLit("a="), constLit("██"), constLit(", "), Lit("b="), Expr("v.b"), Lit(", "), constLit("c="), constLit("██")},
			want:  []Fragment{constLit("a=██, "), Lit("b="), Expr("v.b"), Lit(", "), constLit("c=██")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Fold() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("fragment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFold_DoesNotModifyInput(t *testing.T) {
	input := []Fragment{constLit("a="), constLit("██")}
	_ = Fold(input)

	if input[0].Text != "a=" || input[1].Text != "██" {
		t.Errorf("Fold() modified input: %+v", input)
	}
}
