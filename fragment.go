package redacted

import (
	"strconv"
	"strings"
)

// Fragment is one term of the rendering expression.
// A literal holds unquoted text; an expression holds Go source.
type Fragment struct {
	Literal bool   `json:"literal" yaml:"literal"`
	Text    string `json:"text" yaml:"text"`
	Const   bool   `json:"const,omitempty" yaml:"const,omitempty"` // Produced by a ConstMasked property
}

// Lit returns a literal fragment.
func Lit(text string) Fragment {
	return Fragment{Literal: true, Text: text}
}

// Expr returns an expression fragment.
func Expr(src string) Fragment {
	return Fragment{Text: src}
}

// constLit returns a literal fragment that may be folded.
func constLit(text string) Fragment {
	return Fragment{Literal: true, Text: text, Const: true}
}

// Source returns the fragment as Go source.
func (f Fragment) Source() string {
	if f.Literal {
		return strconv.Quote(f.Text)
	}
	return f.Text
}

// foldable reports whether f may merge with a neighbouring foldable fragment.
func (f Fragment) foldable() bool {
	return f.Literal && f.Const
}

// Fold merges runs of adjacent foldable literals into one literal.
// Only literals produced by ConstMasked properties merge; a run never crosses
// an expression or a plain literal. The input is not modified.
func Fold(frags []Fragment) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if n := len(out); n > 0 && f.foldable() && out[n-1].foldable() {
			out[n-1].Text += f.Text
			continue
		}
		out = append(out, f)
	}
	return out
}

// join concatenates fragment sources with sep.
func join(frags []Fragment, sep string) string {
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = f.Source()
	}
	return strings.Join(parts, sep)
}
