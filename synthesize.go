package redacted

import (
	"fmt"
	"strconv"

	"github.com/zoobzio/redacted/render"
)

// The helper package is imported under a reserved name so it cannot clash
// with the subject file's own imports.
const (
	renderImport = "github.com/zoobzio/redacted/render"
	renderName   = "redactedrender"
)

// nullText is the absent marker of NullablePlain, printed as plain text.
const nullText = "null"

// Option configures synthesis.
type Option func(*options)

type options struct {
	fold     bool
	receiver string
}

func defaultOptions() options {
	return options{fold: true, receiver: "v"}
}

// WithoutFolding keeps every literal as its own term.
// The rendered string is the same; only the number of terms changes.
func WithoutFolding() Option {
	return func(o *options) {
		o.fold = false
	}
}

// WithFolding sets whether constant literals are folded.
func WithFolding(fold bool) Option {
	return func(o *options) {
		o.fold = fold
	}
}

// WithReceiver sets the receiver name used in expressions. Defaults to "v".
func WithReceiver(name string) Option {
	return func(o *options) {
		if name != "" {
			o.receiver = name
		}
	}
}

// Routine is a synthesized String method body.
type Routine struct {
	TypeName  string     `json:"type_name" yaml:"type_name"`
	Receiver  string     `json:"receiver" yaml:"receiver"`
	Fragments []Fragment `json:"fragments" yaml:"fragments"`

	usesRender bool
}

// Synthesize builds the rendering routine for typeName over props.
// The output is equivalent to "TypeName{a=<a>, b=<b>}" with each value
// rendered according to its category. Properties are rendered in order.
func Synthesize(typeName string, props []Property, opts ...Option) Routine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := Routine{TypeName: typeName, Receiver: o.receiver}
	frags := make([]Fragment, 0, 2+4*len(props))
	frags = append(frags, Lit(typeName+"{"))

	visible := make([]Property, 0, len(props))
	for _, p := range props {
		if !p.Blank() {
			visible = append(visible, p)
		}
	}

	for i, c := range ClassifyAll(visible) {
		last := i == len(visible)-1
		if c.Category.Foldable() {
			frags = append(frags, constLit(c.Property.Name+"="), constLit(render.Mask))
			if !last {
				frags = append(frags, constLit(", "))
			}
			continue
		}

		frags = append(frags, Lit(c.Property.Name+"="), Expr(r.expression(c)))
		if !last {
			frags = append(frags, Lit(", "))
		}
	}

	frags = append(frags, Lit("}"))
	if o.fold {
		frags = Fold(frags)
	}
	r.Fragments = frags
	return r
}

// expression returns the Go expression rendering a non-constant property.
func (r *Routine) expression(c Classified) string {
	p := c.Property
	x := r.read(p)

	switch c.Category {
	case MaskedIfPresent:
		r.usesRender = true
		return fmt.Sprintf("%s.Present(%s != nil, %s)", renderName, x, strconv.Quote(render.Mask))

	case Array:
		r.usesRender = true
		elems := arrayExpr(p, x)
		if p.Nullable {
			return fmt.Sprintf("%s.Present(%s != nil, %s)", renderName, x, elems)
		}
		return elems

	case NullablePlain:
		r.usesRender = true
		if p.Pointer {
			return fmt.Sprintf("%s.Elem(%s, %s)", renderName, x, strconv.Quote(nullText))
		}
		return fmt.Sprintf("%s.Value(%s != nil, %s, %s)", renderName, x, x, strconv.Quote(nullText))

	default:
		if p.Type == "string" {
			return x
		}
		r.usesRender = true
		return fmt.Sprintf("%s.Sprint(%s)", renderName, x)
	}
}

// arrayExpr renders the elements of an array property.
func arrayExpr(p Property, x string) string {
	switch {
	case p.Fixed && p.Method:
		return fmt.Sprintf("%s.Fixed(%s)", renderName, x)
	case p.Fixed:
		return fmt.Sprintf("%s.Array(%s[:])", renderName, x)
	default:
		return fmt.Sprintf("%s.Array(%s)", renderName, x)
	}
}

// read returns the expression reading p from the receiver.
func (r *Routine) read(p Property) string {
	if p.Method {
		return r.Receiver + "." + p.Accessor + "()"
	}
	return r.Receiver + "." + p.Accessor
}

// Expression returns the concatenation of all fragments.
func (r Routine) Expression() string {
	return join(r.Fragments, " + ")
}

// Method returns the String method on typeRef, e.g. "RedactedUser[T]".
func (r Routine) Method(typeRef string) string {
	return fmt.Sprintf("func (%s %s) String() string {\n\treturn %s\n}\n",
		r.Receiver, typeRef, join(r.Fragments, " +\n\t\t"))
}

// Imports returns the imports the expressions reference.
func (r Routine) Imports() []Import {
	if !r.usesRender {
		return nil
	}
	return []Import{{Name: renderName, Path: renderImport}}
}
