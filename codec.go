package redacted

// Codec provides content-type aware marshaling of generation plans.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Plan describes what Generate would emit for a request, without emitting it.
type Plan struct {
	TypeName    string      `json:"type_name" yaml:"type_name"`
	ClassName   string      `json:"class_name" yaml:"class_name"`
	Applicable  bool        `json:"applicable" yaml:"applicable"`
	Fingerprint string      `json:"fingerprint" yaml:"fingerprint"`
	Properties  []PlanEntry `json:"properties" yaml:"properties"`
	Expression  string      `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// PlanEntry is the classification of one property.
type PlanEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"`
	Category Category `json:"category" yaml:"category"`
}

// Describe classifies the properties of req and renders its expression.
// Non-applicable requests are described with no expression.
func Describe(req Request, opts ...Option) Plan {
	req = Normalize(req)
	plan := Plan{
		TypeName:    req.TypeName,
		ClassName:   req.ClassName,
		Applicable:  Applicable(req.Properties),
		Fingerprint: Fingerprint(req, opts...),
		Properties:  make([]PlanEntry, 0, len(req.Properties)),
	}
	for _, c := range ClassifyAll(req.Properties) {
		plan.Properties = append(plan.Properties, PlanEntry{
			Name:     c.Property.Name,
			Type:     c.Property.Type,
			Category: c.Category,
		})
	}
	if plan.Applicable {
		plan.Expression = Synthesize(req.TypeName, req.Properties, opts...).Expression()
	}
	return plan
}

// Encode marshals plans with c.
func Encode(c Codec, plans []Plan) ([]byte, error) {
	return c.Marshal(plans)
}
