package schema

// Category is the template's business category as declared to Meta.
type Category string

const (
	CategoryMarketing      Category = "MARKETING"
	CategoryUtility        Category = "UTILITY"
	CategoryAuthentication Category = "AUTHENTICATION"
)

// Limits imposed by the Cloud API on template fields.
const (
	MaxNameLength       = 512
	MaxHeaderTextLength = 60
	MaxBodyTextLength   = 1024
	MaxFooterTextLength = 60
	MaxButtonTextLength = 25
	MaxURLLength        = 2000
	MaxButtons          = 10

	MinTTLSeconds = 30
	MaxTTLSeconds = 2_592_000
)

// Template is a fully typed message template definition. Instances are
// produced by Parse/Decode and are treated as immutable by every
// consumer (the rule engine, the stats projection, storage).
type Template struct {
	Name                  string
	Language              string
	Category              Category
	SubCategory           string
	MessageSendTTLSeconds *int
	Components            []Component
}

// Header returns the template's HEADER component, or nil.
func (t *Template) Header() *Header {
	for _, c := range t.Components {
		if h, ok := c.(*Header); ok {
			return h
		}
	}
	return nil
}

// Body returns the template's BODY component, or nil. A well-formed
// template always has exactly one.
func (t *Template) Body() *Body {
	for _, c := range t.Components {
		if b, ok := c.(*Body); ok {
			return b
		}
	}
	return nil
}

// Footer returns the template's FOOTER component, or nil.
func (t *Template) Footer() *Footer {
	for _, c := range t.Components {
		if f, ok := c.(*Footer); ok {
			return f
		}
	}
	return nil
}

// Buttons returns the template's BUTTONS component, or nil.
func (t *Template) Buttons() *Buttons {
	for _, c := range t.Components {
		if b, ok := c.(*Buttons); ok {
			return b
		}
	}
	return nil
}
