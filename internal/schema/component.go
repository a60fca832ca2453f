package schema

// ComponentType discriminates the component variants of a template.
type ComponentType string

const (
	ComponentHeader  ComponentType = "HEADER"
	ComponentBody    ComponentType = "BODY"
	ComponentFooter  ComponentType = "FOOTER"
	ComponentButtons ComponentType = "BUTTONS"
)

// Component is one structural section of a template. The concrete
// types are Header, Body, Footer and Buttons; anything else coming in
// over the wire is a schema violation, never a silent skip.
type Component interface {
	ComponentType() ComponentType
}

// HeaderFormat selects what a HEADER component carries.
type HeaderFormat string

const (
	FormatText     HeaderFormat = "TEXT"
	FormatImage    HeaderFormat = "IMAGE"
	FormatVideo    HeaderFormat = "VIDEO"
	FormatDocument HeaderFormat = "DOCUMENT"
	FormatLocation HeaderFormat = "LOCATION"
)

// IsMedia reports whether the format requires an example media URL.
func (f HeaderFormat) IsMedia() bool {
	switch f {
	case FormatImage, FormatVideo, FormatDocument:
		return true
	}
	return false
}

// HeaderExample carries sample content for a HEADER: a media URL for
// IMAGE/VIDEO/DOCUMENT formats, or sample substitution text for TEXT.
type HeaderExample struct {
	HeaderURL  string
	HeaderText []string
}

type Header struct {
	Format  HeaderFormat
	Text    string
	Example *HeaderExample
}

func (*Header) ComponentType() ComponentType { return ComponentHeader }

type Body struct {
	Text                      string
	AddSecurityRecommendation bool
	// Example holds sample substitution groups, one group per set of
	// placeholder values.
	Example [][]string
}

func (*Body) ComponentType() ComponentType { return ComponentBody }

type Footer struct {
	Text string
	// CodeExpirationMinutes is only meaningful on authentication
	// templates; the Cloud API accepts 1..60.
	CodeExpirationMinutes *int
}

func (*Footer) ComponentType() ComponentType { return ComponentFooter }

type Buttons struct {
	Buttons []Button
}

func (*Buttons) ComponentType() ComponentType { return ComponentButtons }
