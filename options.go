package xgxsubtype

// Option configures a type during Subtype/Define.
//
// Three forms are accepted, mirroring how declarations usually read:
//
//	Root.Subtype("Abstract")                                  // no options
//	Root.Subtype("NotFound", Template("{{what}} not found"))  // bare template
//	Root.Subtype("Custom", Options{Template: "...", Templater: fn})
//
// Templater values are Options too: Root.Subtype("X", Template("..."), Templater(fn)).
type Option interface {
	apply(*typeConfig)
}

type typeConfig struct {
	template  string
	templater Templater
}

// Template is the shorthand option that sets a message template.
type Template string

func (tpl Template) apply(c *typeConfig) { c.template = string(tpl) }

func (fn Templater) apply(c *typeConfig) {
	if fn != nil {
		c.templater = fn
	}
}

// Options is the structured form. Zero fields leave the setting untouched.
type Options struct {
	Template  string
	Templater Templater
}

func (o Options) apply(c *typeConfig) {
	if o.Template != "" {
		c.template = o.Template
	}
	if o.Templater != nil {
		c.templater = o.Templater
	}
}

var (
	_ Option = Template("")
	_ Option = Templater(nil)
	_ Option = Options{}
)
