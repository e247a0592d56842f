package addonstyles

// Defaults for registry options.
const (
	DefaultContainerClass = "addon-styles"
	DefaultPrecedenceAttr = "data-addon-precedence"
	DefaultFeaturesAttr   = "data-addons"
)

// Option configures a Registry.
type Option func(*settings)

type settings struct {
	containerClass string
	precedenceAttr string
	featuresAttr   string
	overrides      Overrides
}

func defaultSettings() *settings {
	return &settings{
		containerClass: DefaultContainerClass,
		precedenceAttr: DefaultPrecedenceAttr,
		featuresAttr:   DefaultFeaturesAttr,
		overrides:      DefaultOverrides,
	}
}

// WithContainerClass sets the class of the container element. A container
// with this class already present in the body is re-used.
func WithContainerClass(class string) Option {
	return func(s *settings) {
		s.containerClass = class
	}
}

// WithOverrides adds precedence overrides on top of DefaultOverrides.
// Entries of o win over the defaults.
func WithOverrides(o Overrides) Option {
	return func(s *settings) {
		s.overrides = s.overrides.With(o)
	}
}

// WithPrecedenceAttr sets the name of the attribute carrying an element's
// precedence.
func WithPrecedenceAttr(name string) Option {
	return func(s *settings) {
		s.precedenceAttr = name
	}
}

// WithFeaturesAttr sets the name of the attribute listing the active
// features of an element.
func WithFeaturesAttr(name string) Option {
	return func(s *settings) {
		s.featuresAttr = name
	}
}
